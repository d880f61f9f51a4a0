// Package server exposes the IFTTT service protocol surface over HTTP and
// translates it onto Microsoft Graph calls.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"msgraphifttt/internal/common/logger"
	"msgraphifttt/internal/common/ratelimit"
	"msgraphifttt/internal/config"
	"msgraphifttt/internal/graph"
)

// Server owns the route table and the per-request wiring. Graph clients
// are built per request from the caller's bearer token; the only shared
// state is configuration, metrics and the audit log.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	audit   *logger.AuditLogger
	limiter *ratelimit.Limiter
	metrics *metrics

	// clients builds a Graph client from an Authorization header value.
	// Swapped out in tests.
	clients func(authHeader string) (graphAPI, error)

	// tokens acquires a delegated token for the test account.
	tokens func(ctx context.Context) (string, error)

	// now is the trigger clock. Swapped out in tests.
	now func() time.Time

	mux      *http.ServeMux
	registry *prometheus.Registry
}

// New assembles a fully routed server.
func New(cfg *config.Config, log *slog.Logger, audit *logger.AuditLogger) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		logger:   log,
		audit:    audit,
		limiter:  ratelimit.New(cfg.GraphRPS),
		metrics:  newMetrics(registry),
		tokens:   testTokenSource(cfg),
		now:      time.Now,
		registry: registry,
	}
	s.clients = func(authHeader string) (graphAPI, error) {
		return graph.NewClient(graph.StripBearer(authHeader), log)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux = http.NewServeMux()

	s.mux.HandleFunc("GET /", s.handleIndex)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.handle("GET /ifttt/v1/status", "status", s.serviceKeyCheck(s.handleStatus))
	s.handle("GET /ifttt/v1/user/info", "user_info", s.authorize(s.handleUserInfo))
	s.handle("POST /ifttt/v1/test/setup", "test_setup", s.serviceKeyCheck(s.handleTestSetup))

	s.handle("POST /ifttt/v1/triggers/message_mention", "message_mention",
		s.authorize(s.handleMessageMention))
	s.handle("POST /ifttt/v1/triggers/event_created", "event_created",
		s.authorize(s.handleEventCreated))
	s.handle("POST /ifttt/v1/triggers/group_member_birthday", "group_member_birthday",
		s.authorize(s.requireTriggerFields(s.handleGroupMemberBirthday)))
	s.handle("POST /ifttt/v1/triggers/group_member_birthday/fields/group_id/options", "group_id_options",
		s.authorize(s.handleGroupOptions))
	s.handle("POST /ifttt/v1/triggers/onenote_page_created", "onenote_page_created",
		s.authorize(s.handlePageCreated))

	s.handle("POST /ifttt/v1/actions/create_team", "create_team",
		s.authorize(s.requireActionFields(s.handleCreateTeam)))
	s.handle("POST /ifttt/v1/actions/create_channel", "create_channel",
		s.authorize(s.requireActionFields(s.handleCreateChannel)))
	s.handle("POST /ifttt/v1/actions/create_channel/fields/team_id/options", "team_id_options",
		s.authorize(s.handleTeamOptions))
	s.handle("POST /ifttt/v1/actions/create_channel/fields/channel_id/options", "channel_id_options",
		s.authorize(s.handleChannelOptions))
	s.handle("POST /ifttt/v1/actions/create_message", "create_message",
		s.authorize(s.requireActionFields(s.handleCreateMessage)))
	s.handle("POST /ifttt/v1/actions/create_message/fields/team_id/options", "team_id_options",
		s.authorize(s.handleTeamOptions))
	s.handle("POST /ifttt/v1/actions/onenote_create_page", "onenote_create_page",
		s.authorize(s.requireActionFields(s.handleCreatePage)))
	s.handle("POST /ifttt/v1/actions/onenote_create_page/fields/section_id/options", "section_id_options",
		s.authorize(s.handleSectionOptions))
}

func (s *Server) handle(pattern, endpoint string, h http.HandlerFunc) {
	s.mux.HandleFunc(pattern, s.instrument(endpoint, h))
}

// Handler returns the routed handler, for embedding and for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.LogInfo(s.logger, "HTTP server listening", "addr", s.cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
