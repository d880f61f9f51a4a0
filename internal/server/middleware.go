package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"msgraphifttt/internal/common/logger"
	"msgraphifttt/internal/common/security"
	"msgraphifttt/internal/graph"
)

// serviceKeyCheck rejects requests that don't carry the shared service
// key. The check halts the chain; nothing downstream runs on failure.
func (s *Server) serviceKeyCheck(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("IFTTT-Service-Key") != s.cfg.ServiceKey {
			logger.LogWarn(s.logger, "Rejected request with bad service key", "path", r.URL.Path)
			s.writeError(w, http.StatusUnauthorized, "Channel/Service key is not correct")
			return
		}
		next(w, r)
	}
}

// authorize validates the service key, then the user's bearer token by
// probing the Graph /me endpoint. On success the per-request client is
// stored in the context for the handler.
func (s *Server) authorize(next http.HandlerFunc) http.HandlerFunc {
	return s.serviceKeyCheck(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.writeError(w, http.StatusUnauthorized, "Authorization key is not correct")
			return
		}

		client, err := s.clients(authHeader)
		if err != nil {
			logger.LogWarn(s.logger, "Failed to build Graph client", "error", err)
			s.writeError(w, http.StatusUnauthorized, "Authorization key is not correct")
			return
		}

		profile, err := client.Me(r.Context())
		if err != nil {
			logger.LogWarn(s.logger, "Bearer token rejected by Graph",
				"token", security.MaskAccessToken(graph.StripBearer(authHeader)),
				"error", err)
			s.writeError(w, http.StatusUnauthorized, "Authorization key is not correct")
			return
		}

		s.logTokenClaims(authHeader, profile.PrincipalName)
		next(w, r.WithContext(withClient(r.Context(), client)))
	})
}

// logTokenClaims surfaces who is calling at debug level. The token was
// already accepted by Graph, so the unverified parse is informational.
func (s *Server) logTokenClaims(authHeader, principal string) {
	raw := graph.StripBearer(authHeader)
	attrs := []any{
		"user", principal,
		"token", security.MaskAccessToken(raw),
	}
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err == nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if appID, ok := claims["appid"].(string); ok {
				attrs = append(attrs, "appid", security.MaskGUID(appID))
			}
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				attrs = append(attrs, "expires", exp.Time)
			}
		}
	}
	logger.LogDebug(s.logger, "Bearer token accepted", attrs...)
}

// requireField rejects requests whose JSON body lacks the named top-level
// key. The body is restored so the handler can decode it again.
func (s *Server) requireField(name, message string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "Unreadable request body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			s.writeError(w, http.StatusBadRequest, message)
			return
		}
		if _, ok := fields[name]; !ok {
			s.writeError(w, http.StatusBadRequest, message)
			return
		}
		next(w, r)
	}
}

func (s *Server) requireTriggerFields(next http.HandlerFunc) http.HandlerFunc {
	return s.requireField("triggerFields", "Incomplete data sent, please supply triggerFields", next)
}

func (s *Server) requireActionFields(next http.HandlerFunc) http.HandlerFunc {
	return s.requireField("actionFields", "Incomplete data sent, please supply actionFields", next)
}
