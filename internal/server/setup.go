package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"msgraphifttt/internal/common/logger"
	"msgraphifttt/internal/common/security"
	"msgraphifttt/internal/common/version"
	"msgraphifttt/internal/config"
)

// setupScopes are the delegated permissions requested for the endpoint
// test account.
const setupScopes = "Notes.ReadWrite.All Calendars.Read identityriskevent.read.all " +
	"directory.read.all group.readwrite.all user.readwrite.all mail.readwrite"

// sampleGroupID seeds the birthday trigger during endpoint tests. The
// group must exist in the test tenant.
const sampleGroupID = "4e336cbe-360b-4feb-9011-6c7bf25a3d70"

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<html><body><h1>Microsoft Graph IFTTT bridge</h1><p>version %s</p></body></html>\n", version.Get())
}

func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	profile, err := clientFrom(r.Context()).Me(r.Context())
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"data": map[string]string{
			"id":   profile.ID,
			"name": profile.PrincipalName,
		},
	})
}

// setupSamples is the body of a test/setup response: a valid access token
// for the test account plus sample field values for every trigger and
// action that requires them.
type setupSamples struct {
	Data struct {
		Samples struct {
			Triggers struct {
				GroupMemberBirthday struct {
					GroupID string `json:"group_id"`
				} `json:"group_member_birthday"`
			} `json:"triggers"`
			Actions struct {
				CreateMessage struct {
					TeamID      string `json:"team_id"`
					TeamName    string `json:"team_name"`
					ChannelName string `json:"channel_name"`
					Message     string `json:"message"`
				} `json:"create_message"`
			} `json:"actions"`
		} `json:"samples"`
		AccessToken string `json:"accessToken"`
	} `json:"data"`
}

func (s *Server) handleTestSetup(w http.ResponseWriter, r *http.Request) {
	token, err := s.tokens(r.Context())
	if err != nil {
		logger.LogWarn(s.logger, "Test account token request failed", "error", err)
		s.writeError(w, http.StatusUnauthorized, "Test setup error: "+err.Error())
		return
	}
	logger.LogDebug(s.logger, "Issued test account token", "token", security.MaskAccessToken(token))

	var resp setupSamples
	resp.Data.Samples.Triggers.GroupMemberBirthday.GroupID = sampleGroupID
	resp.Data.Samples.Actions.CreateMessage.TeamID = "null"
	resp.Data.Samples.Actions.CreateMessage.TeamName = "Test team"
	resp.Data.Samples.Actions.CreateMessage.ChannelName = "Test channel"
	resp.Data.Samples.Actions.CreateMessage.Message = "Test message"
	resp.Data.AccessToken = token

	s.audit.Record("test_setup", "ok", "", "")
	s.writeJSON(w, http.StatusOK, resp)
}

// testTokenSource acquires a delegated token for the configured test
// account with the resource owner password grant.
func testTokenSource(cfg *config.Config) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		if !cfg.SetupConfigured() {
			return "", fmt.Errorf("test account credentials are not configured")
		}
		cred, err := azidentity.NewUsernamePasswordCredential(
			cfg.TenantID, cfg.ClientID, cfg.TestUser, cfg.TestPassword, nil)
		if err != nil {
			return "", fmt.Errorf("building test credential: %w", err)
		}
		token, err := cred.GetToken(ctx, policy.TokenRequestOptions{
			Scopes: strings.Fields(setupScopes),
		})
		if err != nil {
			return "", fmt.Errorf("acquiring test token: %w", err)
		}
		return token.Token, nil
	}
}
