package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"msgraphifttt/internal/common/validation"
	"msgraphifttt/internal/teams"
)

func (s *Server) teamsHelper(r *http.Request) *teams.Helper {
	return teams.NewHelper(clientFrom(r.Context()), s.logger)
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var body createTeamRequest
	if err := decodeBody(r, &body); err != nil || body.ActionFields == nil {
		s.writeError(w, http.StatusBadRequest, "Incomplete data sent, please supply actionFields")
		return
	}
	name := fieldValue(body.ActionFields.TeamName)
	if name == "" {
		s.writeError(w, http.StatusBadRequest, "Incomplete data sent, please supply a team_name field")
		return
	}

	id, err := s.teamsHelper(r).EnsureTeam(r.Context(), name)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	s.audit.Record("create_team", "ok", name, id)
	s.writeJSON(w, http.StatusOK, idEnvelope{Data: []idEntry{{ID: id}}})
}

func (s *Server) handleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var body createChannelRequest
	if err := decodeBody(r, &body); err != nil || body.ActionFields == nil {
		s.writeError(w, http.StatusBadRequest, "Incomplete data sent, please supply actionFields")
		return
	}
	fields := body.ActionFields
	missing := validation.RequireFields(map[string]string{
		"team_name":    fieldValue(fields.TeamName),
		"channel_name": fieldValue(fields.ChannelName),
	})
	if len(missing) > 0 {
		s.writeError(w, http.StatusBadRequest,
			"Incomplete data sent, please supply "+strings.Join(missing, ", "))
		return
	}

	helper := s.teamsHelper(r)
	teamID, err := helper.EnsureTeam(r.Context(), fieldValue(fields.TeamName))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	channelID, err := helper.EnsureChannel(r.Context(), teamID, fieldValue(fields.ChannelName))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	s.audit.Record("create_channel", "ok", fieldValue(fields.ChannelName), channelID)
	s.writeJSON(w, http.StatusOK, idEnvelope{Data: []idEntry{{ID: channelID}}})
}

// handleCreateMessage resolves the target team and channel, preferring
// the id ingredients and falling back to find-or-create by name.
func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var body createMessageRequest
	if err := decodeBody(r, &body); err != nil || body.ActionFields == nil {
		s.writeError(w, http.StatusBadRequest, "Incomplete data sent, please supply actionFields")
		return
	}
	fields := body.ActionFields
	if fields.TeamID == nil || fields.ChannelName == nil || fields.Message == nil {
		s.writeError(w, http.StatusBadRequest,
			"Incomplete data sent, please supply team_id, channel_name and message fields")
		return
	}

	helper := s.teamsHelper(r)
	teamID := fieldPtrValue(fields.TeamID)
	if teamID == "" {
		teamName := fieldValue(fields.TeamName)
		if teamName == "" {
			s.writeError(w, http.StatusBadRequest,
				"Incomplete data sent, please supply a team_id or team_name field")
			return
		}
		var err error
		if teamID, err = helper.EnsureTeam(r.Context(), teamName); err != nil {
			s.writeUpstreamError(w, err)
			return
		}
	}

	channelID := fieldValue(fields.ChannelID)
	if channelID == "" {
		var err error
		if channelID, err = helper.EnsureChannel(r.Context(), teamID, fieldPtrValue(fields.ChannelName)); err != nil {
			s.writeUpstreamError(w, err)
			return
		}
	}

	if err := helper.SendMessage(r.Context(), teamID, channelID, fieldPtrValue(fields.Message)); err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	// Chat message posts don't return a usable id, so mint one for the
	// action response.
	id := uuid.NewString()
	s.audit.Record("create_message", "ok", channelID, id)
	s.writeJSON(w, http.StatusOK, idEnvelope{Data: []idEntry{{ID: id}}})
}

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var body createPageRequest
	if err := decodeBody(r, &body); err != nil || body.ActionFields == nil {
		s.writeError(w, http.StatusBadRequest, "Incomplete data sent, please supply actionFields")
		return
	}
	fields := body.ActionFields
	missing := validation.RequireFields(map[string]string{
		"section_id": fieldValue(fields.SectionID),
		"title":      fieldValue(fields.Title),
		"content":    fieldValue(fields.Content),
	})
	if len(missing) > 0 {
		s.writeError(w, http.StatusBadRequest,
			"Incomplete data sent, please supply "+strings.Join(missing, ", "))
		return
	}

	title := fieldValue(fields.Title)
	id, err := clientFrom(r.Context()).CreatePage(r.Context(), fieldValue(fields.SectionID), title, fieldValue(fields.Content))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	s.audit.Record("onenote_create_page", "ok", title, id)
	s.writeJSON(w, http.StatusOK, idEnvelope{Data: []idEntry{{ID: id}}})
}
