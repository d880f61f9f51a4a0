package server

import (
	"net/http"

	"msgraphifttt/internal/common/validation"
	"msgraphifttt/internal/ifttt"
)

// Dynamic field option endpoints. Each returns the selectable values for
// one dropdown in the applet editor, sorted by label.

func (s *Server) handleGroupOptions(w http.ResponseWriter, r *http.Request) {
	groups, err := clientFrom(r.Context()).MemberGroups(r.Context())
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ifttt.Options(groups))
}

func (s *Server) handleTeamOptions(w http.ResponseWriter, r *http.Request) {
	joined, err := clientFrom(r.Context()).JoinedTeams(r.Context())
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ifttt.Options(joined))
}

// handleChannelOptions lists the channels of one team. The applet editor
// passes the selected team through a team_id request header rather than
// the body.
func (s *Server) handleChannelOptions(w http.ResponseWriter, r *http.Request) {
	teamID := r.Header.Get("team_id")
	if err := validation.ValidateGUID(teamID, "team_id"); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	channels, err := clientFrom(r.Context()).Channels(r.Context(), teamID)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ifttt.Options(channels))
}

func (s *Server) handleSectionOptions(w http.ResponseWriter, r *http.Request) {
	sections, err := clientFrom(r.Context()).Sections(r.Context())
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ifttt.SectionOptions(sections))
}
