package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// defaultLimit caps trigger responses when the caller doesn't send one.
const defaultLimit = 50

// limitBody is the shared trigger request shape. A missing limit means
// "use the default"; limit 0 is an explicit request for no items.
type limitBody struct {
	Limit *int `json:"limit"`
}

type birthdayRequest struct {
	Limit         *int `json:"limit"`
	TriggerFields *struct {
		GroupID string `json:"group_id"`
	} `json:"triggerFields"`
}

type createTeamRequest struct {
	ActionFields *struct {
		TeamName string `json:"team_name"`
	} `json:"actionFields"`
}

type createChannelRequest struct {
	ActionFields *struct {
		TeamName    string `json:"team_name"`
		ChannelName string `json:"channel_name"`
	} `json:"actionFields"`
}

// createMessageRequest distinguishes absent keys from empty values: the
// required keys must be present even when they carry the literal "null"
// placeholder the slot editor sends for unset ingredients.
type createMessageRequest struct {
	ActionFields *struct {
		TeamID      *string `json:"team_id"`
		TeamName    string  `json:"team_name"`
		ChannelID   string  `json:"channel_id"`
		ChannelName *string `json:"channel_name"`
		Message     *string `json:"message"`
	} `json:"actionFields"`
}

type createPageRequest struct {
	ActionFields *struct {
		SectionID string `json:"section_id"`
		Title     string `json:"title"`
		Content   string `json:"content"`
	} `json:"actionFields"`
}

// decodeBody parses the request body into dst. An empty body is treated
// as an empty object so parameterless trigger polls work; malformed JSON
// is a client error.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func limitOrDefault(limit *int) int {
	if limit == nil {
		return defaultLimit
	}
	if *limit < 0 {
		return 0
	}
	return *limit
}

// fieldValue resolves an optional ingredient value. The slot editor sends
// the string "null" for ingredients the user left unset.
func fieldValue(v string) string {
	if v == "null" {
		return ""
	}
	return v
}

func fieldPtrValue(v *string) string {
	if v == nil {
		return ""
	}
	return fieldValue(*v)
}
