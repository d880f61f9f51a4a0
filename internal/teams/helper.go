// Package teams composes Graph calls into find-or-create operations for
// Microsoft Teams teams and channels.
package teams

import (
	"context"
	"fmt"
	"log/slog"

	"msgraphifttt/internal/common/logger"
)

// API is the subset of graph calls the helper needs.
type API interface {
	TeamIDByName(ctx context.Context, name string) (string, error)
	CreateTeam(ctx context.Context, name string) error
	ChannelIDByName(ctx context.Context, teamID, name string) (string, error)
	CreateChannel(ctx context.Context, teamID, name string) (string, error)
	PostChannelMessage(ctx context.Context, teamID, channelID, text string) error
}

// Helper provides find-or-create semantics on top of a per-request graph
// client. Failures propagate; there are no retries and no idempotency keys,
// so a caller-side retry after a transient failure can create duplicates.
type Helper struct {
	api    API
	logger *slog.Logger
}

// NewHelper wraps a graph API for one request.
func NewHelper(api API, log *slog.Logger) *Helper {
	return &Helper{api: api, logger: log}
}

// EnsureTeam returns the id of the team with the given display name,
// creating it when absent. The create response is not trusted to carry the
// group id, so a second lookup confirms it.
func (h *Helper) EnsureTeam(ctx context.Context, name string) (string, error) {
	id, err := h.api.TeamIDByName(ctx, name)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	logger.LogInfo(h.logger, "Creating team", "name", name)
	if err := h.api.CreateTeam(ctx, name); err != nil {
		return "", err
	}

	id, err = h.api.TeamIDByName(ctx, name)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("team %q not resolvable after create", name)
	}
	return id, nil
}

// EnsureChannel returns the id of the named channel in a team, creating it
// when absent. The channel create response does carry an id; a lookup only
// happens when it doesn't.
func (h *Helper) EnsureChannel(ctx context.Context, teamID, name string) (string, error) {
	id, err := h.api.ChannelIDByName(ctx, teamID, name)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	logger.LogInfo(h.logger, "Creating channel", "name", name)
	created, err := h.api.CreateChannel(ctx, teamID, name)
	if err != nil {
		return "", err
	}
	if created != "" {
		return created, nil
	}

	id, err = h.api.ChannelIDByName(ctx, teamID, name)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("channel %q not resolvable after create", name)
	}
	return id, nil
}

// SendMessage posts a text message into a channel.
func (h *Helper) SendMessage(ctx context.Context, teamID, channelID, text string) error {
	return h.api.PostChannelMessage(ctx, teamID, channelID, text)
}
