package server

import (
	"context"
	"time"

	"msgraphifttt/internal/graph"
	"msgraphifttt/internal/teams"
)

// graphAPI is everything the handlers need from a per-request Graph
// client. Declared on the consumer side so tests can substitute a fake.
type graphAPI interface {
	teams.API

	Me(ctx context.Context) (graph.UserProfile, error)
	MentionedMessages(ctx context.Context) ([]graph.Message, error)
	UpcomingEvents(ctx context.Context, from time.Time, top int32) ([]graph.Event, error)
	GroupMemberIDs(ctx context.Context, groupID string) ([]string, error)
	UserBirthday(ctx context.Context, userID string) (graph.UserBirthday, error)
	Pages(ctx context.Context) ([]graph.NotebookPage, error)
	Sections(ctx context.Context) ([]graph.Section, error)
	JoinedTeams(ctx context.Context) ([]graph.DirectoryEntry, error)
	MemberGroups(ctx context.Context) ([]graph.DirectoryEntry, error)
	Channels(ctx context.Context, teamID string) ([]graph.DirectoryEntry, error)
	CreatePage(ctx context.Context, sectionID, title, content string) (string, error)
}

type contextKey int

const clientContextKey contextKey = iota

func withClient(ctx context.Context, client graphAPI) context.Context {
	return context.WithValue(ctx, clientContextKey, client)
}

// clientFrom returns the Graph client the authorization middleware stored
// for this request. Only reachable behind that middleware.
func clientFrom(ctx context.Context) graphAPI {
	client, _ := ctx.Value(clientContextKey).(graphAPI)
	return client
}
