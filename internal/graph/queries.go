package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/microsoftgraph/msgraph-sdk-go/groups"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/teams"
	"github.com/microsoftgraph/msgraph-sdk-go/users"

	"msgraphifttt/internal/common/logger"
)

// Me fetches the signed-in user. Also used as the lightweight identity
// probe by the authorization middleware.
func (c *Client) Me(ctx context.Context) (UserProfile, error) {
	user, err := c.sdk.Me().Get(ctx, nil)
	if err != nil {
		return UserProfile{}, wrapGraphError("me", err)
	}

	return UserProfile{
		ID:            deref(user.GetId()),
		DisplayName:   deref(user.GetDisplayName()),
		PrincipalName: deref(user.GetUserPrincipalName()),
	}, nil
}

// MentionedMessages returns the user's mail messages that @mention them.
func (c *Client) MentionedMessages(ctx context.Context) ([]Message, error) {
	filter := "mentionsPreview/isMentioned eq true"
	requestConfig := &users.ItemMessagesRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.ItemMessagesRequestBuilderGetQueryParameters{
			Filter: &filter,
			Select: []string{"id", "subject", "sender", "receivedDateTime"},
		},
	}

	logger.LogDebug(c.logger, "Calling Graph API", "call", "GET /me/messages", "filter", filter)

	result, err := c.sdk.Me().Messages().Get(ctx, requestConfig)
	if err != nil {
		return nil, wrapGraphError("message_mention", err)
	}

	var items []Message
	for _, msg := range result.GetValue() {
		item := Message{
			ID:      deref(msg.GetId()),
			Subject: deref(msg.GetSubject()),
		}
		if sender := msg.GetSender(); sender != nil && sender.GetEmailAddress() != nil {
			item.SenderName = deref(sender.GetEmailAddress().GetName())
		}
		if received := msg.GetReceivedDateTime(); received != nil {
			item.ReceivedAt = *received
		}
		items = append(items, item)
	}
	return items, nil
}

// UpcomingEvents returns events starting at or after from, newest modified
// first, at most top entries.
func (c *Client) UpcomingEvents(ctx context.Context, from time.Time, top int32) ([]Event, error) {
	filter := fmt.Sprintf("start/dateTime ge '%s'", from.UTC().Format(time.RFC3339))
	requestConfig := &users.ItemEventsRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.ItemEventsRequestBuilderGetQueryParameters{
			Filter:  &filter,
			Orderby: []string{"lastModifiedDateTime desc"},
			Top:     pointerTo(top),
		},
	}

	logger.LogDebug(c.logger, "Calling Graph API", "call", "GET /me/events", "filter", filter, "top", top)

	result, err := c.sdk.Me().Events().Get(ctx, requestConfig)
	if err != nil {
		return nil, wrapGraphError("event_created", err)
	}

	var items []Event
	for _, event := range result.GetValue() {
		item := Event{
			ID:      deref(event.GetId()),
			Subject: deref(event.GetSubject()),
		}
		if organizer := event.GetOrganizer(); organizer != nil && organizer.GetEmailAddress() != nil {
			item.OrganizerName = deref(organizer.GetEmailAddress().GetName())
		}
		if created := event.GetCreatedDateTime(); created != nil {
			item.CreatedAt = *created
		}
		if start := event.GetStart(); start != nil && start.GetDateTime() != nil {
			if parsed, err := ParseGraphTime(*start.GetDateTime()); err == nil {
				item.StartsAt = parsed
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// GroupMemberIDs lists the ids of a group's members. No server-side filter
// on birthdays exists; callers must fetch each member individually.
func (c *Client) GroupMemberIDs(ctx context.Context, groupID string) ([]string, error) {
	logger.LogDebug(c.logger, "Calling Graph API", "call", "GET /groups/{id}/members")

	result, err := c.sdk.Groups().ByGroupId(groupID).Members().Get(ctx, nil)
	if err != nil {
		return nil, wrapGraphError("group_members", err)
	}

	var ids []string
	for _, member := range result.GetValue() {
		if member.GetId() != nil {
			ids = append(ids, *member.GetId())
		}
	}
	return ids, nil
}

// UserBirthday fetches one user's id, display name, and birthday.
func (c *Client) UserBirthday(ctx context.Context, userID string) (UserBirthday, error) {
	requestConfig := &users.UserItemRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.UserItemRequestBuilderGetQueryParameters{
			Select: []string{"id", "displayName", "birthday"},
		},
	}

	user, err := c.sdk.Users().ByUserId(userID).Get(ctx, requestConfig)
	if err != nil {
		return UserBirthday{}, wrapGraphError("user_birthday", err)
	}

	item := UserBirthday{
		ID:          deref(user.GetId()),
		DisplayName: deref(user.GetDisplayName()),
	}
	if birthday := user.GetBirthday(); birthday != nil {
		item.Birthday = *birthday
	}
	return item, nil
}

// Pages lists the user's OneNote pages with parent notebook and section
// expanded.
func (c *Client) Pages(ctx context.Context) ([]NotebookPage, error) {
	requestConfig := &users.ItemOnenotePagesRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.ItemOnenotePagesRequestBuilderGetQueryParameters{
			Expand: []string{"parentNotebook", "parentSection"},
		},
	}

	logger.LogDebug(c.logger, "Calling Graph API", "call", "GET /me/onenote/pages")

	result, err := c.sdk.Me().Onenote().Pages().Get(ctx, requestConfig)
	if err != nil {
		return nil, wrapGraphError("onenote_pages", err)
	}

	var items []NotebookPage
	for _, page := range result.GetValue() {
		item := NotebookPage{
			ID:         deref(page.GetId()),
			Title:      deref(page.GetTitle()),
			ContentURL: deref(page.GetContentUrl()),
		}
		if notebook := page.GetParentNotebook(); notebook != nil {
			item.NotebookName = deref(notebook.GetDisplayName())
		}
		if section := page.GetParentSection(); section != nil {
			item.SectionName = deref(section.GetDisplayName())
		}
		if created := page.GetCreatedDateTime(); created != nil {
			item.CreatedAt = *created
		}
		items = append(items, item)
	}
	return items, nil
}

// Sections lists the user's OneNote sections with their parent notebook.
func (c *Client) Sections(ctx context.Context) ([]Section, error) {
	requestConfig := &users.ItemOnenoteSectionsRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.ItemOnenoteSectionsRequestBuilderGetQueryParameters{
			Expand: []string{"parentNotebook"},
		},
	}

	logger.LogDebug(c.logger, "Calling Graph API", "call", "GET /me/onenote/sections")

	result, err := c.sdk.Me().Onenote().Sections().Get(ctx, requestConfig)
	if err != nil {
		return nil, wrapGraphError("onenote_sections", err)
	}

	var items []Section
	for _, section := range result.GetValue() {
		item := Section{
			ID:   deref(section.GetId()),
			Name: deref(section.GetDisplayName()),
		}
		if notebook := section.GetParentNotebook(); notebook != nil {
			item.NotebookName = deref(notebook.GetDisplayName())
		}
		items = append(items, item)
	}
	return items, nil
}

// JoinedTeams lists the teams the user is a member of.
func (c *Client) JoinedTeams(ctx context.Context) ([]DirectoryEntry, error) {
	logger.LogDebug(c.logger, "Calling Graph API", "call", "GET /me/joinedTeams")

	result, err := c.sdk.Me().JoinedTeams().Get(ctx, nil)
	if err != nil {
		return nil, wrapGraphError("joined_teams", err)
	}

	var entries []DirectoryEntry
	for _, team := range result.GetValue() {
		entries = append(entries, DirectoryEntry{
			ID:          deref(team.GetId()),
			DisplayName: deref(team.GetDisplayName()),
		})
	}
	return entries, nil
}

// MemberGroups lists the directory groups the user belongs to. Directory
// objects that are not groups are skipped.
func (c *Client) MemberGroups(ctx context.Context) ([]DirectoryEntry, error) {
	logger.LogDebug(c.logger, "Calling Graph API", "call", "GET /me/memberOf")

	result, err := c.sdk.Me().MemberOf().Get(ctx, nil)
	if err != nil {
		return nil, wrapGraphError("member_groups", err)
	}

	var entries []DirectoryEntry
	for _, obj := range result.GetValue() {
		group, ok := obj.(models.Groupable)
		if !ok {
			continue
		}
		entries = append(entries, DirectoryEntry{
			ID:          deref(group.GetId()),
			DisplayName: deref(group.GetDisplayName()),
		})
	}
	return entries, nil
}

// Channels lists the channels of a team.
func (c *Client) Channels(ctx context.Context, teamID string) ([]DirectoryEntry, error) {
	logger.LogDebug(c.logger, "Calling Graph API", "call", "GET /teams/{id}/channels")

	result, err := c.sdk.Teams().ByTeamId(teamID).Channels().Get(ctx, nil)
	if err != nil {
		return nil, wrapGraphError("channels", err)
	}

	var entries []DirectoryEntry
	for _, channel := range result.GetValue() {
		entries = append(entries, DirectoryEntry{
			ID:          deref(channel.GetId()),
			DisplayName: deref(channel.GetDisplayName()),
		})
	}
	return entries, nil
}

// channelsByName fetches a team's channels filtered server-side on display
// name. Shared by ChannelIDByName.
func (c *Client) channelsByName(ctx context.Context, teamID, name string) ([]DirectoryEntry, error) {
	filter := fmt.Sprintf("displayName eq '%s'", escapeODataLiteral(name))
	requestConfig := &teams.ItemChannelsRequestBuilderGetRequestConfiguration{
		QueryParameters: &teams.ItemChannelsRequestBuilderGetQueryParameters{
			Filter: &filter,
			Select: []string{"displayName", "id"},
		},
	}

	result, err := c.sdk.Teams().ByTeamId(teamID).Channels().Get(ctx, requestConfig)
	if err != nil {
		return nil, wrapGraphError("channels", err)
	}

	var entries []DirectoryEntry
	for _, channel := range result.GetValue() {
		entries = append(entries, DirectoryEntry{
			ID:          deref(channel.GetId()),
			DisplayName: deref(channel.GetDisplayName()),
		})
	}
	return entries, nil
}

// teamProvisionedGroups fetches the directory groups provisioned as Teams,
// reduced to display name and id. Shared by TeamIDByName.
func (c *Client) teamProvisionedGroups(ctx context.Context) ([]DirectoryEntry, error) {
	filter := "resourceProvisioningOptions/Any(x:x eq 'Team')"
	requestConfig := &groups.GroupsRequestBuilderGetRequestConfiguration{
		QueryParameters: &groups.GroupsRequestBuilderGetQueryParameters{
			Filter: &filter,
			Select: []string{"displayName", "id"},
		},
	}

	result, err := c.sdk.Groups().Get(ctx, requestConfig)
	if err != nil {
		return nil, wrapGraphError("teams_lookup", err)
	}

	var entries []DirectoryEntry
	for _, group := range result.GetValue() {
		entries = append(entries, DirectoryEntry{
			ID:          deref(group.GetId()),
			DisplayName: deref(group.GetDisplayName()),
		})
	}
	return entries, nil
}

// ParseGraphTime parses the datetime strings Graph returns inside
// dateTimeTimeZone objects. Accepts the fractional-seconds form, RFC3339,
// and the bare sortable form (assumed UTC).
func ParseGraphTime(value string) (time.Time, error) {
	layouts := []string{
		"2006-01-02T15:04:05.0000000",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid graph datetime %q", value)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// pointerTo is a generic helper to create pointers to values for the SDK's
// optional parameters.
func pointerTo[T any](v T) *T {
	return &v
}
