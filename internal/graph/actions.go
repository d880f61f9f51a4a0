package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/microsoftgraph/msgraph-sdk-go/models"

	"msgraphifttt/internal/common/logger"
)

const teamsStandardTemplate = "https://graph.microsoft.com/v1.0/teamsTemplates('standard')"

// defaultDescription is attached to teams and channels this service creates.
const defaultDescription = "Created to handle IFTTT notifications and communications"

// TeamIDByName resolves a team id by exact display name match. Returns the
// empty string when no team matches; the query itself failing is an error.
func (c *Client) TeamIDByName(ctx context.Context, name string) (string, error) {
	entries, err := c.teamProvisionedGroups(ctx)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if entry.DisplayName == name {
			logger.LogDebug(c.logger, "Team found", "teamID", entry.ID)
			return entry.ID, nil
		}
	}

	logger.LogDebug(c.logger, "Team not found", "name", name)
	return "", nil
}

// CreateTeam provisions a standard-template team. The create response does
// not reliably carry the group id, so callers re-resolve via TeamIDByName.
func (c *Client) CreateTeam(ctx context.Context, name string) error {
	team := models.NewTeam()
	team.SetDisplayName(&name)
	team.SetDescription(pointerTo(defaultDescription))
	team.SetAdditionalData(map[string]any{
		"template@odata.bind": teamsStandardTemplate,
	})

	logger.LogDebug(c.logger, "Calling Graph API", "call", "POST /teams", "name", name)

	if _, err := c.sdk.Teams().Post(ctx, team, nil); err != nil {
		return wrapGraphError("create_team", err)
	}
	return nil
}

// ChannelIDByName resolves a channel id by display name within a team.
// Returns the empty string when no channel matches.
func (c *Client) ChannelIDByName(ctx context.Context, teamID, name string) (string, error) {
	entries, err := c.channelsByName(ctx, teamID, name)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if entry.DisplayName == name {
			logger.LogDebug(c.logger, "Channel found", "channelID", entry.ID)
			return entry.ID, nil
		}
	}

	logger.LogDebug(c.logger, "Channel not found", "name", name)
	return "", nil
}

// CreateChannel creates a channel in a team and returns its id when the
// create response carries one.
func (c *Client) CreateChannel(ctx context.Context, teamID, name string) (string, error) {
	channel := models.NewChannel()
	channel.SetDisplayName(&name)
	channel.SetDescription(pointerTo(defaultDescription))

	logger.LogDebug(c.logger, "Calling Graph API", "call", "POST /teams/{id}/channels", "name", name)

	created, err := c.sdk.Teams().ByTeamId(teamID).Channels().Post(ctx, channel, nil)
	if err != nil {
		return "", wrapGraphError("create_channel", err)
	}
	return deref(created.GetId()), nil
}

// PostChannelMessage posts a text message into a team channel.
func (c *Client) PostChannelMessage(ctx context.Context, teamID, channelID, text string) error {
	body := models.NewItemBody()
	body.SetContent(&text)
	message := models.NewChatMessage()
	message.SetBody(body)

	logger.LogDebug(c.logger, "Calling Graph API", "call", "POST /teams/{id}/channels/{id}/messages")

	if _, err := c.sdk.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).Messages().Post(ctx, message, nil); err != nil {
		return wrapGraphError("create_message", err)
	}
	return nil
}

// CreatePage creates a OneNote page in a section and returns the page id.
// The page body is the HTML shell the connector has always produced.
func (c *Client) CreatePage(ctx context.Context, sectionID, title, content string) (string, error) {
	page := models.NewOnenotePage()
	page.SetTitle(&title)
	page.SetContent([]byte(PageHTML(title, content)))

	logger.LogDebug(c.logger, "Calling Graph API", "call", "POST /me/onenote/sections/{id}/pages")

	created, err := c.sdk.Me().Onenote().Sections().ByOnenoteSectionId(sectionID).Pages().Post(ctx, page, nil)
	if err != nil {
		return "", wrapGraphError("onenote_create_page", err)
	}
	return deref(created.GetId()), nil
}

// PageHTML renders the OneNote page body for a title and paragraph of
// content.
func PageHTML(title, content string) string {
	return fmt.Sprintf(`<html lang="en-US">
    <head>
        <title>%s</title>
        <meta http-equiv="Content-Type" content="text/html; charset=utf-8" />
    </head>
    <body data-absolute-enabled="true" style="font-family:Calibri;font-size:11pt">
        <div style="position:absolute;left:48px;top:115px;width:624px">
            <p style="margin-top:0pt;margin-bottom:0pt">%s</p>
            <br />
        </div>
    </body>
</html>`, title, content)
}

// escapeODataLiteral escapes single quotes in a string literal embedded in
// an OData filter.
func escapeODataLiteral(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}
