package ifttt

import (
	"strconv"
	"strings"
	"time"

	"msgraphifttt/internal/graph"
)

// PublishSuffix marks a OneNote page as published to IFTTT.
const PublishSuffix = "#publish"

// sameDayWindow bounds how long before an event's start it may have been
// created and still count as created same-day.
const sameDayWindow = 24 * time.Hour

// SelectTodaysBirthdays keeps the members whose birthday month and day
// match now. Matching entries get the birthday year rewritten to the
// current year and the year appended to the id, making the trigger item
// identity unique per calendar year.
func SelectTodaysBirthdays(users []graph.UserBirthday, now time.Time) []graph.UserBirthday {
	var selected []graph.UserBirthday
	for _, user := range users {
		if user.Birthday.IsZero() {
			continue
		}
		if user.Birthday.Month() != now.Month() || user.Birthday.Day() != now.Day() {
			continue
		}

		b := user.Birthday
		user.Birthday = time.Date(now.Year(), b.Month(), b.Day(), b.Hour(), b.Minute(), b.Second(), 0, time.UTC)
		user.ID += strconv.Itoa(now.Year())
		selected = append(selected, user)
	}
	return selected
}

// SameDayEvents keeps events created within the same-day window before
// their start time: an event created 20 hours before it starts is kept,
// one created 30 hours before is not.
func SameDayEvents(events []graph.Event) []graph.Event {
	var kept []graph.Event
	for _, event := range events {
		if event.StartsAt.Sub(event.CreatedAt) < sameDayWindow {
			kept = append(kept, event)
		}
	}
	return kept
}

// PublishedPages keeps pages whose title carries the publish marker.
func PublishedPages(pages []graph.NotebookPage) []graph.NotebookPage {
	var kept []graph.NotebookPage
	for _, page := range pages {
		if strings.HasSuffix(page.Title, PublishSuffix) {
			kept = append(kept, page)
		}
	}
	return kept
}
