package ifttt

import (
	"time"

	"msgraphifttt/internal/graph"
)

// Messages converts mention messages to the trigger envelope, newest first,
// at most max items. Empty input or max == 0 yields an empty envelope.
func Messages(msgs []graph.Message, max int) TriggerResponse[MessageItem] {
	resp := TriggerResponse[MessageItem]{Data: []MessageItem{}}
	if len(msgs) == 0 || max == 0 {
		return resp
	}

	items := make([]MessageItem, 0, len(msgs))
	for _, msg := range msgs {
		items = append(items, MessageItem{
			Meta:    Meta{ID: msg.ID, Timestamp: msg.ReceivedAt.Unix()},
			Sender:  msg.SenderName,
			Subject: msg.Subject,
		})
	}

	resp.Data = finalize(items, max)
	return resp
}

// Events converts calendar events to the trigger envelope. The timestamp is
// the event's creation time; start_time is formatted for display.
func Events(events []graph.Event, max int) TriggerResponse[EventItem] {
	resp := TriggerResponse[EventItem]{Data: []EventItem{}}
	if len(events) == 0 || max == 0 {
		return resp
	}

	items := make([]EventItem, 0, len(events))
	for _, event := range events {
		items = append(items, EventItem{
			Meta:          Meta{ID: event.ID, Timestamp: event.CreatedAt.Unix()},
			OrganizerName: event.OrganizerName,
			Subject:       event.Subject,
			StartTime:     event.StartsAt.Format("2006-01-02 15:04"),
		})
	}

	resp.Data = finalize(items, max)
	return resp
}

// Birthdays converts selected group members to the trigger envelope. The
// timestamp is the (already year-rewritten) birthday.
func Birthdays(users []graph.UserBirthday, max int) TriggerResponse[BirthdayItem] {
	resp := TriggerResponse[BirthdayItem]{Data: []BirthdayItem{}}
	if len(users) == 0 || max == 0 {
		return resp
	}

	items := make([]BirthdayItem, 0, len(users))
	for _, user := range users {
		items = append(items, BirthdayItem{
			Meta:        Meta{ID: user.ID, Timestamp: user.Birthday.Unix()},
			DisplayName: user.DisplayName,
			Birthday:    user.Birthday.Format("2006-01-02"),
		})
	}

	resp.Data = finalize(items, max)
	return resp
}

// Pages converts OneNote pages to the trigger envelope.
func Pages(pages []graph.NotebookPage, max int) TriggerResponse[PageItem] {
	resp := TriggerResponse[PageItem]{Data: []PageItem{}}
	if len(pages) == 0 || max == 0 {
		return resp
	}

	items := make([]PageItem, 0, len(pages))
	for _, page := range pages {
		items = append(items, PageItem{
			Meta:         Meta{ID: page.ID, Timestamp: page.CreatedAt.Unix()},
			Title:        page.Title,
			NotebookName: page.NotebookName,
			SectionName:  page.SectionName,
			URL:          page.ContentURL,
			CreatedAt:    page.CreatedAt.Format(time.RFC3339),
		})
	}

	resp.Data = finalize(items, max)
	return resp
}
