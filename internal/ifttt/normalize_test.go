package ifttt

import (
	"testing"
	"time"

	"msgraphifttt/internal/graph"
)

func messageAt(id string, received time.Time) graph.Message {
	return graph.Message{ID: id, Subject: "subj", SenderName: "Anna", ReceivedAt: received}
}

func TestMessagesEmptyInput(t *testing.T) {
	resp := Messages(nil, 50)
	if resp.Data == nil {
		t.Fatal("Data must be non-nil so it marshals as []")
	}
	if len(resp.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(resp.Data))
	}
}

func TestMessagesZeroMax(t *testing.T) {
	msgs := []graph.Message{messageAt("a", time.Now())}
	resp := Messages(msgs, 0)
	if len(resp.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0 for max == 0", len(resp.Data))
	}
}

func TestMessagesSortedDescendingAndTruncated(t *testing.T) {
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	msgs := []graph.Message{
		messageAt("old", base.Add(-2*time.Hour)),
		messageAt("new", base),
		messageAt("mid", base.Add(-time.Hour)),
	}

	resp := Messages(msgs, 2)

	if len(resp.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(resp.Data))
	}
	if resp.Data[0].Meta.ID != "new" || resp.Data[1].Meta.ID != "mid" {
		t.Errorf("order = [%s %s], want [new mid]", resp.Data[0].Meta.ID, resp.Data[1].Meta.ID)
	}
	if resp.Data[0].Meta.Timestamp < resp.Data[1].Meta.Timestamp {
		t.Error("Data not sorted descending by timestamp")
	}
}

func TestMessagesStableSortOnEqualTimestamps(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	msgs := []graph.Message{
		messageAt("first", at),
		messageAt("second", at),
		messageAt("third", at),
	}

	resp := Messages(msgs, 50)

	got := []string{resp.Data[0].Meta.ID, resp.Data[1].Meta.ID, resp.Data[2].Meta.ID}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("equal-timestamp order = %v, want %v", got, want)
		}
	}
}

func TestMessagesLengthIsMinOfItemsAndMax(t *testing.T) {
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	msgs := []graph.Message{
		messageAt("a", base),
		messageAt("b", base.Add(time.Minute)),
	}

	if got := len(Messages(msgs, 10).Data); got != 2 {
		t.Errorf("len = %d, want 2 when max exceeds input", got)
	}
	if got := len(Messages(msgs, 1).Data); got != 1 {
		t.Errorf("len = %d, want 1 when max truncates", got)
	}
}

func TestEventsNormalization(t *testing.T) {
	created := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	start := created.Add(4 * time.Hour)
	events := []graph.Event{{
		ID:            "ev1",
		Subject:       "Standup",
		OrganizerName: "Pat",
		CreatedAt:     created,
		StartsAt:      start,
	}}

	resp := Events(events, 50)

	if len(resp.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(resp.Data))
	}
	item := resp.Data[0]
	if item.Meta.Timestamp != created.Unix() {
		t.Errorf("Timestamp = %d, want createdDateTime epoch %d", item.Meta.Timestamp, created.Unix())
	}
	if item.OrganizerName != "Pat" || item.Subject != "Standup" {
		t.Errorf("unexpected item fields: %+v", item)
	}
	if item.StartTime != "2026-08-29 12:00" {
		t.Errorf("StartTime = %q", item.StartTime)
	}
}

func TestEventsEmptyAndZero(t *testing.T) {
	if got := Events(nil, 5); len(got.Data) != 0 || got.Data == nil {
		t.Errorf("Events(nil) = %+v, want empty non-nil Data", got)
	}
	events := []graph.Event{{ID: "x"}}
	if got := Events(events, 0); len(got.Data) != 0 {
		t.Errorf("Events(_, 0) has %d items, want 0", len(got.Data))
	}
}

func TestBirthdaysNormalization(t *testing.T) {
	birthday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	users := []graph.UserBirthday{{ID: "abc2026", DisplayName: "Sam", Birthday: birthday}}

	resp := Birthdays(users, 50)

	if len(resp.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(resp.Data))
	}
	item := resp.Data[0]
	if item.Meta.ID != "abc2026" {
		t.Errorf("ID = %q", item.Meta.ID)
	}
	if item.Meta.Timestamp != birthday.Unix() {
		t.Errorf("Timestamp = %d, want %d", item.Meta.Timestamp, birthday.Unix())
	}
	if item.Birthday != "2026-03-15" {
		t.Errorf("Birthday = %q", item.Birthday)
	}
}

func TestPagesNormalization(t *testing.T) {
	created := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	pages := []graph.NotebookPage{{
		ID:           "p1",
		Title:        "Notes#publish",
		NotebookName: "Work",
		SectionName:  "Ideas",
		ContentURL:   "https://graph.microsoft.com/v1.0/me/onenote/pages/p1",
		CreatedAt:    created,
	}}

	resp := Pages(pages, 50)

	if len(resp.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(resp.Data))
	}
	item := resp.Data[0]
	if item.Meta.Timestamp != created.Unix() {
		t.Errorf("Timestamp = %d, want %d", item.Meta.Timestamp, created.Unix())
	}
	if item.NotebookName != "Work" || item.SectionName != "Ideas" {
		t.Errorf("unexpected item fields: %+v", item)
	}
	if item.CreatedAt != "2026-08-28T09:30:00Z" {
		t.Errorf("CreatedAt = %q", item.CreatedAt)
	}
}
