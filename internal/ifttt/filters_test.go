package ifttt

import (
	"testing"
	"time"

	"msgraphifttt/internal/graph"
)

func TestSelectTodaysBirthdays(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	users := []graph.UserBirthday{
		{ID: "u1", DisplayName: "March", Birthday: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "abc", DisplayName: "Today", Birthday: time.Date(1985, 8, 29, 0, 0, 0, 0, time.UTC)},
		{ID: "u3", DisplayName: "January", Birthday: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	selected := SelectTodaysBirthdays(users, now)

	if len(selected) != 1 {
		t.Fatalf("len(selected) = %d, want 1", len(selected))
	}
	got := selected[0]
	if got.ID != "abc2026" {
		t.Errorf("ID = %q, want originalId + currentYear (abc2026)", got.ID)
	}
	if got.Birthday.Year() != 2026 {
		t.Errorf("Birthday year = %d, want rewritten to 2026", got.Birthday.Year())
	}
	if got.Birthday.Month() != time.August || got.Birthday.Day() != 29 {
		t.Errorf("Birthday month/day changed: %v", got.Birthday)
	}
}

func TestSelectTodaysBirthdaysSkipsZeroBirthday(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	users := []graph.UserBirthday{{ID: "u1", DisplayName: "NoBirthday"}}

	if got := SelectTodaysBirthdays(users, now); len(got) != 0 {
		t.Errorf("selected %d users with zero birthday, want 0", len(got))
	}
}

func TestSelectTodaysBirthdaysDoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	users := []graph.UserBirthday{
		{ID: "abc", Birthday: time.Date(1985, 8, 29, 0, 0, 0, 0, time.UTC)},
	}

	SelectTodaysBirthdays(users, now)

	if users[0].ID != "abc" {
		t.Errorf("input slice mutated: ID = %q", users[0].ID)
	}
	if users[0].Birthday.Year() != 1985 {
		t.Errorf("input slice mutated: year = %d", users[0].Birthday.Year())
	}
}

func TestSameDayEvents(t *testing.T) {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	events := []graph.Event{
		{ID: "kept-20h", CreatedAt: start.Add(-20 * time.Hour), StartsAt: start},
		{ID: "dropped-30h", CreatedAt: start.Add(-30 * time.Hour), StartsAt: start},
		{ID: "kept-after-start", CreatedAt: start.Add(time.Hour), StartsAt: start},
	}

	kept := SameDayEvents(events)

	if len(kept) != 2 {
		t.Fatalf("len(kept) = %d, want 2", len(kept))
	}
	if kept[0].ID != "kept-20h" || kept[1].ID != "kept-after-start" {
		t.Errorf("kept = [%s %s]", kept[0].ID, kept[1].ID)
	}
}

func TestPublishedPages(t *testing.T) {
	pages := []graph.NotebookPage{
		{ID: "p1", Title: "Notes#publish"},
		{ID: "p2", Title: "Notes"},
		{ID: "p3", Title: "#publish draft"},
	}

	kept := PublishedPages(pages)

	if len(kept) != 1 {
		t.Fatalf("len(kept) = %d, want 1", len(kept))
	}
	if kept[0].ID != "p1" {
		t.Errorf("kept = %q, want p1", kept[0].ID)
	}
}
