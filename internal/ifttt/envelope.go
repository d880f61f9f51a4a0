// Package ifttt shapes Graph data into the envelopes the IFTTT Service
// Protocol expects. Everything in this package is pure: no network calls,
// no clock reads beyond what callers pass in.
package ifttt

import "sort"

// Meta is the identity block IFTTT requires on every trigger item.
// Timestamp is epoch seconds.
type Meta struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
}

// TriggerResponse is the envelope for any trigger endpoint. Data is ordered
// newest-first by meta.timestamp and never nil.
type TriggerResponse[T timestamped] struct {
	Data []T `json:"data"`
}

// MessageItem is one @mention mail message.
type MessageItem struct {
	Meta    Meta   `json:"meta"`
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
}

func (m MessageItem) timestamp() int64 { return m.Meta.Timestamp }

// EventItem is one calendar event.
type EventItem struct {
	Meta          Meta   `json:"meta"`
	OrganizerName string `json:"organizer_name"`
	Subject       string `json:"subject"`
	StartTime     string `json:"start_time"`
}

func (e EventItem) timestamp() int64 { return e.Meta.Timestamp }

// BirthdayItem is one group member whose birthday falls today.
type BirthdayItem struct {
	Meta        Meta   `json:"meta"`
	DisplayName string `json:"display_name"`
	Birthday    string `json:"birthday"`
}

func (b BirthdayItem) timestamp() int64 { return b.Meta.Timestamp }

// PageItem is one OneNote page.
type PageItem struct {
	Meta         Meta   `json:"meta"`
	Title        string `json:"title"`
	NotebookName string `json:"notebook_name"`
	SectionName  string `json:"section_name"`
	URL          string `json:"url"`
	CreatedAt    string `json:"created_at"`
}

func (p PageItem) timestamp() int64 { return p.Meta.Timestamp }

type timestamped interface {
	timestamp() int64
}

// finalize applies the IFTTT ordering contract: stable sort descending by
// timestamp (ties keep input order), then truncate to max items.
func finalize[T timestamped](items []T, max int) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].timestamp() > items[j].timestamp()
	})
	if len(items) > max {
		items = items[:max]
	}
	return items
}
