package graph

import "time"

// Domain views of the Graph resources this service consumes. The SDK models
// stay behind this package; handlers and normalizers only see these structs.

// UserProfile identifies the signed-in user (the /me probe).
type UserProfile struct {
	ID            string
	DisplayName   string
	PrincipalName string
}

// Message is a mail message where the user was @mentioned.
type Message struct {
	ID         string
	Subject    string
	SenderName string
	ReceivedAt time.Time
}

// Event is a calendar event.
type Event struct {
	ID            string
	Subject       string
	OrganizerName string
	CreatedAt     time.Time
	StartsAt      time.Time
}

// UserBirthday is the subset of a user needed by the birthday trigger.
type UserBirthday struct {
	ID          string
	DisplayName string
	Birthday    time.Time
}

// NotebookPage is a OneNote page with its parent notebook and section
// expanded.
type NotebookPage struct {
	ID           string
	Title        string
	NotebookName string
	SectionName  string
	ContentURL   string
	CreatedAt    time.Time
}

// Section is a OneNote section.
type Section struct {
	ID           string
	Name         string
	NotebookName string
}

// DirectoryEntry is any directory object reduced to id + display name, used
// to populate dropdown options (teams, groups, channels).
type DirectoryEntry struct {
	ID          string
	DisplayName string
}
