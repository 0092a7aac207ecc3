package attempt

import (
	"context"
	"fmt"

	"github.com/casetalk/casetalk/internal/engine"
	"github.com/casetalk/casetalk/internal/scenario"
	"github.com/casetalk/casetalk/internal/store"
)

// SessionSink connects a live attempt to a running engine session: it
// records every transcript message and finalizes the attempt when the
// session completes. Implements engine.AttemptSink.
type SessionSink struct {
	attempt   *Attempt
	c         *scenario.Case
	tracker   *Tracker
	events    store.EventRepo
	sessionID string
}

// NewSessionSink binds an attempt to a case. The tracker may be nil
// when sealed attempts should not be persisted.
func NewSessionSink(a *Attempt, c *scenario.Case, tracker *Tracker) *SessionSink {
	return &SessionSink{attempt: a, c: c, tracker: tracker}
}

// WithEvents mirrors every recorded message into the event log under
// the given session ID.
func (s *SessionSink) WithEvents(events store.EventRepo, sessionID string) *SessionSink {
	s.events = events
	s.sessionID = sessionID
	return s
}

// Attempt returns the underlying attempt.
func (s *SessionSink) Attempt() *Attempt {
	return s.attempt
}

func (s *SessionSink) RecordMessage(ctx context.Context, m engine.Message) error {
	if err := s.attempt.Record(m); err != nil {
		return err
	}
	if s.events == nil {
		return nil
	}
	return s.events.AppendMessage(ctx, store.MessageEventData{
		SessionID: s.sessionID,
		AttemptID: s.attempt.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		NodeID:    m.NodeID,
	})
}

func (s *SessionSink) Complete(ctx context.Context, sess *engine.Session) error {
	s.attempt.Finalize(s.c, sess)
	if s.tracker == nil {
		return nil
	}
	if err := s.tracker.Save(ctx, s.attempt); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}
