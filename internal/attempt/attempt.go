package attempt

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/casetalk/casetalk/internal/engine"
	"github.com/casetalk/casetalk/internal/scenario"
)

// AttemptSealedError reports a mutation against a finalized attempt.
// This is a usage error, not a runtime condition.
type AttemptSealedError struct {
	AttemptID     string
	AttemptNumber int
}

func (e *AttemptSealedError) Error() string {
	return fmt.Sprintf("attempt %s (#%d) is sealed and cannot be modified", e.AttemptID, e.AttemptNumber)
}

// Attempt is one run of a student through a case. Once finalized it is
// sealed: Record fails and Finalize returns the stored result unchanged.
type Attempt struct {
	ID            string
	StudentID     string
	CaseID        string
	AttemptNumber int
	StartedAt     time.Time
	LastMessageAt time.Time

	TotalMessages    int
	TotalTimeSeconds int
	NodePath         []string

	// Score is nil until Finalize computes it, and stays nil for
	// abandoned sessions.
	Score          *int
	ScoreBreakdown map[string]int
	IsPassing      bool
	Abandoned      bool

	sealed bool
}

// Sealed reports whether the attempt has been finalized.
func (a *Attempt) Sealed() bool {
	return a.sealed
}

// Record appends one transcript message to the attempt's counters and
// node path. Returns AttemptSealedError after Finalize.
func (a *Attempt) Record(m engine.Message) error {
	if a.sealed {
		return &AttemptSealedError{AttemptID: a.ID, AttemptNumber: a.AttemptNumber}
	}

	a.TotalMessages++
	a.LastMessageAt = m.Timestamp
	a.TotalTimeSeconds = int(m.Timestamp.Sub(a.StartedAt).Seconds())

	if m.NodeID != "" {
		if n := len(a.NodePath); n == 0 || a.NodePath[n-1] != m.NodeID {
			a.NodePath = append(a.NodePath, m.NodeID)
		}
	}
	return nil
}

// Finalize scores the attempt against the case's learning objectives
// and seals it. Finalizing an already-sealed attempt is a no-op
// returning the stored result, so duplicate termination signals are
// harmless. Abandoned sessions seal with a nil score.
func (a *Attempt) Finalize(c *scenario.Case, s *engine.Session) *Attempt {
	if a.sealed {
		return a
	}
	a.sealed = true

	if s.Abandoned {
		a.Abandoned = true
		return a
	}

	score, breakdown := scoreSession(c, s)
	a.Score = &score
	a.ScoreBreakdown = breakdown
	a.IsPassing = score >= PassingScore
	return a
}

// newAttempt creates an unsealed attempt with the given number.
func newAttempt(studentID, caseID string, number int) *Attempt {
	return &Attempt{
		ID:            uuid.NewString(),
		StudentID:     studentID,
		CaseID:        caseID,
		AttemptNumber: number,
		StartedAt:     time.Now(),
	}
}
