package attempt

import (
	"context"
	"fmt"
)

// Repo is the persistence surface the tracker needs.
// NextAttemptNumber atomically reserves the next number for the pair;
// the counter never rewinds, even when earlier attempts are deleted,
// so numbers are never reused.
type Repo interface {
	NextAttemptNumber(ctx context.Context, studentID, caseID string) (int, error)
	SaveAttempt(ctx context.Context, a *Attempt) error
}

// Tracker issues attempts with strictly increasing numbers per
// (student, case) pair.
type Tracker struct {
	repo Repo
}

// NewTracker creates a tracker over the given repo.
func NewTracker(repo Repo) *Tracker {
	return &Tracker{repo: repo}
}

// Begin starts a new attempt numbered one past the highest prior
// attempt for this student and case, starting at 1.
func (t *Tracker) Begin(ctx context.Context, studentID, caseID string) (*Attempt, error) {
	n, err := t.repo.NextAttemptNumber(ctx, studentID, caseID)
	if err != nil {
		return nil, fmt.Errorf("reserve attempt number: %w", err)
	}
	return newAttempt(studentID, caseID, n), nil
}

// Save persists a (typically sealed) attempt.
func (t *Tracker) Save(ctx context.Context, a *Attempt) error {
	return t.repo.SaveAttempt(ctx, a)
}
