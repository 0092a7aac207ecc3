package attempt

import (
	"context"

	"github.com/casetalk/casetalk/internal/store"
)

// StoreRepo adapts the persistence layer's AttemptRepo to this
// package's Repo interface.
type StoreRepo struct {
	repo store.AttemptRepo
}

// NewStoreRepo wraps a store-backed attempt repo.
func NewStoreRepo(repo store.AttemptRepo) *StoreRepo {
	return &StoreRepo{repo: repo}
}

func (r *StoreRepo) NextAttemptNumber(ctx context.Context, studentID, caseID string) (int, error) {
	return r.repo.NextAttemptNumber(ctx, studentID, caseID)
}

func (r *StoreRepo) SaveAttempt(ctx context.Context, a *Attempt) error {
	return r.repo.SaveAttempt(ctx, &store.AttemptData{
		AttemptID:        a.ID,
		StudentID:        a.StudentID,
		CaseID:           a.CaseID,
		AttemptNumber:    a.AttemptNumber,
		StartedAt:        a.StartedAt,
		TotalMessages:    a.TotalMessages,
		TotalTimeSeconds: a.TotalTimeSeconds,
		NodePath:         a.NodePath,
		Score:            a.Score,
		ScoreBreakdown:   a.ScoreBreakdown,
		IsPassing:        a.IsPassing,
		Abandoned:        a.Abandoned,
	})
}

// FromData rebuilds a sealed attempt from its stored form, for
// read-side consumers like the learning curve.
func FromData(d *store.AttemptData) *Attempt {
	return &Attempt{
		ID:               d.AttemptID,
		StudentID:        d.StudentID,
		CaseID:           d.CaseID,
		AttemptNumber:    d.AttemptNumber,
		StartedAt:        d.StartedAt,
		TotalMessages:    d.TotalMessages,
		TotalTimeSeconds: d.TotalTimeSeconds,
		NodePath:         d.NodePath,
		Score:            d.Score,
		ScoreBreakdown:   d.ScoreBreakdown,
		IsPassing:        d.IsPassing,
		Abandoned:        d.Abandoned,
		sealed:           true,
	}
}
