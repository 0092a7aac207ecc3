package store

import (
	"context"
	"fmt"

	"github.com/casetalk/casetalk/ent"
	"github.com/casetalk/casetalk/ent/attemptrecord"
)

// attemptRepo implements AttemptRepo using the ent client plus the raw
// attempt counter.
type attemptRepo struct {
	client  *ent.Client
	counter *attemptCounter
}

func (r *attemptRepo) NextAttemptNumber(ctx context.Context, studentID, caseID string) (int, error) {
	return r.counter.Next(ctx, studentID, caseID)
}

func (r *attemptRepo) SaveAttempt(ctx context.Context, a *AttemptData) error {
	builder := r.client.AttemptRecord.Create().
		SetAttemptID(a.AttemptID).
		SetStudentID(a.StudentID).
		SetCaseID(a.CaseID).
		SetAttemptNumber(a.AttemptNumber).
		SetStartedAt(a.StartedAt).
		SetTotalMessages(a.TotalMessages).
		SetTotalTimeSeconds(a.TotalTimeSeconds).
		SetIsPassing(a.IsPassing).
		SetAbandoned(a.Abandoned)

	if len(a.NodePath) > 0 {
		builder = builder.SetNodePath(a.NodePath)
	}
	if a.Score != nil {
		builder = builder.SetScore(*a.Score)
	}
	if len(a.ScoreBreakdown) > 0 {
		builder = builder.SetScoreBreakdown(a.ScoreBreakdown)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListAttempts(ctx context.Context, studentID, caseID string) ([]*AttemptData, error) {
	records, err := r.client.AttemptRecord.Query().
		Where(attemptrecord.StudentID(studentID), attemptrecord.CaseID(caseID)).
		Order(ent.Asc(attemptrecord.FieldAttemptNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	out := make([]*AttemptData, len(records))
	for i, rec := range records {
		out[i] = &AttemptData{
			AttemptID:        rec.AttemptID,
			StudentID:        rec.StudentID,
			CaseID:           rec.CaseID,
			AttemptNumber:    rec.AttemptNumber,
			StartedAt:        rec.StartedAt,
			TotalMessages:    rec.TotalMessages,
			TotalTimeSeconds: rec.TotalTimeSeconds,
			NodePath:         rec.NodePath,
			Score:            rec.Score,
			ScoreBreakdown:   rec.ScoreBreakdown,
			IsPassing:        rec.IsPassing,
			Abandoned:        rec.Abandoned,
		}
	}
	return out, nil
}

func (r *attemptRepo) DeleteAttempts(ctx context.Context, studentID, caseID string) (int, error) {
	q := r.client.AttemptRecord.Delete().
		Where(attemptrecord.StudentID(studentID))
	if caseID != "" {
		q = q.Where(attemptrecord.CaseID(caseID))
	}

	n, err := q.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete attempts: %w", err)
	}
	return n, nil
}
