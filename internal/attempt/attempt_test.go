package attempt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/casetalk/casetalk/internal/engine"
	"github.com/casetalk/casetalk/internal/scenario"
)

func scoredCase() *scenario.Case {
	return &scenario.Case{
		ID:          "case-1",
		Title:       "Coffee Chain Expansion",
		StartNodeID: "n1",
		Nodes: []scenario.Node{
			{ID: "n1", Type: scenario.NodeOpening, Content: "Welcome."},
			{ID: "q1", Type: scenario.NodeQuestion, Content: "Size the market.", Metadata: map[string]string{"objectiveId": "o1"}},
			{ID: "cp1", Type: scenario.NodeCheckpoint, Label: "Sizing", Metadata: map[string]string{"objectiveId": "o1"}},
			{ID: "cp2", Type: scenario.NodeCheckpoint, Label: "Risks", Metadata: map[string]string{"objectiveId": "o2"}},
			{ID: "end", Type: scenario.NodeEnding, Content: "Done.", Metadata: map[string]string{"objectiveId": "o3"}},
		},
		Objectives: []scenario.LearningObjective{
			{ID: "o1", Title: "Market sizing", Weight: 5},
			{ID: "o2", Title: "Risk analysis", Weight: 3},
			{ID: "o3", Title: "Completion", Weight: 2},
		},
	}
}

func completedSession(checkpoints ...string) *engine.Session {
	s := engine.NewSession("case-1")
	s.Status = engine.StatusCompleted
	s.CheckpointsReached = checkpoints
	return s
}

func TestTracker_NumbersStrictlyIncreasing(t *testing.T) {
	repo := NewMemoryRepo()
	tr := NewTracker(repo)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		a, err := tr.Begin(ctx, "student-1", "case-1")
		if err != nil {
			t.Fatalf("Begin: %v", err)
		}
		if a.AttemptNumber != want {
			t.Fatalf("expected attempt #%d, got %d", want, a.AttemptNumber)
		}
		if err := tr.Save(ctx, a); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	// Deleting history never rewinds the counter.
	repo.Delete("student-1", "case-1")
	a, err := tr.Begin(ctx, "student-1", "case-1")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if a.AttemptNumber != 4 {
		t.Fatalf("expected attempt #4 after deletion, got %d", a.AttemptNumber)
	}

	// Other pairs are independent.
	b, err := tr.Begin(ctx, "student-2", "case-1")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if b.AttemptNumber != 1 {
		t.Fatalf("expected attempt #1 for new student, got %d", b.AttemptNumber)
	}
}

func TestAttempt_RecordUpdatesCounters(t *testing.T) {
	a := newAttempt("student-1", "case-1", 1)

	base := a.StartedAt
	msgs := []engine.Message{
		{Role: engine.RoleAssistant, Content: "Welcome.", NodeID: "n1", Timestamp: base.Add(1 * time.Second)},
		{Role: engine.RoleAssistant, Content: "Size the market.", NodeID: "q1", Timestamp: base.Add(2 * time.Second)},
		{Role: engine.RoleUser, Content: "10M people.", NodeID: "q1", Timestamp: base.Add(30 * time.Second)},
	}
	for _, m := range msgs {
		if err := a.Record(m); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	if a.TotalMessages != 3 {
		t.Fatalf("expected 3 messages, got %d", a.TotalMessages)
	}
	if a.TotalTimeSeconds != 30 {
		t.Fatalf("expected 30s, got %d", a.TotalTimeSeconds)
	}
	// Consecutive messages on the same node collapse in the path.
	if len(a.NodePath) != 2 || a.NodePath[0] != "n1" || a.NodePath[1] != "q1" {
		t.Fatalf("unexpected node path: %v", a.NodePath)
	}
}

func TestAttempt_SealedRejectsRecord(t *testing.T) {
	a := newAttempt("student-1", "case-1", 1)
	a.Finalize(scoredCase(), completedSession("cp1", "end"))

	err := a.Record(engine.Message{Role: engine.RoleUser, Content: "late", Timestamp: time.Now()})
	if err == nil {
		t.Fatal("expected error")
	}
	var sealed *AttemptSealedError
	if !errors.As(err, &sealed) {
		t.Fatalf("expected AttemptSealedError, got %T", err)
	}
	if sealed.AttemptNumber != 1 {
		t.Fatalf("unexpected attempt number in error: %d", sealed.AttemptNumber)
	}
}

func TestAttempt_FinalizeIdempotent(t *testing.T) {
	a := newAttempt("student-1", "case-1", 1)
	c := scoredCase()
	s := completedSession("cp1", "end")

	first := a.Finalize(c, s)
	score1 := *first.Score

	// A second signal, even with a different session, changes nothing.
	second := a.Finalize(c, completedSession())
	if *second.Score != score1 {
		t.Fatalf("score changed on refinalize: %d != %d", *second.Score, score1)
	}
	if second.ScoreBreakdown["o1"] != first.ScoreBreakdown["o1"] {
		t.Fatal("breakdown changed on refinalize")
	}
}

func TestAttempt_AbandonedHasNilScore(t *testing.T) {
	a := newAttempt("student-1", "case-1", 1)
	s := completedSession()
	s.Abandoned = true

	a.Finalize(scoredCase(), s)
	if a.Score != nil {
		t.Fatalf("expected nil score for abandoned attempt, got %d", *a.Score)
	}
	if !a.Abandoned {
		t.Fatal("expected abandoned flag")
	}
	if !a.Sealed() {
		t.Fatal("abandoned attempt must still be sealed")
	}
}

func TestScore_AllObjectivesMet(t *testing.T) {
	a := newAttempt("student-1", "case-1", 1)
	a.Finalize(scoredCase(), completedSession("cp1", "cp2", "end"))

	if *a.Score != 100 {
		t.Fatalf("expected 100, got %d", *a.Score)
	}
	if !a.IsPassing {
		t.Fatal("expected passing")
	}
}

func TestScore_PartialCheckpoints(t *testing.T) {
	a := newAttempt("student-1", "case-1", 1)
	// o1 met (cp1), o2 missed, o3 met (end).
	a.Finalize(scoredCase(), completedSession("cp1", "end"))

	bd := a.ScoreBreakdown
	if bd["o1"] != 100 || bd["o2"] != 0 || bd["o3"] != 100 {
		t.Fatalf("unexpected breakdown: %v", bd)
	}
	// (100*5 + 0*3 + 100*2) / 10 = 70.
	if *a.Score != 70 {
		t.Fatalf("expected 70, got %d", *a.Score)
	}
	if !a.IsPassing {
		t.Fatal("70 is passing")
	}
}

func TestScore_FactCheckFailureHalvesObjective(t *testing.T) {
	a := newAttempt("student-1", "case-1", 1)
	s := completedSession("cp1", "cp2", "end")
	s.FactCheckResults["q1"] = false // q1 maps to o1

	a.Finalize(scoredCase(), s)

	if a.ScoreBreakdown["o1"] != 50 {
		t.Fatalf("expected o1 halved to 50, got %d", a.ScoreBreakdown["o1"])
	}
	// (50*5 + 100*3 + 100*2) / 10 = 75.
	if *a.Score != 75 {
		t.Fatalf("expected 75, got %d", *a.Score)
	}
}

func TestScore_UnmappedObjectiveScoresByCompletion(t *testing.T) {
	c := scoredCase()
	c.Objectives = append(c.Objectives, scenario.LearningObjective{ID: "o4", Title: "Engagement", Weight: 1})

	a := newAttempt("student-1", "case-1", 1)
	a.Finalize(c, completedSession("cp1", "cp2", "end"))
	if a.ScoreBreakdown["o4"] != 100 {
		t.Fatalf("expected unmapped objective 100 on completion, got %d", a.ScoreBreakdown["o4"])
	}

	b := newAttempt("student-1", "case-1", 2)
	b.Finalize(c, completedSession("cp1"))
	if b.ScoreBreakdown["o4"] != 0 {
		t.Fatalf("expected unmapped objective 0 without ending, got %d", b.ScoreBreakdown["o4"])
	}
}

func TestScore_NoObjectives(t *testing.T) {
	c := scoredCase()
	c.Objectives = nil

	a := newAttempt("student-1", "case-1", 1)
	a.Finalize(c, completedSession("end"))
	if *a.Score != 100 {
		t.Fatalf("expected 100 for completed case without objectives, got %d", *a.Score)
	}
}

func TestSessionSink_RecordsAndFinalizes(t *testing.T) {
	repo := NewMemoryRepo()
	tr := NewTracker(repo)
	ctx := context.Background()

	a, err := tr.Begin(ctx, "student-1", "case-1")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	sink := NewSessionSink(a, scoredCase(), tr)
	if err := sink.RecordMessage(ctx, engine.Message{Role: engine.RoleAssistant, Content: "Welcome.", NodeID: "n1", Timestamp: time.Now()}); err != nil {
		t.Fatalf("RecordMessage: %v", err)
	}
	if err := sink.Complete(ctx, completedSession("cp1", "cp2", "end")); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	saved := repo.Attempts("student-1", "case-1")
	if len(saved) != 1 {
		t.Fatalf("expected 1 saved attempt, got %d", len(saved))
	}
	if !saved[0].Sealed() || saved[0].Score == nil {
		t.Fatal("expected sealed, scored attempt")
	}
}
