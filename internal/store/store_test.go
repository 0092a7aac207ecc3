package store

import (
	"context"
	"testing"

	"github.com/casetalk/casetalk/internal/scenario"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAttemptNumbersSurviveDeletion(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		n, err := repo.NextAttemptNumber(ctx, "student-1", "case-1")
		if err != nil {
			t.Fatalf("next attempt number: %v", err)
		}
		if n != want {
			t.Fatalf("attempt number = %d, want %d", n, want)
		}
		score := 70 + want
		err = repo.SaveAttempt(ctx, &AttemptData{
			AttemptID:     "a" + string(rune('0'+want)),
			StudentID:     "student-1",
			CaseID:        "case-1",
			AttemptNumber: n,
			Score:         &score,
		})
		if err != nil {
			t.Fatalf("save attempt: %v", err)
		}
	}

	deleted, err := repo.DeleteAttempts(ctx, "student-1", "case-1")
	if err != nil {
		t.Fatalf("delete attempts: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("deleted = %d, want 3", deleted)
	}

	// The counter does not rewind.
	n, err := repo.NextAttemptNumber(ctx, "student-1", "case-1")
	if err != nil {
		t.Fatalf("next attempt number: %v", err)
	}
	if n != 4 {
		t.Errorf("attempt number after delete = %d, want 4", n)
	}

	// Independent pairs start at 1.
	n, err = repo.NextAttemptNumber(ctx, "student-2", "case-1")
	if err != nil {
		t.Fatalf("next attempt number: %v", err)
	}
	if n != 1 {
		t.Errorf("attempt number for new student = %d, want 1", n)
	}
}

func TestAttemptSaveAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	score := 85
	err := repo.SaveAttempt(ctx, &AttemptData{
		AttemptID:        "a1",
		StudentID:        "student-1",
		CaseID:           "case-1",
		AttemptNumber:    1,
		TotalMessages:    7,
		TotalTimeSeconds: 240,
		NodePath:         []string{"n1", "n2", "n3"},
		Score:            &score,
		ScoreBreakdown:   map[string]int{"o1": 100, "o2": 70},
		IsPassing:        true,
	})
	if err != nil {
		t.Fatalf("save attempt: %v", err)
	}
	err = repo.SaveAttempt(ctx, &AttemptData{
		AttemptID:     "a2",
		StudentID:     "student-1",
		CaseID:        "case-1",
		AttemptNumber: 2,
		Abandoned:     true,
	})
	if err != nil {
		t.Fatalf("save abandoned attempt: %v", err)
	}

	attempts, err := repo.ListAttempts(ctx, "student-1", "case-1")
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}

	first := attempts[0]
	if first.Score == nil || *first.Score != 85 {
		t.Errorf("score = %v, want 85", first.Score)
	}
	if first.ScoreBreakdown["o2"] != 70 {
		t.Errorf("breakdown o2 = %d, want 70", first.ScoreBreakdown["o2"])
	}
	if len(first.NodePath) != 3 {
		t.Errorf("node path length = %d, want 3", len(first.NodePath))
	}

	second := attempts[1]
	if second.Score != nil {
		t.Errorf("abandoned attempt score = %v, want nil", second.Score)
	}
	if !second.Abandoned {
		t.Error("expected abandoned flag")
	}
}

func TestCaseSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.CaseRepo()
	ctx := context.Background()

	c := &scenario.Case{
		ID:          "case-1",
		Title:       "Coffee Chain Expansion",
		Version:     1,
		Status:      scenario.StatusDraft,
		StartNodeID: "n1",
		Nodes: []scenario.Node{
			{ID: "n1", Type: scenario.NodeOpening, Content: "Welcome."},
		},
		Objectives: []scenario.LearningObjective{
			{ID: "o1", Title: "Market sizing", Type: scenario.ObjectiveSkill, Weight: 5},
		},
	}
	if err := repo.SaveCase(ctx, c); err != nil {
		t.Fatalf("save case: %v", err)
	}

	got, err := repo.GetCase(ctx, "case-1")
	if err != nil {
		t.Fatalf("get case: %v", err)
	}
	if got == nil {
		t.Fatal("expected case, got nil")
	}
	if got.Title != c.Title || len(got.Nodes) != 1 || got.Objectives[0].Weight != 5 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}

	// No published version yet.
	pub, err := repo.GetPublished(ctx, "case-1")
	if err != nil {
		t.Fatalf("get published: %v", err)
	}
	if pub != nil {
		t.Fatal("expected nil published case")
	}

	// Publish as version 2; GetCase returns the newest, GetPublished
	// the published one.
	c2 := *c
	c2.Version = 2
	c2.Status = scenario.StatusPublished
	if err := repo.SaveCase(ctx, &c2); err != nil {
		t.Fatalf("save published: %v", err)
	}

	got, err = repo.GetCase(ctx, "case-1")
	if err != nil {
		t.Fatalf("get case: %v", err)
	}
	if got.Version != 2 {
		t.Errorf("newest version = %d, want 2", got.Version)
	}

	pub, err = repo.GetPublished(ctx, "case-1")
	if err != nil {
		t.Fatalf("get published: %v", err)
	}
	if pub == nil || pub.Version != 2 {
		t.Fatalf("published = %+v, want version 2", pub)
	}
}

func TestCaseSaveReplacesSameVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.CaseRepo()
	ctx := context.Background()

	c := &scenario.Case{ID: "case-1", Title: "Draft A", Version: 1, Status: scenario.StatusDraft}
	if err := repo.SaveCase(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	c.Title = "Draft B"
	if err := repo.SaveCase(ctx, c); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	got, err := repo.GetCase(ctx, "case-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Draft B" {
		t.Errorf("title = %q, want Draft B", got.Title)
	}

	cases, err := repo.ListCases(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cases) != 1 {
		t.Errorf("expected 1 case, got %d", len(cases))
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "avatar-reply", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true, RequestBody: "[user]\nhello", ResponseBody: "hi"},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "avatar-reply", InputTokens: 200, OutputTokens: 80, LatencyMs: 1200, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "fact-check", InputTokens: 50, OutputTokens: 10, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Purpose != "fact-check" {
		t.Errorf("first event purpose = %q, want fact-check", got[0].Purpose)
	}

	e, err := repo.GetLLMEvent(ctx, got[1].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if e == nil || e.ID != got[1].ID {
		t.Fatalf("get event mismatch: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(usage))
	}
	// Sorted: avatar-reply before fact-check.
	if usage[0].Purpose != "avatar-reply" || usage[0].Calls != 2 || usage[0].InputTokens != 300 {
		t.Errorf("unexpected avatar-reply usage: %+v", usage[0])
	}
	if usage[0].AvgLatencyMs != 1000 {
		t.Errorf("avg latency = %d, want 1000", usage[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 {
		t.Errorf("unexpected model usage: %+v", byModel)
	}
}

func TestMessageEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendMessage(ctx, MessageEventData{
		SessionID: "sess-1",
		AttemptID: "a1",
		Role:      "assistant",
		Content:   "Welcome to the case interview.",
		NodeID:    "n1",
	})
	if err != nil {
		t.Fatalf("append message: %v", err)
	}

	count, err := s.Client().MessageEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("message events = %d, want 1", count)
	}
}
