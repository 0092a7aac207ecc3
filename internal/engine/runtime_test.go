package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/casetalk/casetalk/internal/factcheck"
	"github.com/casetalk/casetalk/internal/llm"
	"github.com/casetalk/casetalk/internal/scenario"
)

// sinkRecorder captures everything the runtime forwards to the sink.
type sinkRecorder struct {
	messages  []Message
	completes int
	last      *Session
}

func (s *sinkRecorder) RecordMessage(_ context.Context, m Message) error {
	s.messages = append(s.messages, m)
	return nil
}

func (s *sinkRecorder) Complete(_ context.Context, sess *Session) error {
	s.completes++
	s.last = sess
	return nil
}

func interviewCase() *scenario.Case {
	return &scenario.Case{
		ID:          "case-1",
		Title:       "Coffee Chain Expansion",
		Description: "A regional coffee chain is deciding whether to expand into a new city.",
		Persona:     "Maya, a senior strategy consultant",
		Status:      scenario.StatusPublished,
		StartNodeID: "n1",
		Nodes: []scenario.Node{
			{ID: "n1", Type: scenario.NodeOpening, Label: "Welcome", Content: "Welcome to the case interview."},
			{ID: "n2", Type: scenario.NodeQuestion, Label: "Q1", Content: "How would you size this market?"},
			{ID: "n3", Type: scenario.NodeEnding, Label: "Wrap", Content: "Thanks, that concludes our case."},
		},
		Edges: []scenario.Edge{
			{ID: "e1", SourceNodeID: "n1", TargetNodeID: "n2"},
			{ID: "e2", SourceNodeID: "n2", TargetNodeID: "n3"},
		},
		Objectives: []scenario.LearningObjective{
			{ID: "o1", Title: "Market sizing", Type: scenario.ObjectiveSkill, Weight: 5},
		},
	}
}

func newTestRuntime(t *testing.T, c *scenario.Case, cfg Config) *Runtime {
	t.Helper()
	if cfg.Provider == nil {
		cfg.Provider = llm.NewMockProvider(llm.TextResponse("Good, walk me through your approach."))
	}
	r, err := NewRuntime(c, cfg)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	return r
}

func TestRuntime_StartStopsAtQuestion(t *testing.T) {
	r := newTestRuntime(t, interviewCase(), Config{})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	s := r.Session()
	if s.Status != StatusWaitingForInput {
		t.Fatalf("expected waiting_for_input, got %s", s.Status)
	}
	if s.CurrentNodeID != "n2" {
		t.Fatalf("expected current node n2, got %s", s.CurrentNodeID)
	}
	if len(s.Messages) != 2 {
		t.Fatalf("expected 2 messages (opening, question), got %d", len(s.Messages))
	}
	for _, m := range s.Messages {
		if m.Role != RoleAssistant {
			t.Errorf("expected assistant message, got %s", m.Role)
		}
	}
}

func TestRuntime_FullScenario(t *testing.T) {
	sink := &sinkRecorder{}
	r := newTestRuntime(t, interviewCase(), Config{Sink: sink})

	ctx := context.Background()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.HandleUserMessage(ctx, "I would segment by population and coffee consumption."); err != nil {
		t.Fatalf("HandleUserMessage: %v", err)
	}

	s := r.Session()
	if s.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", s.Status)
	}

	// Opening, question, avatar reply, ending = 4 assistant entries plus
	// the user's answer.
	var assistant, user int
	for _, m := range s.Messages {
		switch m.Role {
		case RoleAssistant:
			assistant++
		case RoleUser:
			user++
		}
	}
	if assistant != 4 || user != 1 {
		t.Fatalf("expected 4 assistant + 1 user messages, got %d + %d", assistant, user)
	}

	if sink.completes != 1 {
		t.Fatalf("expected exactly 1 completion, got %d", sink.completes)
	}
	if len(sink.messages) != len(s.Messages) {
		t.Fatalf("sink saw %d messages, transcript has %d", len(sink.messages), len(s.Messages))
	}
	if s.Abandoned {
		t.Fatal("completed session should not be marked abandoned")
	}
}

func TestRuntime_StartTwice(t *testing.T) {
	r := newTestRuntime(t, interviewCase(), Config{})
	ctx := context.Background()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Start(ctx); err == nil {
		t.Fatal("expected error on second Start")
	}
}

func TestRuntime_UserMessageWhileRunning(t *testing.T) {
	r := newTestRuntime(t, interviewCase(), Config{})
	if err := r.HandleUserMessage(context.Background(), "hello?"); err == nil {
		t.Fatal("expected error when not waiting for input")
	}
}

func TestRuntime_ListenNodeEmitsNothing(t *testing.T) {
	c := interviewCase()
	c.Nodes[1] = scenario.Node{ID: "n2", Type: scenario.NodeListen, Label: "Listen"}
	r := newTestRuntime(t, c, Config{})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	s := r.Session()
	if s.Status != StatusWaitingForInput {
		t.Fatalf("expected waiting_for_input, got %s", s.Status)
	}
	// Only the opening spoke.
	if len(s.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(s.Messages))
	}
}

func TestRuntime_CheckpointMessage(t *testing.T) {
	c := interviewCase()
	c.Nodes = append(c.Nodes, scenario.Node{
		ID: "n4", Type: scenario.NodeCheckpoint, Label: "Framework",
		Content:  "You structured the problem.",
		Metadata: map[string]string{"objectiveId": "o1"},
	})
	c.Edges = []scenario.Edge{
		{ID: "e1", SourceNodeID: "n1", TargetNodeID: "n4"},
		{ID: "e2", SourceNodeID: "n4", TargetNodeID: "n3"},
	}
	r := newTestRuntime(t, c, Config{})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	s := r.Session()
	if s.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", s.Status)
	}

	found := false
	for _, m := range s.Messages {
		if m.NodeID == "n4" {
			found = true
			if !strings.HasPrefix(m.Content, "[Checkpoint: Framework]") {
				t.Errorf("checkpoint message not distinguished: %q", m.Content)
			}
		}
	}
	if !found {
		t.Fatal("checkpoint message missing from transcript")
	}

	// Checkpoint and ending both recorded for scoring.
	if len(s.CheckpointsReached) != 2 || s.CheckpointsReached[0] != "n4" || s.CheckpointsReached[1] != "n3" {
		t.Fatalf("unexpected checkpoints reached: %v", s.CheckpointsReached)
	}
}

func TestRuntime_BranchFirstEdgeDeterministic(t *testing.T) {
	build := func() *scenario.Case {
		c := interviewCase()
		c.Nodes = append(c.Nodes,
			scenario.Node{ID: "b1", Type: scenario.NodeBranch, Label: "Route"},
			scenario.Node{ID: "alt", Type: scenario.NodeEnding, Label: "Alt", Content: "Alternate ending."},
		)
		c.Edges = []scenario.Edge{
			{ID: "e1", SourceNodeID: "n1", TargetNodeID: "b1"},
			{ID: "e2", SourceNodeID: "b1", TargetNodeID: "n3"},
			{ID: "e3", SourceNodeID: "b1", TargetNodeID: "alt"},
		}
		return c
	}

	for i := 0; i < 10; i++ {
		r := newTestRuntime(t, build(), Config{})
		if err := r.Start(context.Background()); err != nil {
			t.Fatalf("Start: %v", err)
		}
		s := r.Session()
		if s.CurrentNodeID != "n3" {
			t.Fatalf("run %d: branch did not take first edge, ended at %s", i, s.CurrentNodeID)
		}
		// Branch nodes never appear in the transcript.
		for _, m := range s.Messages {
			if m.NodeID == "b1" {
				t.Fatal("branch node appeared in transcript")
			}
		}
	}
}

func TestRuntime_DanglingTransitionImplicitEnding(t *testing.T) {
	c := interviewCase()
	// Dialogue node with no outgoing edge.
	c.Nodes[1] = scenario.Node{ID: "n2", Type: scenario.NodeDialogue, Label: "Dead end", Content: "And then..."}
	c.Edges = c.Edges[:1]

	sink := &sinkRecorder{}
	r := newTestRuntime(t, c, Config{Sink: sink})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if r.Session().Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", r.Session().Status)
	}
	if sink.completes != 1 {
		t.Fatalf("expected 1 completion, got %d", sink.completes)
	}
}

func TestRuntime_BlockedMessageStaysOnNode(t *testing.T) {
	c := interviewCase()
	c.Guardrails.BlockedTopics = []string{"politics"}
	c.Guardrails.BlockedResponses = []string{"Let's get back to the case."}

	mock := llm.NewMockProvider(llm.TextResponse("Good structure."))
	r := newTestRuntime(t, c, Config{Provider: mock})

	ctx := context.Background()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.HandleUserMessage(ctx, "What do you think about politics?"); err != nil {
		t.Fatalf("HandleUserMessage: %v", err)
	}

	s := r.Session()
	if s.Status != StatusWaitingForInput {
		t.Fatalf("expected waiting_for_input after block, got %s", s.Status)
	}
	if s.CurrentNodeID != "n2" {
		t.Fatalf("expected to stay on n2, got %s", s.CurrentNodeID)
	}
	last := s.Messages[len(s.Messages)-1]
	if last.Role != RoleAssistant || last.Content != "Let's get back to the case." {
		t.Fatalf("expected substitute response, got %+v", last)
	}
	if mock.CallCount() != 0 {
		t.Fatal("blocked message must not reach the LLM")
	}

	// A real answer afterwards still completes the case.
	if err := r.HandleUserMessage(ctx, "I'd start with the market size."); err != nil {
		t.Fatalf("HandleUserMessage: %v", err)
	}
	if s.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", s.Status)
	}
}

func TestRuntime_CollaboratorFailureApology(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("timeout")}},
		llm.TextResponse("Good, go on."),
	)
	r := newTestRuntime(t, interviewCase(), Config{Provider: mock})

	ctx := context.Background()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.HandleUserMessage(ctx, "First attempt."); err != nil {
		t.Fatalf("HandleUserMessage should recover, got: %v", err)
	}

	s := r.Session()
	if s.Status != StatusWaitingForInput {
		t.Fatalf("expected waiting_for_input after failure, got %s", s.Status)
	}
	last := s.Messages[len(s.Messages)-1]
	if last.Content != apologyMessage {
		t.Fatalf("expected apology, got %q", last.Content)
	}

	// Retry works.
	if err := r.HandleUserMessage(ctx, "Second attempt."); err != nil {
		t.Fatalf("HandleUserMessage: %v", err)
	}
	if s.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", s.Status)
	}
}

func TestRuntime_AbandonFinalizesWithFlag(t *testing.T) {
	sink := &sinkRecorder{}
	r := newTestRuntime(t, interviewCase(), Config{Sink: sink})

	ctx := context.Background()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Abandon(ctx); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if err := r.Abandon(ctx); err != nil {
		t.Fatalf("second Abandon: %v", err)
	}

	if sink.completes != 1 {
		t.Fatalf("expected 1 completion, got %d", sink.completes)
	}
	if !sink.last.Abandoned {
		t.Fatal("expected abandoned flag on session")
	}
}

func TestRuntime_FactCheckRecorded(t *testing.T) {
	c := interviewCase()
	c.Guardrails.RequireFactCheck = true

	checker := factcheck.NewMockChecker(factcheck.Result{Passed: false, Reason: "invented numbers"})
	r := newTestRuntime(t, c, Config{Checker: checker})

	ctx := context.Background()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.HandleUserMessage(ctx, "The market is 10 million people."); err != nil {
		t.Fatalf("HandleUserMessage: %v", err)
	}

	s := r.Session()
	passed, ok := s.FactCheckResults["n2"]
	if !ok {
		t.Fatal("expected fact check result for n2")
	}
	if passed {
		t.Fatal("expected fact check failure recorded")
	}
	if len(checker.Calls) != 1 {
		t.Fatalf("expected 1 checker call, got %d", len(checker.Calls))
	}
}

func TestRuntime_TranscriptTagsFormGraphPath(t *testing.T) {
	r := newTestRuntime(t, interviewCase(), Config{})
	ctx := context.Background()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.HandleUserMessage(ctx, "Segment the population."); err != nil {
		t.Fatalf("HandleUserMessage: %v", err)
	}

	g := scenario.NewGraph(interviewCase())
	s := r.Session()

	var prev string
	for _, m := range s.Messages {
		if m.NodeID == "" || m.NodeID == prev {
			continue
		}
		if prev != "" && g.NextNode(prev) != m.NodeID {
			t.Fatalf("transcript jumps from %s to %s, not a graph transition", prev, m.NodeID)
		}
		prev = m.NodeID
	}
}
