package scenario

import (
	"strings"
	"testing"
)

// testCase builds a minimal valid case: opening → question → ending.
func testCase() *Case {
	return &Case{
		ID:          "negotiation-101",
		Title:       "Supplier Negotiation",
		Status:      StatusDraft,
		StartNodeID: "n1",
		Nodes: []Node{
			{ID: "n1", Type: NodeOpening, Label: "Intro", Content: "Welcome to the negotiation."},
			{ID: "n2", Type: NodeQuestion, Label: "Q1", Content: "What is your opening offer?"},
			{ID: "n3", Type: NodeEnding, Label: "Wrap", Content: "Thanks for playing."},
		},
		Edges: []Edge{
			{ID: "e1", SourceNodeID: "n1", TargetNodeID: "n2"},
			{ID: "e2", SourceNodeID: "n2", TargetNodeID: "n3"},
		},
		Objectives: []LearningObjective{
			{ID: "o1", Title: "Anchoring", Type: ObjectiveSkill, Weight: 5},
		},
	}
}

func TestValidate_ValidCase(t *testing.T) {
	res := Validate(testCase())
	if !res.OK() {
		t.Fatalf("expected valid case, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", res.Warnings)
	}
}

func TestValidate_MissingStartNode(t *testing.T) {
	c := testCase()
	c.StartNodeID = "nope"
	res := Validate(c)
	if res.OK() {
		t.Fatal("expected validation error for missing start node")
	}
	if !containsSubstring(res.Errors, "startNodeId") {
		t.Errorf("errors should mention startNodeId, got %v", res.Errors)
	}
}

func TestValidate_DanglingEdge(t *testing.T) {
	c := testCase()
	c.Edges = append(c.Edges, Edge{ID: "e3", SourceNodeID: "n3", TargetNodeID: "ghost"})
	res := Validate(c)
	if res.OK() {
		t.Fatal("expected validation error for dangling edge target")
	}
}

func TestValidate_DuplicateNodeID(t *testing.T) {
	c := testCase()
	c.Nodes = append(c.Nodes, Node{ID: "n1", Type: NodeDialogue, Content: "dup"})
	res := Validate(c)
	if !containsSubstring(res.Errors, "duplicate node ID") {
		t.Errorf("expected duplicate node ID error, got %v", res.Errors)
	}
}

func TestValidate_ExcessOutgoingEdges(t *testing.T) {
	c := testCase()
	// Second edge out of the dialogue-style opening node is an error.
	c.Edges = append(c.Edges, Edge{ID: "e3", SourceNodeID: "n1", TargetNodeID: "n3"})
	res := Validate(c)
	if res.OK() {
		t.Fatal("expected validation error for two outgoing edges on non-branch node")
	}
}

func TestValidate_BranchMayHaveMultipleEdges(t *testing.T) {
	c := testCase()
	c.Nodes = append(c.Nodes,
		Node{ID: "b1", Type: NodeBranch, Label: "Fork"},
		Node{ID: "n4", Type: NodeEnding, Label: "Alt end", Content: "Bye."},
	)
	c.Edges = []Edge{
		{ID: "e1", SourceNodeID: "n1", TargetNodeID: "b1"},
		{ID: "e2", SourceNodeID: "b1", TargetNodeID: "n2"},
		{ID: "e3", SourceNodeID: "b1", TargetNodeID: "n4"},
		{ID: "e4", SourceNodeID: "n2", TargetNodeID: "n3"},
	}
	res := Validate(c)
	if !res.OK() {
		t.Fatalf("branch node with two edges should validate, got %v", res.Errors)
	}
}

func TestValidate_UnreachableNodeIsWarning(t *testing.T) {
	c := testCase()
	c.Nodes = append(c.Nodes, Node{ID: "staged", Type: NodeDialogue, Content: "future content"})
	res := Validate(c)
	if !res.OK() {
		t.Fatalf("unreachable node must not be a hard failure, got %v", res.Errors)
	}
	if !containsSubstring(res.Warnings, "unreachable") {
		t.Errorf("expected unreachable warning, got %v", res.Warnings)
	}
}

func TestValidate_ObjectiveWeightRange(t *testing.T) {
	tests := []struct {
		weight int
		ok     bool
	}{
		{0, false},
		{1, true},
		{10, true},
		{11, false},
	}
	for _, tt := range tests {
		c := testCase()
		c.Objectives[0].Weight = tt.weight
		res := Validate(c)
		if res.OK() != tt.ok {
			t.Errorf("weight %d: OK() = %v, want %v", tt.weight, res.OK(), tt.ok)
		}
	}
}

func TestValidate_UnknownNodeType(t *testing.T) {
	c := testCase()
	c.Nodes[1].Type = "quiz"
	res := Validate(c)
	if res.OK() {
		t.Fatal("expected validation error for unknown node type")
	}
}

func TestPublish(t *testing.T) {
	c := testCase()
	if err := Publish(c); err != nil {
		t.Fatalf("publish valid case: %v", err)
	}
	if c.Status != StatusPublished {
		t.Errorf("status = %q, want published", c.Status)
	}
	if c.Version != 1 {
		t.Errorf("version = %d, want 1", c.Version)
	}
}

func TestPublish_InvalidCase(t *testing.T) {
	c := testCase()
	c.StartNodeID = "missing"
	if err := Publish(c); err == nil {
		t.Fatal("expected publish to fail on invalid graph")
	}
	if c.Status == StatusPublished {
		t.Error("invalid case must not reach published status")
	}
}

func TestPublish_ArchivedCase(t *testing.T) {
	c := testCase()
	c.Status = StatusArchived
	if err := Publish(c); err == nil {
		t.Fatal("expected publish to fail on archived case")
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
