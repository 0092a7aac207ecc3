package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/casetalk/casetalk/internal/llm"
	"github.com/casetalk/casetalk/internal/scenario"
)

var branchNode = &scenario.Node{ID: "b1", Type: scenario.NodeBranch, Label: "Route"}

var branchEdges = []scenario.Edge{
	{ID: "e1", SourceNodeID: "b1", TargetNodeID: "t1", Label: "structured answer"},
	{ID: "e2", SourceNodeID: "b1", TargetNodeID: "t2", Label: "vague answer"},
}

func TestLLMBranchResolver_PicksEdge(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"edgeId":"e2","reason":"student was vague"}`),
	})
	r := NewLLMBranchResolver(mock)

	target, err := r.Resolve(context.Background(), branchNode, branchEdges, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != "t2" {
		t.Fatalf("expected t2, got %s", target)
	}
}

func TestLLMBranchResolver_UnknownEdgeFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"edgeId":"nope"}`),
	})
	r := NewLLMBranchResolver(mock)

	target, err := r.Resolve(context.Background(), branchNode, branchEdges, nil)
	if err == nil {
		t.Fatal("expected error for unknown edge")
	}
	if target != "t1" {
		t.Fatalf("expected first-edge fallback t1, got %s", target)
	}
}

func TestLLMBranchResolver_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	r := NewLLMBranchResolver(mock)

	target, err := r.Resolve(context.Background(), branchNode, branchEdges, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if target != "t1" {
		t.Fatalf("expected first-edge fallback t1, got %s", target)
	}
}

func TestFirstEdgeResolver(t *testing.T) {
	target, err := FirstEdgeResolver{}.Resolve(context.Background(), branchNode, branchEdges, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != "t1" {
		t.Fatalf("expected t1, got %s", target)
	}
}
