package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/casetalk/casetalk/internal/llm"
	"github.com/casetalk/casetalk/internal/scenario"
)

// BranchResolver selects the outgoing edge to follow at a branch node.
// Implementations must return the target node ID of one of the given
// edges; edges is never empty.
type BranchResolver interface {
	Resolve(ctx context.Context, node *scenario.Node, edges []scenario.Edge, history []Message) (string, error)
}

// FirstEdgeResolver is the default resolver: it always follows the
// first edge in edge-list order, deterministically.
type FirstEdgeResolver struct{}

func (FirstEdgeResolver) Resolve(_ context.Context, _ *scenario.Node, edges []scenario.Edge, _ []Message) (string, error) {
	return edges[0].TargetNodeID, nil
}

// branchChoiceSchema constrains the resolver's structured output.
var branchChoiceSchema = &llm.Schema{
	Name: "branch-choice",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"edgeId": map[string]any{
				"type":        "string",
				"description": "ID of the edge to follow",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "One-sentence justification",
			},
		},
		"required": []any{"edgeId"},
	},
}

const branchSystemPrompt = `You are routing a branching conversation in a business case simulation.
Given the branch point and the conversation so far, pick the single outgoing edge that best matches what the student has said.
If nothing clearly matches, pick the first edge.`

// LLMBranchResolver asks the LLM to pick an outgoing edge based on the
// conversation so far. On any failure it falls back to the first edge,
// so branch resolution never stalls a session.
type LLMBranchResolver struct {
	provider llm.Provider
}

// NewLLMBranchResolver creates a resolver backed by the given provider.
func NewLLMBranchResolver(provider llm.Provider) *LLMBranchResolver {
	return &LLMBranchResolver{provider: provider}
}

func (r *LLMBranchResolver) Resolve(ctx context.Context, node *scenario.Node, edges []scenario.Edge, history []Message) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeBranchResolve)

	resp, err := r.provider.Generate(ctx, llm.Request{
		System: branchSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildBranchUserMessage(node, edges, history)},
		},
		MaxTokens: 300,
		Schema:    branchChoiceSchema,
	})
	if err != nil {
		return edges[0].TargetNodeID, fmt.Errorf("branch resolution call: %w", err)
	}

	var choice struct {
		EdgeID string `json:"edgeId"`
	}
	if err := json.Unmarshal(resp.Content, &choice); err != nil {
		return edges[0].TargetNodeID, fmt.Errorf("parse branch choice: %w", err)
	}

	for _, e := range edges {
		if e.ID == choice.EdgeID {
			return e.TargetNodeID, nil
		}
	}
	return edges[0].TargetNodeID, fmt.Errorf("branch choice %q is not an outgoing edge of %q", choice.EdgeID, node.ID)
}

func buildBranchUserMessage(node *scenario.Node, edges []scenario.Edge, history []Message) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Branch point: %s\n", node.Label))
	if node.Content != "" {
		b.WriteString(fmt.Sprintf("Condition: %s\n", node.Content))
	}

	b.WriteString("\nOutgoing edges:\n")
	for _, e := range edges {
		label := e.Label
		if label == "" {
			label = "(unlabeled)"
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", e.ID, label))
	}

	b.WriteString("\nConversation so far:\n")
	// The tail of the transcript is what matters for routing.
	start := 0
	if len(history) > 10 {
		start = len(history) - 10
	}
	for _, m := range history[start:] {
		b.WriteString(fmt.Sprintf("[%s] %s\n", m.Role, m.Content))
	}

	return b.String()
}
