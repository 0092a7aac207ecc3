package factcheck

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/casetalk/casetalk/internal/llm"
)

// Result is the outcome of validating one avatar answer.
type Result struct {
	Passed bool   `json:"passed"`
	Reason string `json:"reason"`
}

// Checker validates an avatar-authored answer against a case's
// knowledge source. Implementations may call an external service.
type Checker interface {
	Check(ctx context.Context, answer string, knowledge string) (*Result, error)
}

// resultSchema constrains the checker's structured output.
var resultSchema = &llm.Schema{
	Name: "fact-check-result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"passed": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer is consistent with the reference material",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "One-sentence justification",
			},
		},
		"required": []any{"passed"},
	},
}

const checkerSystemPrompt = `You are a fact checker for a business case simulation.
You are given reference material describing the case and an answer produced by the case avatar.
Decide whether the answer is consistent with the reference material.
Minor phrasing differences are fine; contradictions and invented facts are not.`

// LLMChecker validates answers with a structured LLM call.
type LLMChecker struct {
	provider llm.Provider
}

// NewLLMChecker creates a checker backed by the given provider.
func NewLLMChecker(provider llm.Provider) *LLMChecker {
	return &LLMChecker{provider: provider}
}

func (c *LLMChecker) Check(ctx context.Context, answer string, knowledge string) (*Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeFactCheck)

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: checkerSystemPrompt,
		Messages: []llm.Message{
			{
				Role:    llm.RoleUser,
				Content: fmt.Sprintf("Reference material:\n%s\n\nAnswer to check:\n%s", knowledge, answer),
			},
		},
		MaxTokens: 300,
		Schema:    resultSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("fact check call: %w", err)
	}

	var result Result
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, fmt.Errorf("parse fact check result: %w", err)
	}
	return &result, nil
}
