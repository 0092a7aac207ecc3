package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func branchSchema() *Schema {
	return &Schema{
		Name: "test-branch-choice",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"edgeId": map[string]any{"type": "string"},
				"reason": map[string]any{"type": "string"},
			},
			"required": []any{"edgeId"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"edgeId":"e1","reason":"mentioned pricing"}`)
	if err := validateResponse(branchSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"reason":"no edge"}`)
	err := validateResponse(branchSchema(), raw)
	if err == nil {
		t.Fatal("expected error")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"edgeId":`)
	err := validateResponse(branchSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}
