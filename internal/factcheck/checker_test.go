package factcheck

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/casetalk/casetalk/internal/llm"
)

func TestLLMChecker_Pass(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"passed": true, "reason": "matches the reference"}`),
	})
	checker := NewLLMChecker(mock)

	res, err := checker.Check(context.Background(), "Revenue is $4M.", "The chain's revenue last year was $4M.")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.Passed {
		t.Error("expected passing result")
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Error("expected a structured-output schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Revenue is $4M.") {
		t.Error("answer missing from request")
	}
	if !strings.Contains(req.Messages[0].Content, "revenue last year was $4M") {
		t.Error("knowledge missing from request")
	}
}

func TestLLMChecker_Fail(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"passed": false, "reason": "contradicts the reference"}`),
	})
	checker := NewLLMChecker(mock)

	res, err := checker.Check(context.Background(), "Revenue is $40M.", "Revenue was $4M.")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.Passed {
		t.Error("expected failing result")
	}
	if res.Reason == "" {
		t.Error("expected a reason")
	}
}

func TestLLMChecker_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	checker := NewLLMChecker(mock)

	if _, err := checker.Check(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected error when provider is unavailable")
	}
}

func TestLLMChecker_MalformedResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	checker := NewLLMChecker(mock)

	if _, err := checker.Check(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMockChecker_FIFO(t *testing.T) {
	mock := NewMockChecker(
		Result{Passed: true},
		Result{Passed: false, Reason: "wrong figure"},
	)

	first, err := mock.Check(context.Background(), "a1", "k")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	second, err := mock.Check(context.Background(), "a2", "k")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !first.Passed || second.Passed {
		t.Errorf("results out of order: %+v %+v", first, second)
	}
	if len(mock.Calls) != 2 || mock.Calls[1].Answer != "a2" {
		t.Errorf("calls not recorded: %+v", mock.Calls)
	}
}
