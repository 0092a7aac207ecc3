package factcheck

import (
	"context"
	"sync"
)

// MockCall records one Check invocation made against a MockChecker.
type MockCall struct {
	Answer    string
	Knowledge string
}

// MockChecker is a deterministic Checker for testing. It returns canned
// results in FIFO order and records all calls.
type MockChecker struct {
	mu      sync.Mutex
	results []Result
	err     error
	Calls   []MockCall
}

// NewMockChecker creates a MockChecker with the given canned results.
// When the queue runs out it keeps returning the last result, or a
// passing result if none were supplied.
func NewMockChecker(results ...Result) *MockChecker {
	return &MockChecker{results: results}
}

// FailWith makes every Check call return the given error.
func (m *MockChecker) FailWith(err error) *MockChecker {
	m.err = err
	return m
}

func (m *MockChecker) Check(_ context.Context, answer string, knowledge string) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Answer: answer, Knowledge: knowledge})

	if m.err != nil {
		return nil, m.err
	}
	if len(m.results) == 0 {
		return &Result{Passed: true}, nil
	}

	r := m.results[0]
	if len(m.results) > 1 {
		m.results = m.results[1:]
	}
	return &r, nil
}
