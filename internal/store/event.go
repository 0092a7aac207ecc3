package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Each event type lives in its own ent-managed
// table, so per-table auto-increment IDs can't establish cross-type
// ordering. This shared counter assigns a single increasing sequence to
// every event regardless of type, so the transcript and LLM logs can be
// interleaved in emission order.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// attemptCounter issues per-(student, case) attempt numbers. The
// counter is kept outside the attempt_records table so deleting
// attempts (reset) never causes a number to be reused.
type attemptCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newAttemptCounter creates the counter and ensures its table exists.
func newAttemptCounter(db *sql.DB) (*attemptCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS attempt_counter (
		student_id TEXT NOT NULL,
		case_id TEXT NOT NULL,
		next_val INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (student_id, case_id)
	)`)
	if err != nil {
		return nil, fmt.Errorf("create attempt counter table: %w", err)
	}
	return &attemptCounter{db: db}, nil
}

// Next atomically reserves and returns the next attempt number for the pair.
func (ac *attemptCounter) Next(ctx context.Context, studentID, caseID string) (int, error) {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	var n int
	err := ac.db.QueryRowContext(ctx,
		`INSERT INTO attempt_counter (student_id, case_id, next_val) VALUES (?, ?, 2)
		 ON CONFLICT (student_id, case_id) DO UPDATE SET next_val = next_val + 1
		 RETURNING next_val - 1`,
		studentID, caseID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next attempt number: %w", err)
	}
	return n, nil
}
