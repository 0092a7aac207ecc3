package attempt

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for tests and DB-less runs. It keeps
// a high-water mark per (student, case) pair so attempt numbers stay
// strictly increasing even after deletions.
type MemoryRepo struct {
	mu       sync.Mutex
	maxByKey map[string]int
	attempts []*Attempt
}

// NewMemoryRepo creates an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{maxByKey: make(map[string]int)}
}

func key(studentID, caseID string) string {
	return studentID + "\x00" + caseID
}

func (r *MemoryRepo) NextAttemptNumber(_ context.Context, studentID, caseID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(studentID, caseID)
	r.maxByKey[k]++
	return r.maxByKey[k], nil
}

func (r *MemoryRepo) SaveAttempt(_ context.Context, a *Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, a)
	return nil
}

// Attempts returns all saved attempts for a (student, case) pair in
// save order.
func (r *MemoryRepo) Attempts(studentID, caseID string) []*Attempt {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Attempt
	for _, a := range r.attempts {
		if a.StudentID == studentID && a.CaseID == caseID {
			out = append(out, a)
		}
	}
	return out
}

// Delete removes saved attempts for a pair without lowering the
// high-water mark.
func (r *MemoryRepo) Delete(studentID, caseID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.attempts[:0]
	for _, a := range r.attempts {
		if a.StudentID != studentID || a.CaseID != caseID {
			kept = append(kept, a)
		}
	}
	r.attempts = kept
}
