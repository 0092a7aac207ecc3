package store

import (
	"context"
	"time"

	"github.com/casetalk/casetalk/internal/scenario"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// MessageEventData captures one transcript message for the event log.
type MessageEventData struct {
	SessionID string
	AttemptID string
	Role      string
	Content   string
	NodeID    string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendMessage records a transcript message event.
	AppendMessage(ctx context.Context, data MessageEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// CaseRepo persists versioned case documents.
type CaseRepo interface {
	// SaveCase stores the case under its (id, version) pair, replacing
	// an existing draft row for that pair.
	SaveCase(ctx context.Context, c *scenario.Case) error

	// GetCase returns the newest version of a case, or nil if absent.
	GetCase(ctx context.Context, caseID string) (*scenario.Case, error)

	// GetPublished returns the newest published version, or nil.
	GetPublished(ctx context.Context, caseID string) (*scenario.Case, error)

	// ListCases returns the newest version of every case.
	ListCases(ctx context.Context) ([]*scenario.Case, error)
}

// AttemptData mirrors a sealed attempt for persistence. The attempt
// package converts to and from its own type.
type AttemptData struct {
	AttemptID        string
	StudentID        string
	CaseID           string
	AttemptNumber    int
	StartedAt        time.Time
	TotalMessages    int
	TotalTimeSeconds int
	NodePath         []string
	Score            *int
	ScoreBreakdown   map[string]int
	IsPassing        bool
	Abandoned        bool
}

// AttemptRepo persists sealed attempts and issues attempt numbers.
type AttemptRepo interface {
	// NextAttemptNumber atomically reserves the next number for the
	// pair. The counter survives attempt deletion: numbers are never
	// reused.
	NextAttemptNumber(ctx context.Context, studentID, caseID string) (int, error)

	// SaveAttempt stores a sealed attempt.
	SaveAttempt(ctx context.Context, a *AttemptData) error

	// ListAttempts returns attempts for a pair ordered by attempt number.
	ListAttempts(ctx context.Context, studentID, caseID string) ([]*AttemptData, error)

	// DeleteAttempts removes stored attempts for a student without
	// rewinding the number counter. Empty caseID means all cases.
	DeleteAttempts(ctx context.Context, studentID, caseID string) (int, error)
}
