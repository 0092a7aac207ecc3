package engine

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a scenario session.
type Status string

const (
	StatusNotStarted      Status = "not_started"
	StatusRunning         Status = "running"
	StatusWaitingForInput Status = "waiting_for_input"
	StatusCompleted       Status = "completed"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a session transcript. NodeID tags the node
// that produced (or received) the message; it is empty for substitute
// guardrail responses.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	NodeID    string    `json:"nodeId,omitempty"`
}

// Session is the runtime state of one student's walk through a case.
// A Session is owned by exactly one Runtime and must not be mutated
// concurrently; the host serializes access per session.
type Session struct {
	ID             string
	CaseID         string
	CurrentNodeID  string
	VisitedNodeIDs []string
	Messages       []Message
	Status         Status
	StartedAt      time.Time

	// CheckpointsReached holds the node IDs of visited checkpoint and
	// ending nodes, in visit order. Scoring reads this.
	CheckpointsReached []string

	// FactCheckResults maps question node ID to whether the avatar's
	// answer at that node passed fact checking.
	FactCheckResults map[string]bool

	// Abandoned is set when the session ended before an ending node.
	Abandoned bool

	finalized bool
}

// NewSession creates a session in the not_started state.
func NewSession(caseID string) *Session {
	return &Session{
		ID:               uuid.NewString(),
		CaseID:           caseID,
		Status:           StatusNotStarted,
		StartedAt:        time.Now(),
		FactCheckResults: make(map[string]bool),
	}
}

// append adds a message to the transcript.
func (s *Session) append(role Role, content, nodeID string) Message {
	m := Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		NodeID:    nodeID,
	}
	s.Messages = append(s.Messages, m)
	return m
}

// visit records a node on the session path and makes it current.
func (s *Session) visit(nodeID string) {
	s.CurrentNodeID = nodeID
	s.VisitedNodeIDs = append(s.VisitedNodeIDs, nodeID)
}
