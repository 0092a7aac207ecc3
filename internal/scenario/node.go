package scenario

// NodeType identifies the behavior of a node in a case graph.
// The set is closed: the runtime switches exhaustively over these values.
type NodeType string

const (
	NodeOpening    NodeType = "opening"
	NodeDialogue   NodeType = "dialogue"
	NodeQuestion   NodeType = "question"
	NodeListen     NodeType = "listen"
	NodeBranch     NodeType = "branch"
	NodeCheckpoint NodeType = "checkpoint"
	NodeEnding     NodeType = "ending"
	NodeFeedback   NodeType = "feedback"
)

// AllNodeTypes returns every valid node type.
func AllNodeTypes() []NodeType {
	return []NodeType{
		NodeOpening, NodeDialogue, NodeQuestion, NodeListen,
		NodeBranch, NodeCheckpoint, NodeEnding, NodeFeedback,
	}
}

// Valid reports whether t is a member of the closed node type set.
func (t NodeType) Valid() bool {
	switch t {
	case NodeOpening, NodeDialogue, NodeQuestion, NodeListen,
		NodeBranch, NodeCheckpoint, NodeEnding, NodeFeedback:
		return true
	}
	return false
}

// AutoAdvances reports whether the runtime advances past this node type
// without waiting for user input.
func (t NodeType) AutoAdvances() bool {
	switch t {
	case NodeOpening, NodeDialogue, NodeFeedback, NodeCheckpoint, NodeBranch:
		return true
	}
	return false
}

// Node is a single beat in a case conversation. Nodes reference each
// other by ID through edges, never by pointer.
type Node struct {
	ID       string            `json:"id"`
	Type     NodeType          `json:"type"`
	Label    string            `json:"label"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ObjectiveID returns the learning objective this node contributes to,
// taken from the "objectiveId" metadata key. Empty if unmapped.
func (n Node) ObjectiveID() string {
	return n.Metadata["objectiveId"]
}

// Edge is a directed transition between two nodes. Edge order within a
// case is significant only for branch nodes, where the first outgoing
// edge is the default resolution.
type Edge struct {
	ID           string `json:"id"`
	SourceNodeID string `json:"sourceNodeId"`
	TargetNodeID string `json:"targetNodeId"`
	Label        string `json:"label,omitempty"`
}
