package scenario

// Status is the lifecycle state of an authored case.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// ObjectiveType classifies what a learning objective measures.
type ObjectiveType string

const (
	ObjectiveKnowledge ObjectiveType = "knowledge"
	ObjectiveSkill     ObjectiveType = "skill"
	ObjectiveAttitude  ObjectiveType = "attitude"
)

// LearningObjective is a weighted, gradeable goal attached to a case.
// Weight runs 1-10 and scales the objective's share of the final score.
type LearningObjective struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Type        ObjectiveType `json:"type"`
	Weight      int           `json:"weight"`
}

// GuardrailConfig holds the per-case content policy knobs. The
// mental-health topic list is application-level, not per-case; see the
// guardrail package.
type GuardrailConfig struct {
	BlockedTopics     []string `json:"blockedTopics"`
	BlockedResponses  []string `json:"blockedResponses,omitempty"`
	OffTopicResponse  string   `json:"offTopicResponse,omitempty"`
	MaxResponseLength int      `json:"maxResponseLength"`
	RequireFactCheck  bool     `json:"requireFactCheck"`
}

// Case is an authored, gradeable conversational scenario. Once
// published a case version is immutable; edits produce a new version
// consumed only by new sessions.
type Case struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Persona     string              `json:"persona,omitempty"`
	Version     int                 `json:"version"`
	Status      Status              `json:"status"`
	StartNodeID string              `json:"startNodeId"`
	Nodes       []Node              `json:"nodes"`
	Edges       []Edge              `json:"edges"`
	Objectives  []LearningObjective `json:"objectives"`
	Guardrails  GuardrailConfig     `json:"guardrails"`
}

// Node returns the node with the given ID, or nil if absent.
// For repeated lookups prefer building a Graph.
func (c *Case) Node(id string) *Node {
	for i := range c.Nodes {
		if c.Nodes[i].ID == id {
			return &c.Nodes[i]
		}
	}
	return nil
}

// Objective returns the learning objective with the given ID, or nil.
func (c *Case) Objective(id string) *LearningObjective {
	for i := range c.Objectives {
		if c.Objectives[i].ID == id {
			return &c.Objectives[i]
		}
	}
	return nil
}

// TotalObjectiveWeight sums the weights of all learning objectives.
func (c *Case) TotalObjectiveWeight() int {
	total := 0
	for _, o := range c.Objectives {
		total += o.Weight
	}
	return total
}
