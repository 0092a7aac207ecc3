package attempt

import (
	"math"

	"github.com/casetalk/casetalk/internal/engine"
	"github.com/casetalk/casetalk/internal/scenario"
)

// PassingScore is the minimum aggregate score counted as a pass.
const PassingScore = 70

// scoreSession computes the weighted aggregate score and the
// per-objective breakdown for a completed session.
//
// Each objective is scored 0-100 by the fraction of its mapped
// checkpoint/ending nodes the session visited; objectives with no
// mapped nodes score on whether the session reached an ending at all.
// A failed fact check on a question mapped to an objective halves that
// objective's subscore. The aggregate is the weight-averaged breakdown,
// rounded and clamped to [0,100].
func scoreSession(c *scenario.Case, s *engine.Session) (int, map[string]int) {
	reached := make(map[string]bool, len(s.CheckpointsReached))
	for _, id := range s.CheckpointsReached {
		reached[id] = true
	}

	// Ending reached means at least one visited checkpoint/ending node
	// is an ending node.
	endingReached := false
	for _, id := range s.CheckpointsReached {
		if n := c.Node(id); n != nil && n.Type == scenario.NodeEnding {
			endingReached = true
			break
		}
	}

	breakdown := make(map[string]int, len(c.Objectives))
	for _, o := range c.Objectives {
		breakdown[o.ID] = objectiveSubscore(c, o, reached, endingReached)
	}

	// Failed fact checks halve the affected objective's subscore.
	for nodeID, passed := range s.FactCheckResults {
		if passed {
			continue
		}
		n := c.Node(nodeID)
		if n == nil {
			continue
		}
		if objID := n.ObjectiveID(); objID != "" {
			if sub, ok := breakdown[objID]; ok {
				breakdown[objID] = sub / 2
			}
		}
	}

	return aggregate(c, breakdown, endingReached), breakdown
}

func objectiveSubscore(c *scenario.Case, o scenario.LearningObjective, reached map[string]bool, endingReached bool) int {
	mapped, visited := 0, 0
	for _, n := range c.Nodes {
		if n.Type != scenario.NodeCheckpoint && n.Type != scenario.NodeEnding {
			continue
		}
		if n.ObjectiveID() != o.ID {
			continue
		}
		mapped++
		if reached[n.ID] {
			visited++
		}
	}

	if mapped == 0 {
		if endingReached {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(visited) / float64(mapped) * 100))
}

func aggregate(c *scenario.Case, breakdown map[string]int, endingReached bool) int {
	totalWeight := c.TotalObjectiveWeight()
	if totalWeight == 0 {
		if endingReached {
			return 100
		}
		return 0
	}

	sum := 0
	for _, o := range c.Objectives {
		sum += breakdown[o.ID] * o.Weight
	}

	score := int(math.Round(float64(sum) / float64(totalWeight)))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
