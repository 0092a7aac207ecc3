package scenario

import (
	"fmt"
	"strings"
)

// ValidationResult collects the outcome of structural validation.
// Errors block publishing; warnings (unreachable nodes, staged content)
// do not.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the case is publishable (no hard errors).
func (r *ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Err returns a single combined error describing all hard failures,
// or nil if the case is publishable.
func (r *ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("case validation failed:\n  %s", strings.Join(r.Errors, "\n  "))
}

// Validate performs all structural checks on a case graph:
// duplicate node IDs, invalid node types, start node resolution,
// dangling edge endpoints, excess outgoing edges on non-branch nodes,
// objective weight ranges, and reachability from the start node.
func Validate(c *Case) *ValidationResult {
	res := &ValidationResult{}

	idSet := make(map[string]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		if n.ID == "" {
			res.Errors = append(res.Errors, "node with empty ID")
			continue
		}
		if idSet[n.ID] {
			res.Errors = append(res.Errors, fmt.Sprintf("duplicate node ID: %q", n.ID))
		}
		idSet[n.ID] = true
		if !n.Type.Valid() {
			res.Errors = append(res.Errors, fmt.Sprintf("node %q has unknown type %q", n.ID, n.Type))
		}
	}

	if c.StartNodeID == "" {
		res.Errors = append(res.Errors, "startNodeId is empty")
	} else if !idSet[c.StartNodeID] {
		res.Errors = append(res.Errors, fmt.Sprintf("startNodeId %q does not resolve to a node", c.StartNodeID))
	}

	outDegree := make(map[string]int)
	for _, e := range c.Edges {
		if !idSet[e.SourceNodeID] {
			res.Errors = append(res.Errors, fmt.Sprintf("edge %q references nonexistent source %q", e.ID, e.SourceNodeID))
		}
		if !idSet[e.TargetNodeID] {
			res.Errors = append(res.Errors, fmt.Sprintf("edge %q references nonexistent target %q", e.ID, e.TargetNodeID))
		}
		outDegree[e.SourceNodeID]++
	}

	// A second outgoing edge on a non-branch node is an authoring error,
	// not something the runtime silently resolves.
	for _, n := range c.Nodes {
		if n.Type == NodeBranch || n.Type == NodeEnding {
			continue
		}
		if outDegree[n.ID] > 1 {
			res.Errors = append(res.Errors, fmt.Sprintf(
				"node %q (%s) has %d outgoing edges; only branch nodes may have more than one",
				n.ID, n.Type, outDegree[n.ID]))
		}
	}

	for _, o := range c.Objectives {
		if o.Weight < 1 || o.Weight > 10 {
			res.Errors = append(res.Errors, fmt.Sprintf("objective %q weight must be 1-10, got %d", o.ID, o.Weight))
		}
	}

	// Unreachable nodes are warnings: authors may stage future content.
	if idSet[c.StartNodeID] {
		reachable := NewGraph(c).Reachable()
		for _, n := range c.Nodes {
			if !reachable[n.ID] {
				res.Warnings = append(res.Warnings, fmt.Sprintf("node %q (%s) is unreachable from start", n.ID, n.Label))
			}
		}
	}

	return res
}

// Publish transitions a draft case to published after validation,
// bumping the effective version. Returns the validation error when the
// graph has hard failures.
func Publish(c *Case) error {
	if c.Status == StatusArchived {
		return fmt.Errorf("cannot publish archived case %q", c.ID)
	}
	if err := Validate(c).Err(); err != nil {
		return err
	}
	c.Status = StatusPublished
	c.Version++
	return nil
}
