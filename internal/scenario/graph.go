package scenario

import "fmt"

// Graph holds a case's nodes and edges with precomputed indices.
// It is a read-only arena: the runtime holds only the current node ID
// plus a shared Graph reference, never node pointers.
type Graph struct {
	c        *Case
	byID     map[string]*Node
	outgoing map[string][]Edge
	incoming map[string][]Edge
}

// NewGraph builds the index structures for a case. The case is not
// validated here; call Validate before publishing.
func NewGraph(c *Case) *Graph {
	g := &Graph{
		c:        c,
		byID:     make(map[string]*Node, len(c.Nodes)),
		outgoing: make(map[string][]Edge),
		incoming: make(map[string][]Edge),
	}

	for i := range c.Nodes {
		g.byID[c.Nodes[i].ID] = &c.Nodes[i]
	}

	// Edge-list order is preserved: for branch nodes the first outgoing
	// edge is the default resolution.
	for _, e := range c.Edges {
		g.outgoing[e.SourceNodeID] = append(g.outgoing[e.SourceNodeID], e)
		g.incoming[e.TargetNodeID] = append(g.incoming[e.TargetNodeID], e)
	}

	return g
}

// Case returns the underlying case.
func (g *Graph) Case() *Case {
	return g.c
}

// Node returns a node by ID, or an error if not found.
func (g *Graph) Node(id string) (*Node, error) {
	n, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %q", id)
	}
	return n, nil
}

// StartNode returns the case's start node.
func (g *Graph) StartNode() (*Node, error) {
	return g.Node(g.c.StartNodeID)
}

// Outgoing returns the outgoing edges of a node in edge-list order.
func (g *Graph) Outgoing(nodeID string) []Edge {
	return g.outgoing[nodeID]
}

// NextNode returns the target of the first outgoing edge of nodeID, or
// "" if the node has no outgoing edges. For branch nodes this is the
// weak default; branch resolution proper is the resolver's job.
func (g *Graph) NextNode(nodeID string) string {
	edges := g.outgoing[nodeID]
	if len(edges) == 0 {
		return ""
	}
	return edges[0].TargetNodeID
}

// Reachable returns the set of node IDs reachable from the start node,
// following all outgoing edges.
func (g *Graph) Reachable() map[string]bool {
	seen := make(map[string]bool, len(g.byID))
	if _, ok := g.byID[g.c.StartNodeID]; !ok {
		return seen
	}

	queue := []string{g.c.StartNodeID}
	seen[g.c.StartNodeID] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, e := range g.outgoing[id] {
			if !seen[e.TargetNodeID] {
				seen[e.TargetNodeID] = true
				queue = append(queue, e.TargetNodeID)
			}
		}
	}
	return seen
}
