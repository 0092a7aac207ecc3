package scenario

import "testing"

func TestGraph_NodeLookup(t *testing.T) {
	g := NewGraph(testCase())

	n, err := g.Node("n2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Type != NodeQuestion {
		t.Errorf("type = %q, want question", n.Type)
	}

	if _, err := g.Node("ghost"); err == nil {
		t.Fatal("expected error for unknown node")
	}
}

func TestGraph_StartNode(t *testing.T) {
	g := NewGraph(testCase())
	n, err := g.StartNode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.ID != "n1" {
		t.Errorf("start node = %q, want n1", n.ID)
	}
}

func TestGraph_NextNode(t *testing.T) {
	g := NewGraph(testCase())

	if next := g.NextNode("n1"); next != "n2" {
		t.Errorf("NextNode(n1) = %q, want n2", next)
	}
	if next := g.NextNode("n3"); next != "" {
		t.Errorf("NextNode(n3) = %q, want empty (terminal)", next)
	}
}

func TestGraph_NextNode_BranchFirstEdgeDeterministic(t *testing.T) {
	c := testCase()
	c.Nodes = append(c.Nodes, Node{ID: "b1", Type: NodeBranch})
	c.Edges = append(c.Edges,
		Edge{ID: "e3", SourceNodeID: "b1", TargetNodeID: "n3"},
		Edge{ID: "e4", SourceNodeID: "b1", TargetNodeID: "n2"},
	)

	// First-edge selection must be stable across repeated graph builds.
	for i := 0; i < 10; i++ {
		g := NewGraph(c)
		if next := g.NextNode("b1"); next != "n3" {
			t.Fatalf("run %d: NextNode(b1) = %q, want n3 (first edge in list order)", i, next)
		}
	}
}

func TestGraph_Outgoing_PreservesOrder(t *testing.T) {
	c := testCase()
	c.Nodes = append(c.Nodes, Node{ID: "b1", Type: NodeBranch})
	c.Edges = append(c.Edges,
		Edge{ID: "e3", SourceNodeID: "b1", TargetNodeID: "n2"},
		Edge{ID: "e4", SourceNodeID: "b1", TargetNodeID: "n3"},
	)
	g := NewGraph(c)

	edges := g.Outgoing("b1")
	if len(edges) != 2 {
		t.Fatalf("got %d outgoing edges, want 2", len(edges))
	}
	if edges[0].ID != "e3" || edges[1].ID != "e4" {
		t.Errorf("edge order = [%s %s], want [e3 e4]", edges[0].ID, edges[1].ID)
	}
}

func TestGraph_Reachable(t *testing.T) {
	c := testCase()
	c.Nodes = append(c.Nodes, Node{ID: "island", Type: NodeDialogue})
	g := NewGraph(c)

	reachable := g.Reachable()
	for _, id := range []string{"n1", "n2", "n3"} {
		if !reachable[id] {
			t.Errorf("node %q should be reachable", id)
		}
	}
	if reachable["island"] {
		t.Error("island node should not be reachable")
	}
}
