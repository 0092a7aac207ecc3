package casefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/casetalk/casetalk/internal/scenario"
)

const validCase = `{
  "id": "coffee-expansion",
  "title": "Coffee Chain Expansion",
  "persona": "Maya, a senior strategy consultant",
  "startNodeId": "n1",
  "nodes": [
    {"id": "n1", "type": "opening", "label": "Welcome", "content": "Welcome to the case."},
    {"id": "n2", "type": "question", "label": "Q1", "content": "How would you size this market?", "metadata": {"objectiveId": "o1"}},
    {"id": "n3", "type": "ending", "label": "Wrap", "content": "That concludes our case."}
  ],
  "edges": [
    {"id": "e1", "sourceNodeId": "n1", "targetNodeId": "n2"},
    {"id": "e2", "sourceNodeId": "n2", "targetNodeId": "n3"}
  ],
  "objectives": [
    {"id": "o1", "title": "Market sizing", "type": "skill", "weight": 5}
  ],
  "guardrails": {
    "blockedTopics": ["politics"],
    "maxResponseLength": 600,
    "requireFactCheck": false
  }
}`

func TestParse_Valid(t *testing.T) {
	c, err := Parse([]byte(validCase))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.ID != "coffee-expansion" || len(c.Nodes) != 3 || len(c.Edges) != 2 {
		t.Fatalf("unexpected case: %+v", c)
	}
	// Defaults applied.
	if c.Status != scenario.StatusDraft {
		t.Errorf("status = %s, want draft", c.Status)
	}
	if c.Version != 1 {
		t.Errorf("version = %d, want 1", c.Version)
	}
	if c.Guardrails.MaxResponseLength != 600 {
		t.Errorf("maxResponseLength = %d, want 600", c.Guardrails.MaxResponseLength)
	}
}

func TestParse_RejectsBadNodeType(t *testing.T) {
	bad := strings.Replace(validCase, `"type": "opening"`, `"type": "monologue"`, 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatal("expected schema error for unknown node type")
	}
}

func TestParse_RejectsMissingStartNode(t *testing.T) {
	bad := strings.Replace(validCase, `"startNodeId": "n1",`, ``, 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatal("expected schema error for missing startNodeId")
	}
}

func TestParse_RejectsWeightOutOfRange(t *testing.T) {
	bad := strings.Replace(validCase, `"weight": 5`, `"weight": 11`, 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatal("expected schema error for weight > 10")
	}
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"id":`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	c, err := Parse([]byte(validCase))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	path := filepath.Join(t.TempDir(), "case.json")
	if err := Save(path, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ID != c.ID || len(loaded.Nodes) != len(c.Nodes) {
		t.Fatalf("round-trip mismatch: %+v", loaded)
	}
	if loaded.Nodes[1].Metadata["objectiveId"] != "o1" {
		t.Error("metadata lost in round trip")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got: %v", err)
	}
}
