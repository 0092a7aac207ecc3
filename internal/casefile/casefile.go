package casefile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/casetalk/casetalk/internal/scenario"
)

// caseSchema validates the authored JSON shape before unmarshalling.
// Graph-level rules (start node resolution, edge endpoints, branching)
// are the scenario package's job.
const caseSchema = `{
  "type": "object",
  "required": ["id", "title", "startNodeId", "nodes", "edges"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "persona": {"type": "string"},
    "version": {"type": "integer", "minimum": 0},
    "status": {"enum": ["draft", "published", "archived"]},
    "startNodeId": {"type": "string", "minLength": 1},
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"enum": ["opening", "dialogue", "question", "listen", "branch", "checkpoint", "ending", "feedback"]},
          "label": {"type": "string"},
          "content": {"type": "string"},
          "metadata": {"type": "object", "additionalProperties": {"type": "string"}}
        }
      }
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "sourceNodeId", "targetNodeId"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "sourceNodeId": {"type": "string", "minLength": 1},
          "targetNodeId": {"type": "string", "minLength": 1},
          "label": {"type": "string"}
        }
      }
    },
    "objectives": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "weight"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "type": {"enum": ["knowledge", "skill", "attitude"]},
          "weight": {"type": "integer", "minimum": 1, "maximum": 10}
        }
      }
    },
    "guardrails": {
      "type": "object",
      "properties": {
        "blockedTopics": {"type": "array", "items": {"type": "string"}},
        "blockedResponses": {"type": "array", "items": {"type": "string"}},
        "offTopicResponse": {"type": "string"},
        "maxResponseLength": {"type": "integer", "minimum": 0},
        "requireFactCheck": {"type": "boolean"}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compile() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(caseSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse case schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://casefile.json", def); err != nil {
			schemaErr = fmt.Errorf("add case schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://casefile.json")
	})
	return compiledSchema, schemaErr
}

// Parse validates raw JSON against the case file schema and unmarshals
// it into a Case.
func Parse(data []byte) (*scenario.Case, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compile()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("case file schema: %w", err)
	}

	var c scenario.Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal case: %w", err)
	}
	if c.Status == "" {
		c.Status = scenario.StatusDraft
	}
	if c.Version == 0 {
		c.Version = 1
	}
	return &c, nil
}

// Load reads and parses a case file from disk.
func Load(path string) (*scenario.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Save writes a case to disk as indented JSON.
func Save(path string, c *scenario.Case) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal case: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write case file: %w", err)
	}
	return nil
}
