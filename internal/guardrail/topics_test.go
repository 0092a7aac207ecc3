package guardrail

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTopicConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	data := []byte("mental_health_topics:\n  - overwhelmed\nmental_health_response: Take a break.\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadTopicConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.MentalHealthTopics) != 1 || cfg.MentalHealthTopics[0] != "overwhelmed" {
		t.Errorf("topics = %v, want [overwhelmed]", cfg.MentalHealthTopics)
	}
	if cfg.MentalHealthResponse != "Take a break." {
		t.Errorf("response = %q", cfg.MentalHealthResponse)
	}
}

func TestLoadTopicConfig_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadTopicConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// Defaults are still returned so callers can proceed.
	if len(cfg.MentalHealthTopics) == 0 {
		t.Error("defaults not returned on error")
	}
}

func TestLoadTopicConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	if err := os.WriteFile(path, []byte("mental_health_topics: [burnout]\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadTopicConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MentalHealthResponse != DefaultTopicConfig().MentalHealthResponse {
		t.Error("unset response should fall back to default")
	}
}
