package guardrail

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TopicConfig holds the application-level topic lists shared across all
// cases. Deployments override the defaults with a YAML file.
type TopicConfig struct {
	// MentalHealthTopics are keywords that route a user message to the
	// mental-health resource response regardless of case configuration.
	MentalHealthTopics []string `yaml:"mental_health_topics"`

	// MentalHealthResponse is the resource notice substituted for
	// messages matching a mental-health topic.
	MentalHealthResponse string `yaml:"mental_health_response"`
}

// DefaultTopicConfig returns the built-in topic lists.
func DefaultTopicConfig() TopicConfig {
	return TopicConfig{
		MentalHealthTopics: []string{
			"suicide",
			"self-harm",
			"self harm",
			"kill myself",
			"hurt myself",
			"want to die",
			"panic attack",
		},
		MentalHealthResponse: "It sounds like you might be going through something difficult. " +
			"This interview isn't the right place for that conversation, but support is available - " +
			"please reach out to a counselor or a crisis line such as 988. " +
			"We can continue the case whenever you're ready.",
	}
}

// LoadTopicConfig reads a TopicConfig from a YAML file, filling unset
// fields from the defaults.
func LoadTopicConfig(path string) (TopicConfig, error) {
	cfg := DefaultTopicConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read topic config: %w", err)
	}

	var loaded TopicConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("parse topic config: %w", err)
	}

	if len(loaded.MentalHealthTopics) > 0 {
		cfg.MentalHealthTopics = loaded.MentalHealthTopics
	}
	if loaded.MentalHealthResponse != "" {
		cfg.MentalHealthResponse = loaded.MentalHealthResponse
	}
	return cfg, nil
}
