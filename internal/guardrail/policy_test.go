package guardrail

import (
	"strings"
	"testing"

	"github.com/casetalk/casetalk/internal/scenario"
)

func testPolicy() *Policy {
	return NewPolicy(DefaultTopicConfig())
}

func testConfig() scenario.GuardrailConfig {
	return scenario.GuardrailConfig{
		BlockedTopics:     []string{"politics", "salary gossip"},
		BlockedResponses:  []string{"Let's stay on topic.", "Back to the case, shall we?"},
		MaxResponseLength: 60,
	}
}

func TestScreenOutbound_UnderLimit(t *testing.T) {
	p := testPolicy()
	res := p.ScreenOutbound("Short reply.", testConfig())
	if res.Action != OutboundAllow {
		t.Errorf("action = %q, want allow", res.Action)
	}
	if res.Text != "Short reply." {
		t.Errorf("text modified: %q", res.Text)
	}
}

func TestScreenOutbound_TruncatesAtWhitespace(t *testing.T) {
	p := testPolicy()
	text := "The quarterly projections suggest a significant shortfall in the logistics budget overall"
	cfg := testConfig()

	res := p.ScreenOutbound(text, cfg)
	if res.Action != OutboundTruncate {
		t.Fatalf("action = %q, want truncate", res.Action)
	}
	if len(res.Text) > cfg.MaxResponseLength {
		t.Errorf("truncated length %d exceeds limit %d", len(res.Text), cfg.MaxResponseLength)
	}
	if strings.HasSuffix(res.Text, " ") {
		t.Error("truncated text ends with whitespace")
	}
	// The cut must land on a word boundary of the original text.
	if !strings.HasPrefix(text, res.Text) || text[len(res.Text)] != ' ' {
		t.Errorf("truncation split mid-word: %q", res.Text)
	}
}

func TestScreenOutbound_NoWhitespaceFallsBackToHardCut(t *testing.T) {
	p := testPolicy()
	cfg := scenario.GuardrailConfig{MaxResponseLength: 10}
	res := p.ScreenOutbound(strings.Repeat("x", 40), cfg)
	if res.Action != OutboundTruncate {
		t.Fatalf("action = %q, want truncate", res.Action)
	}
	if len(res.Text) != 10 {
		t.Errorf("hard cut length = %d, want 10", len(res.Text))
	}
}

func TestScreenOutbound_ZeroLimitMeansUnlimited(t *testing.T) {
	p := testPolicy()
	long := strings.Repeat("word ", 100)
	res := p.ScreenOutbound(long, scenario.GuardrailConfig{})
	if res.Action != OutboundAllow {
		t.Errorf("action = %q, want allow with no limit configured", res.Action)
	}
}

func TestScreenInbound_Allow(t *testing.T) {
	p := testPolicy()
	res := p.ScreenInbound("I would open at 40 dollars per unit.", testConfig())
	if res.Action != InboundAllow {
		t.Errorf("action = %q, want allow", res.Action)
	}
}

func TestScreenInbound_BlockedTopic(t *testing.T) {
	p := testPolicy()
	cfg := testConfig()
	res := p.ScreenInbound("What do you think about POLITICS these days?", cfg)
	if res.Action != InboundBlockRedirect {
		t.Fatalf("action = %q, want block_redirect", res.Action)
	}
	if res.MatchedTopic != "politics" {
		t.Errorf("matched topic = %q, want politics", res.MatchedTopic)
	}
	found := false
	for _, r := range cfg.BlockedResponses {
		if res.Response == r {
			found = true
		}
	}
	if !found {
		t.Errorf("response %q not drawn from configured blocked responses", res.Response)
	}
}

func TestScreenInbound_FirstMatchWins(t *testing.T) {
	p := testPolicy()
	cfg := scenario.GuardrailConfig{BlockedTopics: []string{"alpha", "beta"}}
	res := p.ScreenInbound("beta and alpha both appear, alpha beta", cfg)
	if res.MatchedTopic != "alpha" {
		t.Errorf("matched topic = %q, want alpha (first in list)", res.MatchedTopic)
	}
}

func TestScreenInbound_MentalHealthPrecedence(t *testing.T) {
	p := testPolicy()
	cfg := scenario.GuardrailConfig{
		// "suicide" is also on the case's blocked list; the resource
		// response must still win.
		BlockedTopics: []string{"suicide"},
	}
	res := p.ScreenInbound("I've been thinking about suicide lately", cfg)
	if res.Action != InboundMentalResource {
		t.Fatalf("action = %q, want mental_health_resource", res.Action)
	}
	if res.Response == "" {
		t.Error("resource response is empty")
	}
}

func TestScreenInbound_FallbackResponses(t *testing.T) {
	p := testPolicy()

	cfg := scenario.GuardrailConfig{
		BlockedTopics:    []string{"politics"},
		OffTopicResponse: "Please stay with the case.",
	}
	res := p.ScreenInbound("politics!", cfg)
	if res.Response != "Please stay with the case." {
		t.Errorf("response = %q, want configured off-topic response", res.Response)
	}

	cfg.OffTopicResponse = ""
	res = p.ScreenInbound("politics!", cfg)
	if res.Response != DefaultOffTopicResponse {
		t.Errorf("response = %q, want default", res.Response)
	}
}

func TestRequireFactCheck(t *testing.T) {
	p := testPolicy()
	if p.RequireFactCheck(scenario.GuardrailConfig{}) {
		t.Error("fact check should default off")
	}
	if !p.RequireFactCheck(scenario.GuardrailConfig{RequireFactCheck: true}) {
		t.Error("fact check flag not passed through")
	}
}

func TestLoadTopicConfig_Defaults(t *testing.T) {
	cfg := DefaultTopicConfig()
	if len(cfg.MentalHealthTopics) == 0 {
		t.Fatal("default mental health topic list is empty")
	}
	if cfg.MentalHealthResponse == "" {
		t.Fatal("default mental health response is empty")
	}
}
