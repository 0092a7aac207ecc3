package guardrail

import (
	"math/rand/v2"
	"strings"

	"github.com/casetalk/casetalk/internal/scenario"
)

// OutboundAction is the policy decision for avatar-authored content.
type OutboundAction string

const (
	OutboundAllow    OutboundAction = "allow"
	OutboundTruncate OutboundAction = "truncate"
)

// InboundAction is the policy decision for a user message.
type InboundAction string

const (
	InboundAllow          InboundAction = "allow"
	InboundBlockRedirect  InboundAction = "block_redirect"
	InboundMentalResource InboundAction = "mental_health_resource"
)

// OutboundResult is the outcome of screening a candidate avatar turn.
type OutboundResult struct {
	Action OutboundAction
	Text   string
}

// InboundResult is the outcome of screening a user message. Response is
// the substitute assistant message the runtime must emit when the
// action is not allow.
type InboundResult struct {
	Action       InboundAction
	MatchedTopic string
	Response     string
}

// DefaultOffTopicResponse is used when a case configures neither
// blocked responses nor an off-topic response.
const DefaultOffTopicResponse = "Let's keep our conversation focused on the business case. Where were we?"

// Policy screens conversation content against a case's guardrail
// configuration plus the application-level mental-health topic list.
// A Policy is read-only after construction and safe for concurrent use.
type Policy struct {
	topics TopicConfig
}

// NewPolicy creates a policy with the given topic configuration.
func NewPolicy(topics TopicConfig) *Policy {
	return &Policy{topics: topics}
}

// ScreenOutbound screens avatar-authored text. Outbound content is
// never rejected outright: text over the configured length limit is
// truncated at the nearest whitespace boundary.
func (p *Policy) ScreenOutbound(text string, cfg scenario.GuardrailConfig) OutboundResult {
	if cfg.MaxResponseLength <= 0 || len(text) <= cfg.MaxResponseLength {
		return OutboundResult{Action: OutboundAllow, Text: text}
	}
	return OutboundResult{
		Action: OutboundTruncate,
		Text:   truncateAtWhitespace(text, cfg.MaxResponseLength),
	}
}

// ScreenInbound screens a user message against the mental-health topic
// list and the case's blocked topics. Mental-health matches take
// precedence over generic blocks: the resource response is strictly
// more helpful than a redirect. Matching is case-insensitive substring,
// first match wins.
func (p *Policy) ScreenInbound(text string, cfg scenario.GuardrailConfig) InboundResult {
	lower := strings.ToLower(text)

	for _, topic := range p.topics.MentalHealthTopics {
		if topic != "" && strings.Contains(lower, strings.ToLower(topic)) {
			return InboundResult{
				Action:       InboundMentalResource,
				MatchedTopic: topic,
				Response:     p.topics.MentalHealthResponse,
			}
		}
	}

	for _, topic := range cfg.BlockedTopics {
		if topic != "" && strings.Contains(lower, strings.ToLower(topic)) {
			return InboundResult{
				Action:       InboundBlockRedirect,
				MatchedTopic: topic,
				Response:     pickBlockedResponse(cfg),
			}
		}
	}

	return InboundResult{Action: InboundAllow}
}

// RequireFactCheck reports whether avatar answers for this case need a
// validation round-trip before being accepted.
func (p *Policy) RequireFactCheck(cfg scenario.GuardrailConfig) bool {
	return cfg.RequireFactCheck
}

// pickBlockedResponse selects a substitute response uniformly at random
// so repeated redirects don't sound robotic.
func pickBlockedResponse(cfg scenario.GuardrailConfig) string {
	if len(cfg.BlockedResponses) > 0 {
		return cfg.BlockedResponses[rand.IntN(len(cfg.BlockedResponses))]
	}
	if cfg.OffTopicResponse != "" {
		return cfg.OffTopicResponse
	}
	return DefaultOffTopicResponse
}

// truncateAtWhitespace cuts text to at most max bytes, preferring the
// last whitespace boundary so words are not split. Falls back to a hard
// cut when the leading run has no whitespace.
func truncateAtWhitespace(text string, max int) string {
	cut := text[:max]
	if idx := strings.LastIndexFunc(cut, isSpace); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " \t\n\r")
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
