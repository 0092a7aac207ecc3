package engine

import (
	"fmt"
	"strings"

	"github.com/casetalk/casetalk/internal/scenario"
)

// buildAvatarSystemPrompt assembles the system prompt for an avatar
// reply from the case persona, the current node, and the guardrail
// constraints the avatar must respect.
func buildAvatarSystemPrompt(c *scenario.Case, node *scenario.Node) string {
	var b strings.Builder

	persona := c.Persona
	if persona == "" {
		persona = "a professional business-case interviewer"
	}
	b.WriteString(fmt.Sprintf("You are %s, running the business case %q with a student.\n", persona, c.Title))
	if c.Description != "" {
		b.WriteString("\nCase background:\n")
		b.WriteString(c.Description)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nThe student is responding to: %s\n", node.Content))

	b.WriteString(`
Instructions:
1. Stay in character and respond to what the student actually said.
2. Keep the conversation anchored to the case; steer digressions back politely.
3. Do not invent facts beyond the case background.
4. Be concise: a few sentences, no headers or lists.`)

	if c.Guardrails.MaxResponseLength > 0 {
		b.WriteString(fmt.Sprintf("\n5. Keep your reply under %d characters.", c.Guardrails.MaxResponseLength))
	}

	return b.String()
}
