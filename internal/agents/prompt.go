package agents

import (
	"fmt"
	"strings"
)

// PersonaFallback is substituted when a profile has no personality set.
const PersonaFallback = "neutral and general."

// BuildSystemPrompt deterministically produces the system prompt for a
// profile. Only the name, personality, and description feed the prompt;
// identical inputs always yield an identical string.
func BuildSystemPrompt(a *Agent) string {
	personality := a.Personality
	if personality == "" {
		personality = PersonaFallback
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, an AI agent operating within a blockchain ecosystem. ", a.Name)
	fmt.Fprintf(&b, "Your personality is: %s", personality)
	if !strings.HasSuffix(personality, ".") {
		b.WriteString(".")
	}
	if a.Description != "" {
		fmt.Fprintf(&b, " About you: %s", a.Description)
	}
	fmt.Fprintf(&b,
		" Always stay in character as %s and remain aware of the blockchain ecosystem you operate in."+
			" Keep your answers concise. If you do not know something, say so rather than inventing an answer.",
		a.Name,
	)
	return b.String()
}
