package llm

import (
	"fmt"
	"strings"

	"navmind/internal/domain/models"
)

// RenderSystemPrompt turns a persona into the system message.
func RenderSystemPrompt(a models.Agent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s. %s\n", a.Role, a.Backstory)
	fmt.Fprintf(&b, "Your personal goal is: %s", a.Goal)
	return b.String()
}

// RenderTaskPrompt builds the user message: task, expected output, then any context.
func RenderTaskPrompt(p Prompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current Task: %s\n\n", p.Description)
	fmt.Fprintf(&b, "This is the expected criteria for your final answer: %s\n", p.ExpectedOutput)
	b.WriteString("You MUST return the actual complete content as the final answer, not a summary.")

	var ctxParts []string
	for _, c := range p.Context {
		if strings.TrimSpace(c) != "" {
			ctxParts = append(ctxParts, c)
		}
	}
	if len(ctxParts) > 0 {
		b.WriteString("\n\nThis is the context you're working with:\n")
		b.WriteString(strings.Join(ctxParts, "\n\n----------\n\n"))
	}
	b.WriteString("\n\nBegin! Give your best final answer.")
	return b.String()
}
