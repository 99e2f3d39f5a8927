package templates

import (
	"fmt"
	"strings"

	"promocast/internal/core"
)

// guidelinesHeader marks each builder's writing-guidelines section. The viral
// enhancement block is spliced in immediately before it so pattern guidance
// reads as context, not as a rule override.
const guidelinesHeader = "**WRITING GUIDELINES:**"

// Compose resolves the builder for a request and produces the final prompt
// pair, injecting the viral-template enhancement block when one is attached.
func Compose(req core.GenerationRequest) (Prompt, error) {
	builder, err := Resolve(req.TemplateType, req.Niche)
	if err != nil {
		return Prompt{}, err
	}

	prompt := builder(req)

	if req.ViralTemplate != nil {
		prompt.User = injectViralBlock(prompt.User, req.ViralTemplate)
	}

	return prompt, nil
}

// ComposeViral resolves and builds the prompt for a topic-only viral request.
func ComposeViral(templateType core.ViralTemplateType, req ViralRequest) (Prompt, error) {
	builder, err := ResolveViral(templateType, req.Niche)
	if err != nil {
		return Prompt{}, err
	}
	return builder(req), nil
}

// injectViralBlock appends the proven-pattern block to the user prompt,
// immediately before the writing-guidelines section when present, otherwise at
// the end. Absent fields are simply omitted.
func injectViralBlock(userPrompt string, vt *core.ViralTemplate) string {
	var block strings.Builder

	block.WriteString("**PROVEN VIRAL PATTERN (model your output on this):**\n")
	if vt.Hook != "" {
		block.WriteString(fmt.Sprintf("- Proven hook: %q\n", vt.Hook))
	}
	if vt.Format != "" {
		block.WriteString(fmt.Sprintf("- Winning format: %s\n", vt.Format))
	}
	if vt.Structure != "" {
		block.WriteString(fmt.Sprintf("- Structure: %s\n", vt.Structure))
	}
	block.WriteString("- Follow the three-part arc: opening hook, demonstration, call-to-action\n")
	if len(vt.Hashtags) > 0 {
		block.WriteString("- Engagement patterns that worked:\n")
		for i, tag := range vt.Hashtags {
			block.WriteString(fmt.Sprintf("  %d. %s\n", i+1, tag))
		}
	}
	if vt.Confidence > 0 {
		block.WriteString(fmt.Sprintf("- Pattern confidence: %.0f%%\n", vt.Confidence))
	}
	block.WriteString("\n")

	if idx := strings.Index(userPrompt, guidelinesHeader); idx >= 0 {
		return userPrompt[:idx] + block.String() + userPrompt[idx:]
	}
	return strings.TrimRight(userPrompt, "\n") + "\n\n" + block.String()
}

// formatDirectives returns the style rules appended to every user prompt for
// the given content format.
func formatDirectives(format core.ContentFormat) string {
	if format == core.FormatSpartan {
		return `**STYLE:**
- Plain, direct language. No emoji.
- No hype words ("amazing", "incredible", "game-changing")
- Short sentences. Concrete claims only.`
	}
	return `**STYLE:**
- Conversational and energetic
- Emoji welcome where they add personality
- Write like a creator talking to their audience, not a brand`
}
