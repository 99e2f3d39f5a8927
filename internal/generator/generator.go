// Package generator assembles a full GeneratedContent payload from a
// generation request: main script, per-platform captions, affiliate link and
// the derived demo script and product description.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"promocast/internal/affiliate"
	"promocast/internal/core"
	"promocast/internal/llm"
	"promocast/internal/logger"
	"promocast/internal/platform"
	"promocast/internal/templates"
)

// ErrMainContentFailed indicates the main script generation failed. This is
// fatal for the whole request; caption failures are not.
var ErrMainContentFailed = errors.New("main content generation failed")

const (
	captionTemperature = float32(0.8)
	captionMaxTokens   = int32(600)
	// scriptExcerptChars bounds how much of the main script is shown to the
	// caption prompt as reference material.
	scriptExcerptChars = 300
)

// CompletionClient is the single-call LLM capability the generator consumes.
// *llm.Client satisfies it; tests substitute fakes.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts llm.CompletionOptions) (string, error)
}

// Generator orchestrates prompt composition, caption synthesis and content
// assembly for one request at a time.
type Generator struct {
	client CompletionClient
}

// New creates a Generator backed by the given completion client.
func New(client CompletionClient) *Generator {
	return &Generator{client: client}
}

// Generate runs the full pipeline for one request. A main-script failure
// aborts the request; a single platform's caption failure is recovered with a
// deterministic fallback caption so the other platforms still deliver.
func (g *Generator) Generate(ctx context.Context, req core.GenerationRequest) (*core.GeneratedContent, error) {
	if err := platform.ValidatePlatforms(req.Platforms); err != nil {
		return nil, err
	}

	prompt, err := templates.Compose(req)
	if err != nil {
		return nil, err
	}

	script, err := g.client.Complete(ctx, prompt.System, prompt.User, mainOptions(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMainContentFailed, err)
	}
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, fmt.Errorf("%w: model returned empty script", ErrMainContentFailed)
	}

	link := affiliate.BuildLink(req.ProductName, req.AffiliateID)

	captions := make(map[string]string, len(req.Platforms))
	for _, p := range req.Platforms {
		captions[p] = g.synthesizeCaption(ctx, req, p, script, link)
	}

	content := &core.GeneratedContent{
		ID:                 uuid.NewString(),
		Script:             script,
		ProductDescription: deriveProductDescription(script, req.ProductName),
		DemoScript:         deriveDemoScript(script, req.ContentFormat),
		CaptionsByPlatform: captions,
		AffiliateLink:      link,
		Metadata: core.Metadata{
			AIModel:          req.AIModel,
			ContentFormat:    req.ContentFormat,
			TemplateType:     req.TemplateType,
			Tone:             req.Tone,
			Niche:            req.Niche,
			Platforms:        req.Platforms,
			GeneratedAt:      time.Now().UTC(),
			ApproxTokenCount: len(script) / 4,
		},
	}

	return content, nil
}

// mainOptions maps the request's content format onto sampling options for the
// main script call. Spartan lowers temperature and shortens the token budget.
func mainOptions(req core.GenerationRequest) llm.CompletionOptions {
	opts := llm.CompletionOptions{
		Model:       req.AIModel,
		Temperature: 0.9,
		MaxTokens:   2048,
	}
	if req.ContentFormat == core.FormatSpartan {
		opts.Temperature = 0.5
		opts.MaxTokens = 1024
	}
	return opts
}

// synthesizeCaption produces one platform's caption. On AI failure it logs,
// swallows the error and substitutes the deterministic fallback so that one
// platform never blocks delivery of the others.
func (g *Generator) synthesizeCaption(ctx context.Context, req core.GenerationRequest, platformName, script, link string) string {
	spec, _ := platform.GetSpec(platformName)

	raw, err := g.client.Complete(ctx, captionSystemPrompt(platformName, spec),
		captionUserPrompt(req, platformName, spec, script),
		llm.CompletionOptions{
			Model:       req.AIModel,
			Temperature: captionTemperature,
			MaxTokens:   captionMaxTokens,
		})
	if err != nil {
		logger.Error("caption generation failed, using fallback", err,
			"platform", platformName, "product", req.ProductName)
		raw = fallbackCaption(req, platformName)
	}

	caption := strings.ReplaceAll(raw, "[TRUNCATED]", "")
	caption = platform.EnforceLimits(caption, spec)
	if req.ContentFormat == core.FormatSpartan {
		caption = platform.ApplySpartan(caption)
	}

	return caption + affiliate.FormatForPlatform(platformName, link)
}

func captionSystemPrompt(platformName string, spec platform.Spec) string {
	return fmt.Sprintf("You write %s captions. Style: %s. Hard limits: %d words, %d characters.",
		platformName, spec.Style, spec.MaxWords, spec.MaxChars)
}

func captionUserPrompt(req core.GenerationRequest, platformName string, spec platform.Spec, script string) string {
	excerpt := script
	if len(excerpt) > scriptExcerptChars {
		cut := scriptExcerptChars
		for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
			cut--
		}
		excerpt = excerpt[:cut]
	}

	return fmt.Sprintf(`Write a %s caption promoting "%s" (%s niche) in a %s tone.

For context, the main content opens like this - do NOT copy it, write an original caption:
---
%s
---

Requirements:
- At most %d words and %d characters
- %s
- Do not include any affiliate link or disclosure; those are appended separately`,
		platformName, req.ProductName, req.Niche, req.Tone,
		excerpt, spec.MaxWords, spec.MaxChars, spec.FormatNotes)
}

// fallbackCaption is the deterministic caption used when the AI call for a
// platform fails. It still gets trimmed, filtered and linked like any other.
func fallbackCaption(req core.GenerationRequest, platformName string) string {
	switch platformName {
	case "twitter":
		return fmt.Sprintf("Tried %s so you don't have to - and it stays in my %s rotation. Details below.",
			req.ProductName, req.Niche)
	default:
		return fmt.Sprintf("If you're into %s, %s deserves a spot on your list. I've been using it daily and it holds up. Full breakdown coming soon.",
			req.Niche, req.ProductName)
	}
}

// deriveDemoScript takes the first sentences of the main script: two for
// spartan output, three for standard.
func deriveDemoScript(script string, format core.ContentFormat) string {
	wanted := 3
	if format == core.FormatSpartan {
		wanted = 2
	}

	sentences := splitSentences(script)
	if len(sentences) > wanted {
		sentences = sentences[:wanted]
	}
	return strings.Join(sentences, " ")
}

// deriveProductDescription truncates the script to roughly 50 words and wraps
// it in a fixed description template.
func deriveProductDescription(script, productName string) string {
	words := strings.Fields(script)
	if len(words) > 50 {
		words = words[:50]
	}
	return fmt.Sprintf("%s - %s...", productName, strings.Join(words, " "))
}

// splitSentences splits text on terminal punctuation, keeping the punctuation
// attached to each sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
