package templates

import (
	"strings"
	"testing"

	"promocast/internal/core"
)

func TestComposeWithoutViralTemplate(t *testing.T) {
	prompt, err := Compose(core.GenerationRequest{
		ProductName:  "Trail Mix Pro",
		Niche:        "food",
		TemplateType: core.TemplateVideoScript,
		Tone:         "casual",
	})
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if strings.Contains(prompt.User, "PROVEN VIRAL PATTERN") {
		t.Error("viral block injected without a viral template")
	}
}

func TestComposeInjectsViralBlockBeforeGuidelines(t *testing.T) {
	prompt, err := Compose(core.GenerationRequest{
		ProductName:  "Trail Mix Pro",
		Niche:        "food",
		TemplateType: core.TemplateVideoScript,
		Tone:         "casual",
		ViralTemplate: &core.ViralTemplate{
			Hook:       "I ate this every day for a week",
			Format:     "before/after",
			Structure:  "hook, montage, verdict",
			Hashtags:   []string{"#snackreview", "#whatieatinaday"},
			Confidence: 87,
		},
	})
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	blockIdx := strings.Index(prompt.User, "PROVEN VIRAL PATTERN")
	guideIdx := strings.Index(prompt.User, guidelinesHeader)
	if blockIdx < 0 {
		t.Fatal("viral block missing from user prompt")
	}
	if guideIdx < 0 {
		t.Fatal("guidelines section missing from user prompt")
	}
	if blockIdx > guideIdx {
		t.Error("viral block must precede the writing guidelines")
	}

	for _, want := range []string{
		"I ate this every day for a week",
		"before/after",
		"1. #snackreview",
		"2. #whatieatinaday",
		"87%",
	} {
		if !strings.Contains(prompt.User, want) {
			t.Errorf("viral block missing %q", want)
		}
	}
}

func TestInjectViralBlockOmitsAbsentFields(t *testing.T) {
	got := injectViralBlock("Write a script.", &core.ViralTemplate{Hook: "watch this"})

	if strings.Contains(got, "Winning format") {
		t.Error("empty format field rendered")
	}
	if strings.Contains(got, "Engagement patterns") {
		t.Error("empty hashtag list rendered")
	}
	if strings.Contains(got, "Pattern confidence") {
		t.Error("zero confidence rendered")
	}
	if !strings.Contains(got, "watch this") {
		t.Error("hook missing")
	}
}

func TestInjectViralBlockAppendsWhenNoGuidelines(t *testing.T) {
	got := injectViralBlock("Just a bare prompt.", &core.ViralTemplate{Hook: "look"})
	if !strings.HasPrefix(got, "Just a bare prompt.") {
		t.Errorf("block should be appended after the prompt, got %q", got)
	}
	if !strings.Contains(got, "PROVEN VIRAL PATTERN") {
		t.Error("block missing")
	}
}

func TestFormatDirectives(t *testing.T) {
	spartan := formatDirectives(core.FormatSpartan)
	if !strings.Contains(spartan, "No emoji") {
		t.Errorf("spartan directives missing emoji rule: %q", spartan)
	}

	standard := formatDirectives(core.FormatStandard)
	if !strings.Contains(standard, "Emoji welcome") {
		t.Errorf("standard directives unexpected: %q", standard)
	}
}
