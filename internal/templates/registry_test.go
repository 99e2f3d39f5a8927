package templates

import (
	"errors"
	"strings"
	"testing"

	"promocast/internal/core"
)

func TestResolveNicheSpecific(t *testing.T) {
	builder, err := Resolve(core.TemplateVideoScript, "beauty")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	prompt := builder(core.GenerationRequest{
		ProductName: "Glow Serum",
		Niche:       "beauty",
		Tone:        "enthusiastic",
	})
	if !strings.Contains(prompt.User, "Glow Serum") {
		t.Error("product name missing from user prompt")
	}
	if prompt.System == "" {
		t.Error("system prompt is empty")
	}
}

func TestResolveUniversalFallback(t *testing.T) {
	// gardening has no bespoke video-script builder, so the universal one
	// must be returned.
	builder, err := Resolve(core.TemplateVideoScript, "gardening")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	prompt := builder(core.GenerationRequest{
		ProductName: "Self-Watering Planter",
		Niche:       "gardening",
		Tone:        "casual",
	})
	if !strings.Contains(prompt.User, "gardening") {
		t.Error("universal builder should interpolate the requested niche")
	}
}

func TestResolveUnknownTemplateType(t *testing.T) {
	_, err := Resolve(core.TemplateType("podcast_outline"), "beauty")
	if !errors.Is(err, ErrUnknownTemplateType) {
		t.Errorf("expected ErrUnknownTemplateType, got %v", err)
	}
}

func TestResolveEveryTypeAndNicheSucceeds(t *testing.T) {
	niches := []string{"beauty", "tech", "fitness", "fashion", "food", "travel", "pets", "somethingelse"}
	for _, tt := range TemplateTypes() {
		for _, niche := range niches {
			if _, err := Resolve(tt, niche); err != nil {
				t.Errorf("Resolve(%s, %s) failed: %v", tt, niche, err)
			}
		}
	}
}

func TestResolveViral(t *testing.T) {
	for _, vt := range ViralTemplateTypes() {
		builder, err := ResolveViral(vt, "any-niche")
		if err != nil {
			t.Errorf("ResolveViral(%s) failed: %v", vt, err)
			continue
		}
		prompt := builder(ViralRequest{Topic: "morning routines", Tone: "casual"})
		if !strings.Contains(prompt.User, "morning routines") {
			t.Errorf("%s builder dropped the topic", vt)
		}
	}

	if _, err := ResolveViral(core.ViralTemplateType("nope"), ""); !errors.Is(err, ErrUnknownTemplateType) {
		t.Errorf("expected ErrUnknownTemplateType, got %v", err)
	}
}
