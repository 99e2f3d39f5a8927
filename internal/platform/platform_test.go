package platform

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGetSpec(t *testing.T) {
	spec, err := GetSpec("tiktok")
	if err != nil {
		t.Fatalf("GetSpec(tiktok) failed: %v", err)
	}
	if spec.MaxWords != 60 || spec.MaxChars != 300 {
		t.Errorf("unexpected tiktok budgets: %d words, %d chars", spec.MaxWords, spec.MaxChars)
	}

	// Lookup is case-insensitive.
	if _, err := GetSpec("TikTok"); err != nil {
		t.Errorf("GetSpec(TikTok) failed: %v", err)
	}

	if _, err := GetSpec("myspace"); err == nil {
		t.Error("expected error for unknown platform")
	}
}

func TestValidatePlatforms(t *testing.T) {
	if err := ValidatePlatforms([]string{"tiktok", "instagram", "youtube", "twitter", "facebook"}); err != nil {
		t.Errorf("all supported platforms rejected: %v", err)
	}
	if err := ValidatePlatforms([]string{"tiktok", "myspace"}); err == nil {
		t.Error("expected error when one platform is unknown")
	}
	if err := ValidatePlatforms(nil); err == nil {
		t.Error("expected error for empty platform list")
	}
}

func TestEnforceLimitsCompliantUnchanged(t *testing.T) {
	spec := Spec{MaxWords: 10, MaxChars: 100}
	caption := "Short and sweet caption."

	if got := EnforceLimits(caption, spec); got != caption {
		t.Errorf("compliant caption changed: %q", got)
	}
}

func TestEnforceLimitsWordBudget(t *testing.T) {
	spec := Spec{MaxWords: 4, MaxChars: 500}
	caption := "one two three four five six"

	got := EnforceLimits(caption, spec)
	if got != "one two three four" {
		t.Errorf("expected word-trimmed caption, got %q", got)
	}
	// No ellipsis when only the word budget binds.
	if strings.HasSuffix(got, "...") {
		t.Error("word-only trim should not append ellipsis")
	}
}

func TestEnforceLimitsCharBudget(t *testing.T) {
	spec := Spec{MaxWords: 100, MaxChars: 20}
	caption := "this caption is definitely longer than twenty characters"

	got := EnforceLimits(caption, spec)
	if len(got) > spec.MaxChars {
		t.Errorf("caption exceeds char budget: %d > %d", len(got), spec.MaxChars)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("char-trimmed caption missing ellipsis: %q", got)
	}
}

func TestEnforceLimitsKeepsRuneBoundaries(t *testing.T) {
	spec := Spec{MaxWords: 60, MaxChars: 40}
	caption := strings.Repeat("🔥", 30)

	got := EnforceLimits(caption, spec)
	if !utf8.ValidString(got) {
		t.Errorf("truncation produced invalid UTF-8: %q", got)
	}
	if len(got) > spec.MaxChars {
		t.Errorf("caption exceeds char budget: %d > %d", len(got), spec.MaxChars)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("char-trimmed caption missing ellipsis: %q", got)
	}
}

func TestEnforceLimitsIdempotent(t *testing.T) {
	spec := Spec{MaxWords: 8, MaxChars: 40}
	caption := "a rather long caption that will certainly be trimmed twice over its budgets"

	once := EnforceLimits(caption, spec)
	twice := EnforceLimits(once, spec)
	if once != twice {
		t.Errorf("EnforceLimits not idempotent: %q vs %q", once, twice)
	}
}

func TestApplySpartanStripsEmoji(t *testing.T) {
	got := ApplySpartan("Glow up your routine \U0001F525✨ today")
	if strings.ContainsRune(got, '\U0001F525') || strings.ContainsRune(got, '✨') {
		t.Errorf("emoji survived: %q", got)
	}
	if !strings.Contains(got, "Glow up your routine") {
		t.Errorf("plain text mangled: %q", got)
	}
}

func TestApplySpartanStripsHyperbole(t *testing.T) {
	got := ApplySpartan("This amazing serum is literally life-changing, totally worth it!")
	for _, banned := range []string{"amazing", "literally", "life-changing", "totally"} {
		if strings.Contains(strings.ToLower(got), banned) {
			t.Errorf("hyperbole %q survived: %q", banned, got)
		}
	}
	if !strings.Contains(got, "serum") || !strings.Contains(got, "worth") {
		t.Errorf("neutral words removed: %q", got)
	}
}

func TestApplySpartanKeepsPlainText(t *testing.T) {
	caption := "A gentle cleanser for sensitive skin."
	if got := ApplySpartan(caption); got != caption {
		t.Errorf("plain caption changed: %q", got)
	}
}
