// Package platform defines the per-platform caption contracts: style guidance
// for the prompt, hard word/character budgets, and the post-processing that
// enforces them.
package platform

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrUnknownPlatform indicates a requested platform has no Spec entry.
var ErrUnknownPlatform = errors.New("unknown platform")

// Spec describes one platform's caption contract.
type Spec struct {
	Style       string // Style guidance injected into the caption prompt
	MaxWords    int    // Hard word budget
	MaxChars    int    // Hard character budget
	FormatNotes string // Extra formatting instructions for the prompt
}

// specs is the static per-platform table. Every platform in a
// GenerationRequest must have an entry here or the request fails validation.
var specs = map[string]Spec{
	"tiktok": {
		Style:       "punchy, trend-aware, first-person, speaks to a young audience",
		MaxWords:    60,
		MaxChars:    300,
		FormatNotes: "Open with a hook in the first line. 2-4 hashtags at the end.",
	},
	"instagram": {
		Style:       "aspirational and visual, warm first-person voice",
		MaxWords:    80,
		MaxChars:    400,
		FormatNotes: "Short paragraphs separated by line breaks. Up to 5 hashtags.",
	},
	"youtube": {
		Style:       "informative and search-friendly, written like a video description",
		MaxWords:    100,
		MaxChars:    500,
		FormatNotes: "Lead with what the viewer will learn. No hashtag walls.",
	},
	"twitter": {
		Style:       "concise and witty, one clear idea",
		MaxWords:    40,
		MaxChars:    280,
		FormatNotes: "Single short paragraph. At most 2 hashtags.",
	},
	"facebook": {
		Style:       "conversational and community-oriented, invites comments",
		MaxWords:    80,
		MaxChars:    500,
		FormatNotes: "End with a question to the reader.",
	},
}

// GetSpec returns the caption contract for a platform.
func GetSpec(platform string) (Spec, error) {
	spec, ok := specs[strings.ToLower(platform)]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %s", ErrUnknownPlatform, platform)
	}
	return spec, nil
}

// Supported returns the list of known platform names.
func Supported() []string {
	return []string{"tiktok", "instagram", "youtube", "twitter", "facebook"}
}

// ValidatePlatforms checks that every requested platform has a Spec entry.
func ValidatePlatforms(platforms []string) error {
	if len(platforms) == 0 {
		return fmt.Errorf("at least one platform is required")
	}
	for _, p := range platforms {
		if _, err := GetSpec(p); err != nil {
			return err
		}
	}
	return nil
}

// EnforceLimits trims a caption to the platform's word budget, then to its
// character budget. Word counts from the model are unreliable predictors of
// character counts (emoji, hashtags and long words skew the ratio), so both
// bounds are applied, in that order. Applying it to an already compliant
// string returns the string unchanged.
func EnforceLimits(caption string, spec Spec) string {
	trimmed := strings.TrimSpace(caption)

	words := strings.Fields(trimmed)
	if len(words) > spec.MaxWords {
		trimmed = strings.Join(words[:spec.MaxWords], " ")
	}

	if len(trimmed) > spec.MaxChars {
		cut := spec.MaxChars - 3
		for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
			cut--
		}
		trimmed = strings.TrimSpace(trimmed[:cut]) + "..."
	}

	return trimmed
}

// hyperboleDenylist is the fixed set of hyperbolic adjectives/adverbs removed
// under the spartan content format.
var hyperboleDenylist = []string{
	"amazing", "incredible", "unbelievable", "revolutionary", "game-changing",
	"life-changing", "mind-blowing", "insane", "crazy", "literally",
	"absolutely", "totally", "super", "ultimate", "epic", "magical",
	"miraculous", "jaw-dropping", "stunning", "obsessed",
}

// ApplySpartan strips emoji and hyperbolic filler words from a caption. It is
// applied before the affiliate link block is appended, so the disclosure text
// is never touched.
func ApplySpartan(caption string) string {
	var b strings.Builder
	for _, r := range caption {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := b.String()

	words := strings.Fields(cleaned)
	kept := words[:0]
	for _, w := range words {
		bare := strings.ToLower(strings.Trim(w, ".,!?;:\"'"))
		if isHyperbole(bare) {
			continue
		}
		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}

func isHyperbole(word string) bool {
	for _, h := range hyperboleDenylist {
		if word == h {
			return true
		}
	}
	return false
}

// isEmoji reports whether a rune falls in one of the denylisted emoji ranges.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols & pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport & map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // extended symbols
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, ZWJ
		return true
	}
	return false
}
