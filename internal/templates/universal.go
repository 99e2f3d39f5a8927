package templates

import (
	"fmt"

	"promocast/internal/core"
)

// Niche-agnostic builders. These template families share their structure
// across every niche, so only a universal builder is registered; the niche
// still flavors the prompt through interpolation.

func buildComparison(req core.GenerationRequest) Prompt {
	system := "You are an affiliate content writer who produces fair, useful product comparisons. " +
		"You compare the featured product against its typical alternatives honestly; the featured " +
		"product wins on fit, not on rigged criteria."

	user := fmt.Sprintf(`Write a product comparison featuring "%s" for the %s niche in a %s tone.

**STRUCTURE:**
1. Frame the buying decision readers in this niche actually face
2. Compare "%s" against 2-3 typical alternatives on the criteria that matter (price range, quality, ease of use, durability)
3. Name one scenario where an alternative is the better pick - honesty converts
4. Verdict: who should buy "%s" and why
5. Close with a call to action

%s

%s
- 250-400 words
- Use a short comparison list or table-like layout for the criteria
- No invented prices or fake review scores`,
		req.ProductName, req.Niche, req.Tone, req.ProductName, req.ProductName,
		formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildRoutineKit(req core.GenerationRequest) Prompt {
	system := "You are an affiliate content writer who builds routine and kit guides - step-by-step " +
		"routines where each step names the product that serves it, anchored by one featured product."

	user := fmt.Sprintf(`Write a routine/kit guide for the %s niche built around "%s", in a %s tone.

**STRUCTURE:**
1. Name the routine and the outcome it delivers (morning routine, starter kit, weekly reset...)
2. 4-6 numbered steps; each step says what to do and what you need
3. Feature "%s" at the step where it genuinely belongs - explain why it earns its spot
4. One tip for beginners who want to start with just the essentials
5. Call to action for the featured product

%s

%s
- 250-400 words
- Steps must be actionable today, not aspirational
- Mention the featured product 2-3 times, never more`,
		req.Niche, req.ProductName, req.Tone, req.ProductName,
		formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildInfluencerCaption(req core.GenerationRequest) Prompt {
	system := "You are a social media ghostwriter who writes influencer captions - personal, " +
		"story-first posts where the product appears as part of the creator's life, not as an ad."

	user := fmt.Sprintf(`Write an influencer-style caption about "%s" for the %s niche in a %s tone.

**STRUCTURE:**
1. Open mid-story - a moment, not an announcement
2. Let the product enter the story naturally
3. One concrete detail about using it that only a real user would know
4. Soft call to action
5. 3-5 relevant hashtags

%s

%s
- 60-120 words
- First person
- No "I'm so excited to announce" openings`,
		req.ProductName, req.Niche, req.Tone,
		formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildAffiliateEmail(req core.GenerationRequest) Prompt {
	system := "You are an email marketer who writes affiliate promotional emails with high open and " +
		"click rates. You write like a person recommending something to a friend, with one clear link."

	user := fmt.Sprintf(`Write an affiliate marketing email promoting "%s" for a %s-interested audience in a %s tone.

**STRUCTURE:**
1. Subject line: under 50 characters, curiosity or benefit driven (give 2 options)
2. Opening: a one-to-one, personal first line - no "Dear subscriber"
3. Body: the problem, how "%s" addresses it, one specific detail that makes it credible
4. Single call-to-action mentioning the link (the link itself is inserted later)
5. Sign-off with a PS line that restates the offer

%s

%s
- 150-250 words for the body
- Short paragraphs, 1-3 sentences each
- Exactly one CTA, repeated once in the PS`,
		req.ProductName, req.Niche, req.Tone, req.ProductName,
		formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildSEOBlog(req core.GenerationRequest) Prompt {
	system := "You are an SEO content writer who produces blog posts that rank and convert. You " +
		"target buyer-intent keywords, structure with scannable headings, and weave the affiliate " +
		"product in as the natural answer to the searcher's problem."

	user := fmt.Sprintf(`Write an SEO blog post featuring "%s" for the %s niche in a %s tone.

**STRUCTURE:**
1. Title: include a buyer-intent phrase a searcher would type (e.g. "best", "review", "worth it")
2. Intro: name the searcher's problem in the first two sentences
3. 3-4 H2 sections: what it is, how it performs in real use, who it is for, alternatives considered
4. A short FAQ section with 2-3 questions searchers actually ask
5. Conclusion with a clear recommendation and call to action

%s

%s
- 400-600 words
- Use the product name naturally 4-6 times, never stuffed
- Write headings as questions or benefit statements`,
		req.ProductName, req.Niche, req.Tone,
		formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}
