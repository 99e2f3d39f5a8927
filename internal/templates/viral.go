package templates

import "fmt"

// Topic-only viral builders. These formats have no product: they are keyed by
// a topic string and exist to grow an account between promotional posts. All
// of them register universal builders only.

func buildViralHooks(req ViralRequest) Prompt {
	system := "You are a short-form video strategist who writes scroll-stopping hooks. A hook earns " +
		"its next three seconds or it is worthless; you write for the pause, not for completeness."

	user := fmt.Sprintf(`Write 10 video hooks about "%s" in a %s tone.

**REQUIREMENTS:**
1. Each hook is one sentence, under 12 words
2. Mix the triggers: curiosity gap, bold claim, shared frustration, contrarian take
3. No clickbait that the video could not pay off
4. Number them 1-10

%s

%s
- Spoken language, not headline language
- No emoji inside the hooks themselves`,
		req.Topic, req.Tone, formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildViralShortScript(req ViralRequest) Prompt {
	system := "You are a short-form video writer. You compress one idea into 20-30 seconds with a " +
		"hook, a payoff and a reason to follow."

	user := fmt.Sprintf(`Write a 20-30 second video script about "%s" in a %s tone.

**STRUCTURE:**
1. HOOK (0-3s): earn the pause
2. ONE IDEA (3-20s): deliver a single insight, tip or story beat - no lists
3. PAYOFF + FOLLOW (20-30s): land the idea, then give a reason to follow for more

%s

%s
- Spoken words only, no stage directions
- Under 90 words total`,
		req.Topic, req.Tone, formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildViralStorytime(req ViralRequest) Prompt {
	system := "You are a storytime script writer. You open in the middle of the action, withhold the " +
		"resolution until the end, and keep every sentence pulling toward it."

	user := fmt.Sprintf(`Write a 45-60 second storytime video script about "%s" in a %s tone.

**STRUCTURE:**
1. COLD OPEN (0-5s): start at the most dramatic moment, then rewind
2. SETUP (5-20s): the context, fast
3. ESCALATION (20-45s): two or three beats, each raising the stakes
4. RESOLUTION (45-60s): the payoff, plus one line of what you learned

%s

%s
- First person, past tense
- Conversational - this is told, not read`,
		req.Topic, req.Tone, formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildViralDuet(req ViralRequest) Prompt {
	system := "You are a reaction-content writer. You script duet/reaction commentary that adds a " +
		"genuine take - agreement with evidence, or pushback with respect - never empty reacting."

	user := fmt.Sprintf(`Write a duet/reaction video script responding to content about "%s" in a %s tone.

**STRUCTURE:**
1. PAUSE POINT 1 (0-5s): your instant reaction to the premise
2. THE TAKE (5-25s): your actual position and the one piece of evidence or experience behind it
3. PAUSE POINT 2 (25-40s): respond to the strongest moment of the original
4. WRAP (40-50s): your verdict and a question that invites comments

%s

%s
- Mark where the original plays with (original plays)
- Your commentary must stand on its own for viewers who missed the original`,
		req.Topic, req.Tone, formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildViralListicle(req ViralRequest) Prompt {
	system := "You are a listicle video writer. Your lists promise a specific number, rank items so " +
		"the best is last, and give each item one concrete reason to exist."

	user := fmt.Sprintf(`Write a listicle video script about "%s" in a %s tone.

**STRUCTURE:**
1. HOOK (0-3s): the number and the promise ("5 things...")
2. ITEMS: 5 items, ranked weakest to strongest, 1-2 sentences each with one concrete detail
3. FINALE: the last item gets double the time - it is the reason to watch to the end
4. CTA: ask which item viewers would add

%s

%s
- Say the item number out loud each time
- 60-90 seconds of spoken content`,
		req.Topic, req.Tone, formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildViralChallenge(req ViralRequest) Prompt {
	system := "You are a challenge-format video writer. A good challenge is replicable in one take, " +
		"safe, and leaves an obvious template for viewers to copy."

	user := fmt.Sprintf(`Design a participation challenge video about "%s" in a %s tone.

**STRUCTURE:**
1. ANNOUNCE (0-5s): name the challenge and the dare
2. RULES (5-15s): three rules maximum, each one sentence
3. DEMONSTRATE (15-40s): script yourself doing it, including where it gets hard
4. PASS IT ON (40-50s): nominate viewers and name the hashtag to use

%s

%s
- The challenge must be safe and doable at home with no special equipment
- Include a short, memorable hashtag for the challenge`,
		req.Topic, req.Tone, formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}

func buildViralCaptionTags(req ViralRequest) Prompt {
	system := "You are a social caption writer. You write captions that open strong before the fold " +
		"and hashtag sets that mix reach tags with niche tags."

	user := fmt.Sprintf(`Write a caption plus hashtag set about "%s" in a %s tone.

**STRUCTURE:**
1. CAPTION: 40-80 words; first line must work standing alone (it is all most people see)
2. Line break, then a question that invites comments
3. HASHTAGS: exactly 10 - 3 broad reach tags, 5 niche tags, 2 micro-community tags

%s

%s
- No hashtags inside the caption body
- First line under 60 characters`,
		req.Topic, req.Tone, formatDirectives(req.ContentFormat), guidelinesHeader)

	return Prompt{System: system, User: user}
}
