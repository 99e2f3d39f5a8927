package templates

import (
	"fmt"

	"promocast/internal/core"
)

// Niche-specific short-form video script builders. Video scripts are the one
// template family where niches diverge enough to justify bespoke prompts:
// beauty leans on application/results framing, tech on specs and use cases,
// fitness on progression and safe claims, and so on.

func buildBeautyVideoScript(req core.GenerationRequest) Prompt {
	system := "You are a beauty content creator who writes short-form video scripts that convert. " +
		"You know skincare and makeup vocabulary, you never overpromise results, and you always " +
		"frame products around texture, application and how skin looks and feels."

	user := fmt.Sprintf(`Write a 30-45 second video script promoting "%s" in a %s tone.

**SCRIPT STRUCTURE:**
1. HOOK (0-3s): A relatable beauty frustration or a before/after tease
2. APPLICATION (3-25s): Walk through using the product - texture, how it applies, how it wears through the day
3. RESULTS (25-40s): What changed - be specific (hydration, finish, coverage) without medical claims
4. CTA (40-45s): Tell viewers where the link is

**VOCABULARY:**
Use real beauty language: "dewy", "non-comedogenic", "buildable", "holy grail", "shade match".
Never claim the product treats or cures skin conditions.

%s

%s`, req.ProductName, req.Tone, formatDirectives(req.ContentFormat), videoGuidelines())

	return Prompt{System: system, User: user}
}

func buildTechVideoScript(req core.GenerationRequest) Prompt {
	system := "You are a tech reviewer who writes short-form video scripts. You lead with the " +
		"problem a gadget solves, you cite concrete specs instead of adjectives, and you are honest " +
		"about tradeoffs, which is exactly why your recommendations convert."

	user := fmt.Sprintf(`Write a 30-45 second video script reviewing "%s" in a %s tone.

**SCRIPT STRUCTURE:**
1. HOOK (0-3s): The problem this device solves, or a surprising capability
2. DEMO (3-25s): Show it doing the thing - name 2-3 concrete specs or features that matter
3. VERDICT (25-40s): Who this is for, one honest limitation, and why it is still worth it
4. CTA (40-45s): Point to the link for current pricing

**VOCABULARY:**
Talk specs, not superlatives: battery hours, weight, ports, compatibility.
One sentence on a limitation builds trust - include it.

%s

%s`, req.ProductName, req.Tone, formatDirectives(req.ContentFormat), videoGuidelines())

	return Prompt{System: system, User: user}
}

func buildFitnessVideoScript(req core.GenerationRequest) Prompt {
	system := "You are a fitness creator who writes short-form video scripts. You build scripts " +
		"around progression and consistency, never around transformation fantasies, and you keep " +
		"every claim within what training equipment can honestly deliver."

	user := fmt.Sprintf(`Write a 30-45 second video script featuring "%s" in a %s tone.

**SCRIPT STRUCTURE:**
1. HOOK (0-3s): A training plateau or pain point your audience knows too well
2. IN USE (3-25s): Show the product inside a real workout - sets, movements, how it changes the session
3. WHY IT STICKS (25-40s): How it helps consistency or form - no body-transformation promises
4. CTA (40-45s): Link for the gear

**VOCABULARY:**
Speak trainer: "progressive overload", "time under tension", "recovery", "form check".
Never promise weight loss or muscle gain on a timeline.

%s

%s`, req.ProductName, req.Tone, formatDirectives(req.ContentFormat), videoGuidelines())

	return Prompt{System: system, User: user}
}

func buildFashionVideoScript(req core.GenerationRequest) Prompt {
	system := "You are a fashion content creator writing short-form video scripts. You sell pieces " +
		"through styling - what to pair, where to wear - and you speak in fit, fabric and silhouette."

	user := fmt.Sprintf(`Write a 30-45 second video script styling "%s" in a %s tone.

**SCRIPT STRUCTURE:**
1. HOOK (0-3s): An outfit problem or an "I found the piece" reveal
2. STYLING (3-25s): Three ways to wear it - name the pairings and the occasions
3. DETAILS (25-40s): Fit, fabric, how it moves, sizing guidance
4. CTA (40-45s): Where to grab it

**VOCABULARY:**
Use fashion language: "silhouette", "drape", "elevated basics", "capsule", "true to size".

%s

%s`, req.ProductName, req.Tone, formatDirectives(req.ContentFormat), videoGuidelines())

	return Prompt{System: system, User: user}
}

func buildFoodVideoScript(req core.GenerationRequest) Prompt {
	system := "You are a food content creator writing short-form video scripts. You make viewers " +
		"taste through the screen - sensory detail first, product utility second - and every script " +
		"ends with something the viewer can cook tonight."

	user := fmt.Sprintf(`Write a 30-45 second video script featuring "%s" in a %s tone.

**SCRIPT STRUCTURE:**
1. HOOK (0-3s): The dish reveal or a kitchen struggle everyone knows
2. COOKING (3-25s): Use the product in a simple recipe - sounds, textures, steam, the sizzle
3. PAYOFF (25-40s): The taste moment and why this tool/ingredient made it easy
4. CTA (40-45s): Link so they can make it too

**VOCABULARY:**
Sensory words: "caramelized", "crispy", "velvety", "weeknight-easy".
Keep the recipe achievable in under 30 minutes.

%s

%s`, req.ProductName, req.Tone, formatDirectives(req.ContentFormat), videoGuidelines())

	return Prompt{System: system, User: user}
}

func buildTravelVideoScript(req core.GenerationRequest) Prompt {
	system := "You are a travel content creator writing short-form video scripts. You sell gear " +
		"through scenarios - the airport sprint, the overpacked suitcase - and you always quantify " +
		"the space, weight or time the product saves."

	user := fmt.Sprintf(`Write a 30-45 second video script featuring "%s" in a %s tone.

**SCRIPT STRUCTURE:**
1. HOOK (0-3s): A travel disaster or packing epiphany
2. ON THE ROAD (3-25s): The product in a real travel scenario - security line, hostel, long-haul flight
3. THE MATH (25-40s): What it saves - liters of space, grams of weight, minutes at the gate
4. CTA (40-45s): Link before the next trip

**VOCABULARY:**
Traveler shorthand: "carry-on only", "packing cubes", "TSA-friendly", "one-bag".

%s

%s`, req.ProductName, req.Tone, formatDirectives(req.ContentFormat), videoGuidelines())

	return Prompt{System: system, User: user}
}

func buildPetsVideoScript(req core.GenerationRequest) Prompt {
	system := "You are a pet content creator writing short-form video scripts. The pet is always " +
		"the star - the product earns its place by what it does for the animal - and you never make " +
		"health claims a vet would not sign off on."

	user := fmt.Sprintf(`Write a 30-45 second video script featuring "%s" in a %s tone.

**SCRIPT STRUCTURE:**
1. HOOK (0-3s): The pet doing something adorable or maddening that this product addresses
2. REACTION (3-25s): The pet meeting/using the product - narrate their reaction
3. OWNER WIN (25-40s): What changed for the owner - less mess, calmer walks, easier grooming
4. CTA (40-45s): Link for fellow pet parents

**VOCABULARY:**
Pet-parent voice: "enrichment", "zoomies", "high-value treat", "separation anxiety" (behavioral, not medical).
No claims about treating illness.

%s

%s`, req.ProductName, req.Tone, formatDirectives(req.ContentFormat), videoGuidelines())

	return Prompt{System: system, User: user}
}

func buildUniversalVideoScript(req core.GenerationRequest) Prompt {
	system := "You are a content creator who writes short-form video scripts that convert. You open " +
		"with a hook, demonstrate the product honestly, and close with a clear call to action."

	user := fmt.Sprintf(`Write a 30-45 second video script promoting "%s" for the %s niche in a %s tone.

**SCRIPT STRUCTURE:**
1. HOOK (0-3s): A problem or curiosity gap your audience recognizes
2. DEMONSTRATION (3-25s): The product in use - concrete, visual, specific
3. BENEFIT (25-40s): What changes for the buyer, stated plainly
4. CTA (40-45s): Tell viewers where the link is

%s

%s`, req.ProductName, req.Niche, req.Tone, formatDirectives(req.ContentFormat), videoGuidelines())

	return Prompt{System: system, User: user}
}

// videoGuidelines is the shared writing-guidelines tail for every video
// script builder. Compose splices the viral-pattern block in right before it.
func videoGuidelines() string {
	return guidelinesHeader + `
- Write spoken words only - no camera directions, no [brackets]
- First person, present tense
- One idea per sentence; this will be read aloud
- Do not mention that you are an AI or that this is sponsored (the caption handles disclosure)`
}
