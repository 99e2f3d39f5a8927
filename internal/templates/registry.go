// Package templates holds the prompt-builder registry. Builders are pure
// functions from a generation request to a system/user prompt pair, keyed by
// (template type, niche) with a "universal" fallback per template type.
//
// Niches share most of their prompt structure: comparison, routine-kit,
// affiliate-email, SEO-blog and caption templates are niche-agnostic and
// register only a universal builder. Short-form video scripts are the
// exception: beauty, fitness, tech and the rest differ materially in
// structure, vocabulary and claims patterns, so each gets a bespoke builder.
package templates

import (
	"errors"
	"fmt"

	"promocast/internal/core"
)

var (
	// ErrUnknownTemplateType indicates the template type has no registry entry at all.
	ErrUnknownTemplateType = errors.New("unknown template type")
	// ErrNoGeneratorForNiche indicates neither a niche-specific nor a universal
	// builder exists for the template type.
	ErrNoGeneratorForNiche = errors.New("no generator for niche")
)

// Prompt is a composed system/user prompt pair ready for the completion client.
type Prompt struct {
	System string
	User   string
}

// Builder constructs the prompt pair for a product-centric generation request.
type Builder func(core.GenerationRequest) Prompt

// ViralRequest is the input to the topic-only viral template family.
type ViralRequest struct {
	Topic         string
	Niche         string
	Tone          string
	ContentFormat core.ContentFormat
}

// ViralBuilder constructs the prompt pair for a topic-only viral request.
type ViralBuilder func(ViralRequest) Prompt

var productRegistry = map[core.TemplateType]map[string]Builder{
	core.TemplateVideoScript: {
		"beauty":           buildBeautyVideoScript,
		"tech":             buildTechVideoScript,
		"fitness":          buildFitnessVideoScript,
		"fashion":          buildFashionVideoScript,
		"food":             buildFoodVideoScript,
		"travel":           buildTravelVideoScript,
		"pets":             buildPetsVideoScript,
		core.UniversalNiche: buildUniversalVideoScript,
	},
	core.TemplateComparison: {
		core.UniversalNiche: buildComparison,
	},
	core.TemplateRoutineKit: {
		core.UniversalNiche: buildRoutineKit,
	},
	core.TemplateCaption: {
		core.UniversalNiche: buildInfluencerCaption,
	},
	core.TemplateAffiliateEmail: {
		core.UniversalNiche: buildAffiliateEmail,
	},
	core.TemplateSEOBlog: {
		core.UniversalNiche: buildSEOBlog,
	},
}

var viralRegistry = map[core.ViralTemplateType]map[string]ViralBuilder{
	core.ViralHooks:       {core.UniversalNiche: buildViralHooks},
	core.ViralShortScript: {core.UniversalNiche: buildViralShortScript},
	core.ViralStorytime:   {core.UniversalNiche: buildViralStorytime},
	core.ViralDuet:        {core.UniversalNiche: buildViralDuet},
	core.ViralListicle:    {core.UniversalNiche: buildViralListicle},
	core.ViralChallenge:   {core.UniversalNiche: buildViralChallenge},
	core.ViralCaptionTags: {core.UniversalNiche: buildViralCaptionTags},
}

// Resolve returns the prompt builder for a (template type, niche) pair. When
// no niche-specific builder exists the universal builder for that template
// type is returned instead.
func Resolve(templateType core.TemplateType, niche string) (Builder, error) {
	generators, ok := productRegistry[templateType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplateType, templateType)
	}

	if builder, ok := generators[niche]; ok {
		return builder, nil
	}
	if builder, ok := generators[core.UniversalNiche]; ok {
		return builder, nil
	}

	return nil, fmt.Errorf("%w: template %s, niche %s", ErrNoGeneratorForNiche, templateType, niche)
}

// ResolveViral returns the builder for a viral template type. The viral family
// registers universal builders only, so every niche takes the fallback path.
func ResolveViral(templateType core.ViralTemplateType, niche string) (ViralBuilder, error) {
	generators, ok := viralRegistry[templateType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplateType, templateType)
	}

	if builder, ok := generators[niche]; ok {
		return builder, nil
	}
	if builder, ok := generators[core.UniversalNiche]; ok {
		return builder, nil
	}

	return nil, fmt.Errorf("%w: viral template %s, niche %s", ErrNoGeneratorForNiche, templateType, niche)
}

// TemplateTypes returns all registered product template types.
func TemplateTypes() []core.TemplateType {
	return []core.TemplateType{
		core.TemplateVideoScript,
		core.TemplateComparison,
		core.TemplateRoutineKit,
		core.TemplateCaption,
		core.TemplateAffiliateEmail,
		core.TemplateSEOBlog,
	}
}

// ViralTemplateTypes returns all registered viral template types.
func ViralTemplateTypes() []core.ViralTemplateType {
	return []core.ViralTemplateType{
		core.ViralHooks,
		core.ViralShortScript,
		core.ViralStorytime,
		core.ViralDuet,
		core.ViralListicle,
		core.ViralChallenge,
		core.ViralCaptionTags,
	}
}
