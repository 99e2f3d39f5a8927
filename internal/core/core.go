package core

import "time"

// ContentFormat controls the overall writing style of generated content.
type ContentFormat string

const (
	// FormatStandard produces conversational marketing copy with emoji and energy.
	FormatStandard ContentFormat = "standard"
	// FormatSpartan produces plain, direct copy: no emoji, no filler, lower temperature.
	FormatSpartan ContentFormat = "spartan"
)

// TemplateType identifies the structural content format being requested.
type TemplateType string

const (
	TemplateVideoScript    TemplateType = "video_script"    // short-form video script, niche-specific
	TemplateComparison     TemplateType = "comparison"      // product comparison
	TemplateRoutineKit     TemplateType = "routine_kit"     // routine/kit guide
	TemplateCaption        TemplateType = "caption"         // influencer-style caption
	TemplateAffiliateEmail TemplateType = "affiliate_email" // affiliate marketing email
	TemplateSEOBlog        TemplateType = "seo_blog"        // long-form SEO blog post
)

// ViralTemplateType identifies the topic-only "viral" content formats. These
// operate without a product name and are keyed by a topic string instead.
type ViralTemplateType string

const (
	ViralHooks       ViralTemplateType = "hooks"
	ViralShortScript ViralTemplateType = "short_script"
	ViralStorytime   ViralTemplateType = "storytime"
	ViralDuet        ViralTemplateType = "duet"
	ViralListicle    ViralTemplateType = "listicle"
	ViralChallenge   ViralTemplateType = "challenge"
	ViralCaptionTags ViralTemplateType = "caption_hashtags"
)

// UniversalNiche is the fallback key used when no niche-specific prompt builder
// is registered for a template type.
const UniversalNiche = "universal"

// ViralTemplate carries proven-pattern metadata injected into a prompt to bias
// generation toward a previously successful pattern.
type ViralTemplate struct {
	Hook       string   `json:"hook"`       // The proven opening hook line
	Format     string   `json:"format"`     // Description of the winning format
	Structure  string   `json:"structure"`  // Three-part structure description
	Hashtags   []string `json:"hashtags"`   // Hashtags associated with the pattern
	Confidence float64  `json:"confidence"` // Confidence percentage (0-100)
}

// GenerationRequest is the immutable input to one content generation cycle.
type GenerationRequest struct {
	ProductName   string         `json:"product_name"`             // Product the content is about
	Niche         string         `json:"niche"`                    // Content vertical (beauty, tech, fitness, ...)
	TemplateType  TemplateType   `json:"template_type"`            // Structural format requested
	Tone          string         `json:"tone"`                     // Writing tone (enthusiastic, professional, casual, ...)
	Platforms     []string       `json:"platforms"`                // Target platforms for captions
	ContentFormat ContentFormat  `json:"content_format"`           // standard or spartan
	AIModel       string         `json:"ai_model"`                 // Model identifier passed to the completion client
	AffiliateID   string         `json:"affiliate_id,omitempty"`   // Amazon Associates tag
	ViralTemplate *ViralTemplate `json:"viral_template,omitempty"` // Optional proven-pattern enhancement
}

// Metadata records how a piece of content was generated.
type Metadata struct {
	AIModel          string        `json:"ai_model"`
	ContentFormat    ContentFormat `json:"content_format"`
	TemplateType     TemplateType  `json:"template_type"`
	Tone             string        `json:"tone"`
	Niche            string        `json:"niche"`
	Platforms        []string      `json:"platforms"`
	GeneratedAt      time.Time     `json:"generated_at"`
	ApproxTokenCount int           `json:"approx_token_count"`
}

// GeneratedContent is the full output of one generation cycle. It is created
// once per GenerationRequest and is immutable after creation.
type GeneratedContent struct {
	ID                 string            `json:"id"`
	Script             string            `json:"script"`               // Main content body
	ProductDescription string            `json:"product_description"`  // ~50 word description derived from the script
	DemoScript         string            `json:"demo_script"`          // First sentences of the script, for demo voiceover
	CaptionsByPlatform map[string]string `json:"captions_by_platform"` // Platform name -> trimmed caption
	AffiliateLink      string            `json:"affiliate_link"`
	Metadata           Metadata          `json:"metadata"`
}

// Product represents a trending product candidate for a niche.
type Product struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Niche     string    `json:"niche"`
	Source    string    `json:"source"` // Where the product was discovered (manual, import, ...)
	CreatedAt time.Time `json:"created_at"`
}

// ScheduledJob is a recurring generation job driven by a cron expression.
// The scheduler mutates LastRun, NextRun, ConsecutiveFailures, LastError and
// IsActive on every tick; everything else changes only through explicit updates.
type ScheduledJob struct {
	ID                  string         `json:"id"`
	JobName             string         `json:"job_name"`
	CronExpression      string         `json:"cron_expression"` // Standard 5-field cron syntax
	Timezone            string         `json:"timezone"`        // IANA timezone name
	Niches              []string       `json:"niches"`
	Tones               []string       `json:"tones"`
	Templates           []TemplateType `json:"templates"`
	Platforms           []string       `json:"platforms"`
	AIModel             string         `json:"ai_model"`
	ContentFormat       ContentFormat  `json:"content_format"`
	AffiliateID         string         `json:"affiliate_id,omitempty"`
	IsActive            bool           `json:"is_active"`
	ConsecutiveFailures int            `json:"consecutive_failures"`
	LastError           string         `json:"last_error,omitempty"`
	LastRun             *time.Time     `json:"last_run,omitempty"`
	NextRun             *time.Time     `json:"next_run,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}
