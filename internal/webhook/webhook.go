// Package webhook relays generated content to an external automation endpoint
// and keeps process-wide delivery statistics. The statistics are deliberately
// ephemeral: they reset on process restart and are never persisted.
package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"promocast/internal/core"
	"promocast/internal/logger"
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 10 * time.Second

// DefaultBatchDelay is the inter-item pacing for batch delivery when no delay
// is configured. Sequential pacing is backpressure for a rate-limited
// receiver, not an oversight - do not parallelize deliveries.
const DefaultBatchDelay = 500 * time.Millisecond

// Payload is the flat wire structure POSTed to the endpoint, combining
// request fields, all platform captions and placeholder quality-score fields
// the downstream automation expects.
type Payload struct {
	EventType     string   `json:"event_type"`
	Timestamp     string   `json:"timestamp"`
	Niche         string   `json:"niche"`
	Product       string   `json:"product"`
	Tone          string   `json:"tone"`
	Template      string   `json:"template"`
	Platforms     []string `json:"platforms"`
	Model         string   `json:"model"`
	ContentFormat string   `json:"content_format"`
	AffiliateID   string   `json:"affiliate_id"`
	AffiliateLink string   `json:"affiliate_link"`
	Script        string   `json:"script"`

	TikTokCaption    string `json:"tiktok_caption"`
	InstagramCaption string `json:"instagram_caption"`
	YouTubeCaption   string `json:"youtube_caption"`
	TwitterCaption   string `json:"twitter_caption"`
	FacebookCaption  string `json:"facebook_caption"`

	PostType          string `json:"post_type"`
	ImageURL          string `json:"image_url"`
	TopRatedStyleUsed bool   `json:"top_rated_style_used"`
	ViralHook         string `json:"viral_hook,omitempty"`
	ViralFormat       string `json:"viral_format,omitempty"`

	// Placeholder quality scores; populated downstream once scoring exists.
	HookScore       float64 `json:"hook_score"`
	ClarityScore    float64 `json:"clarity_score"`
	CTAScore        float64 `json:"cta_score"`
	OverallScore    float64 `json:"overall_score"`
	EngagementScore float64 `json:"engagement_score"`
}

// Stats holds the running delivery counters.
type Stats struct {
	TotalSent    int       `json:"total_sent"`
	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	SuccessRate  float64   `json:"success_rate"`
	LastSent     time.Time `json:"last_sent"`
	LastError    string    `json:"last_error,omitempty"`
}

// BatchResult aggregates the outcome of a batch delivery.
type BatchResult struct {
	Success int
	Failed  int
}

// Dispatcher POSTs payloads to a single configured endpoint.
type Dispatcher struct {
	url        string
	batchDelay time.Duration
	httpClient *http.Client

	mu    sync.Mutex
	stats Stats
}

// NewDispatcher creates a dispatcher for the given endpoint URL. A zero
// timeout or batch delay falls back to the package defaults.
func NewDispatcher(url string, timeout, batchDelay time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if batchDelay <= 0 {
		batchDelay = DefaultBatchDelay
	}
	return &Dispatcher{
		url:        url,
		batchDelay: batchDelay,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BuildPayload flattens generated content plus its request into the wire
// structure.
func BuildPayload(content *core.GeneratedContent, req core.GenerationRequest, eventType string) Payload {
	p := Payload{
		EventType:         eventType,
		Timestamp:         content.Metadata.GeneratedAt.Format(time.RFC3339),
		Niche:             req.Niche,
		Product:           req.ProductName,
		Tone:              req.Tone,
		Template:          string(req.TemplateType),
		Platforms:         req.Platforms,
		Model:             req.AIModel,
		ContentFormat:     string(req.ContentFormat),
		AffiliateID:       req.AffiliateID,
		AffiliateLink:     content.AffiliateLink,
		Script:            content.Script,
		TikTokCaption:     content.CaptionsByPlatform["tiktok"],
		InstagramCaption:  content.CaptionsByPlatform["instagram"],
		YouTubeCaption:    content.CaptionsByPlatform["youtube"],
		TwitterCaption:    content.CaptionsByPlatform["twitter"],
		FacebookCaption:   content.CaptionsByPlatform["facebook"],
		PostType:          "product_promo",
		ImageURL:          "https://placehold.co/1080x1080",
		TopRatedStyleUsed: req.ViralTemplate != nil,
	}
	if req.ViralTemplate != nil {
		p.ViralHook = req.ViralTemplate.Hook
		p.ViralFormat = req.ViralTemplate.Format
	}
	return p
}

// Deliver POSTs one payload. Failure (non-2xx or transport error) is reported
// to the caller as false and recorded in the stats; it is never raised as an
// error because the caller decides how to interpret repeated failure.
func (d *Dispatcher) Deliver(content *core.GeneratedContent, req core.GenerationRequest, eventType string) bool {
	payload := BuildPayload(content, req, eventType)

	err := d.post(payload)
	d.record(err)
	if err != nil {
		logger.Error("webhook delivery failed", err, "product", req.ProductName, "event", eventType)
		return false
	}

	logger.Info("webhook delivered", "product", req.ProductName, "event", eventType)
	return true
}

// DeliverBatch delivers items sequentially with a fixed delay between calls
// to avoid bursting the receiving endpoint.
func (d *Dispatcher) DeliverBatch(items []*core.GeneratedContent, requests []core.GenerationRequest, eventType string) BatchResult {
	var result BatchResult
	for i, item := range items {
		if i > 0 {
			time.Sleep(d.batchDelay)
		}
		if d.Deliver(item, requests[i], eventType) {
			result.Success++
		} else {
			result.Failed++
		}
	}
	return result
}

// Stats returns a snapshot of the running delivery counters.
func (d *Dispatcher) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *Dispatcher) post(payload Payload) error {
	if d.url == "" {
		return fmt.Errorf("webhook URL not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	resp, err := d.httpClient.Post(d.url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

func (d *Dispatcher) record(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stats.TotalSent++
	d.stats.LastSent = time.Now().UTC()
	if err != nil {
		d.stats.FailureCount++
		d.stats.LastError = err.Error()
	} else {
		d.stats.SuccessCount++
		d.stats.LastError = ""
	}
	d.stats.SuccessRate = float64(d.stats.SuccessCount) / float64(d.stats.TotalSent)
}
