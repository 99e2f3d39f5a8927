package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"promocast/internal/core"
)

func sampleContent() (*core.GeneratedContent, core.GenerationRequest) {
	req := core.GenerationRequest{
		ProductName:   "Glow Serum",
		Niche:         "beauty",
		TemplateType:  core.TemplateVideoScript,
		Tone:          "enthusiastic",
		Platforms:     []string{"tiktok", "instagram"},
		ContentFormat: core.FormatStandard,
		AffiliateID:   "promo-20",
	}
	content := &core.GeneratedContent{
		ID:     "content-1",
		Script: "A script.",
		CaptionsByPlatform: map[string]string{
			"tiktok":    "tiktok caption",
			"instagram": "instagram caption",
		},
		AffiliateLink: "https://www.amazon.com/s?k=Glow+Serum&tag=promo-20",
		Metadata: core.Metadata{
			GeneratedAt: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	return content, req
}

func TestBuildPayload(t *testing.T) {
	content, req := sampleContent()

	p := BuildPayload(content, req, "manual_generation")
	if p.EventType != "manual_generation" {
		t.Errorf("unexpected event type: %q", p.EventType)
	}
	if p.Timestamp != "2026-04-01T12:00:00Z" {
		t.Errorf("unexpected timestamp: %q", p.Timestamp)
	}
	if p.TikTokCaption != "tiktok caption" || p.InstagramCaption != "instagram caption" {
		t.Error("captions not mapped to their fields")
	}
	// Platforms without captions serialize as empty strings, not omitted.
	if p.YouTubeCaption != "" {
		t.Errorf("unexpected youtube caption: %q", p.YouTubeCaption)
	}
	if p.PostType != "product_promo" {
		t.Errorf("unexpected post type: %q", p.PostType)
	}
	if p.TopRatedStyleUsed {
		t.Error("top_rated_style_used set without a viral template")
	}

	req.ViralTemplate = &core.ViralTemplate{Hook: "watch this", Format: "before/after"}
	p = BuildPayload(content, req, "manual_generation")
	if !p.TopRatedStyleUsed || p.ViralHook != "watch this" || p.ViralFormat != "before/after" {
		t.Errorf("viral fields not mapped: %+v", p)
	}
}

func TestDeliverSuccess(t *testing.T) {
	var received Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, time.Second, time.Millisecond)
	content, req := sampleContent()

	if ok := d.Deliver(content, req, "manual_generation"); !ok {
		t.Fatal("delivery reported failure against a healthy endpoint")
	}
	if received.Product != "Glow Serum" {
		t.Errorf("endpoint received wrong payload: %+v", received)
	}

	stats := d.Stats()
	if stats.TotalSent != 1 || stats.SuccessCount != 1 || stats.FailureCount != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.SuccessRate != 1.0 {
		t.Errorf("unexpected success rate: %v", stats.SuccessRate)
	}
}

func TestDeliverNon2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, time.Second, time.Millisecond)
	content, req := sampleContent()

	if ok := d.Deliver(content, req, "manual_generation"); ok {
		t.Fatal("delivery reported success for a 429 response")
	}

	stats := d.Stats()
	if stats.FailureCount != 1 || stats.SuccessCount != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastError == "" {
		t.Error("LastError not recorded for a failed delivery")
	}
}

func TestDeliverTransportErrorIsFailure(t *testing.T) {
	// Closed server guarantees a connection error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	d := NewDispatcher(srv.URL, time.Second, time.Millisecond)
	content, req := sampleContent()

	if ok := d.Deliver(content, req, "manual_generation"); ok {
		t.Fatal("delivery reported success for an unreachable endpoint")
	}
}

func TestStatsTrackMixedOutcomes(t *testing.T) {
	var fail bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, time.Second, time.Millisecond)
	content, req := sampleContent()

	d.Deliver(content, req, "a")
	fail = true
	d.Deliver(content, req, "b")
	fail = false
	d.Deliver(content, req, "c")

	stats := d.Stats()
	if stats.TotalSent != 3 || stats.SuccessCount != 2 || stats.FailureCount != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.SuccessRate < 0.66 || stats.SuccessRate > 0.67 {
		t.Errorf("unexpected success rate: %v", stats.SuccessRate)
	}
	// A success after a failure clears the recorded error.
	if stats.LastError != "" {
		t.Errorf("LastError not cleared after success: %q", stats.LastError)
	}
}

func TestDeliverBatchSequentialWithDelay(t *testing.T) {
	var timestamps []time.Time
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timestamps = append(timestamps, time.Now())
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	delay := 30 * time.Millisecond
	d := NewDispatcher(srv.URL, time.Second, delay)

	content, req := sampleContent()
	items := []*core.GeneratedContent{content, content, content}
	requests := []core.GenerationRequest{req, req, req}

	result := d.DeliverBatch(items, requests, "batch")
	if result.Success != 3 || result.Failed != 0 {
		t.Fatalf("unexpected batch result: %+v", result)
	}

	if len(timestamps) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(timestamps))
	}
	for i := 1; i < len(timestamps); i++ {
		if gap := timestamps[i].Sub(timestamps[i-1]); gap < delay {
			t.Errorf("items %d and %d delivered %v apart, want at least %v", i-1, i, gap, delay)
		}
	}
}

func TestDeliverBatchCountsFailures(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, time.Second, time.Millisecond)
	content, req := sampleContent()

	items := []*core.GeneratedContent{content, content, content}
	requests := []core.GenerationRequest{req, req, req}

	result := d.DeliverBatch(items, requests, "batch")
	if result.Success != 2 || result.Failed != 1 {
		t.Errorf("unexpected batch result: %+v", result)
	}
	// A failed item does not stop the rest of the batch.
	if calls != 3 {
		t.Errorf("expected 3 delivery attempts, got %d", calls)
	}
}

func TestNewDispatcherDefaults(t *testing.T) {
	d := NewDispatcher("http://example.invalid", 0, 0)
	if d.httpClient.Timeout != DefaultTimeout {
		t.Errorf("zero timeout not defaulted: %v", d.httpClient.Timeout)
	}
	if d.batchDelay != DefaultBatchDelay {
		t.Errorf("zero batch delay not defaulted: %v", d.batchDelay)
	}
}
