package store

import (
	"testing"
	"time"

	"promocast/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleJob() *core.ScheduledJob {
	return &core.ScheduledJob{
		ID:             "job-1",
		JobName:        "morning run",
		CronExpression: "0 9 * * *",
		Timezone:       "America/New_York",
		Niches:         []string{"beauty", "tech"},
		Tones:          []string{"enthusiastic", "casual"},
		Templates:      []core.TemplateType{core.TemplateVideoScript, core.TemplateComparison},
		Platforms:      []string{"tiktok", "instagram"},
		AIModel:        "gemini-2.5-flash-preview-05-20",
		ContentFormat:  core.FormatStandard,
		AffiliateID:    "promo-20",
		IsActive:       true,
	}
}

func TestJobRoundTrip(t *testing.T) {
	st := newTestStore(t)
	job := sampleJob()

	if err := st.CreateJob(job); err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	got, err := st.GetJob(job.ID)
	if err != nil {
		t.Fatalf("GetJob failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetJob returned nil for an existing job")
	}

	if got.JobName != job.JobName || got.CronExpression != job.CronExpression || got.Timezone != job.Timezone {
		t.Errorf("scalar fields mismatch: %+v", got)
	}
	if len(got.Niches) != 2 || got.Niches[0] != "beauty" {
		t.Errorf("niches mismatch: %v", got.Niches)
	}
	if len(got.Templates) != 2 || got.Templates[1] != core.TemplateComparison {
		t.Errorf("templates mismatch: %v", got.Templates)
	}
	if !got.IsActive {
		t.Error("IsActive not persisted")
	}
	if got.LastRun != nil {
		t.Error("LastRun should be nil for a never-run job")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}
}

func TestGetJobMissing(t *testing.T) {
	st := newTestStore(t)

	got, err := st.GetJob("missing")
	if err != nil {
		t.Fatalf("GetJob failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a missing job, got %+v", got)
	}
}

func TestUpdateJobPersistsTickState(t *testing.T) {
	st := newTestStore(t)
	job := sampleJob()
	if err := st.CreateJob(job); err != nil {
		t.Fatal(err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	job.LastRun = &now
	job.ConsecutiveFailures = 3
	job.LastError = "beauty: model unavailable"
	job.IsActive = false

	if err := st.UpdateJob(job); err != nil {
		t.Fatalf("UpdateJob failed: %v", err)
	}

	got, err := st.GetJob(job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ConsecutiveFailures != 3 {
		t.Errorf("failures not persisted: %d", got.ConsecutiveFailures)
	}
	if got.LastError != "beauty: model unavailable" {
		t.Errorf("LastError not persisted: %q", got.LastError)
	}
	if got.IsActive {
		t.Error("deactivation not persisted")
	}
	if got.LastRun == nil || !got.LastRun.Equal(now) {
		t.Errorf("LastRun not persisted: %v", got.LastRun)
	}
}

func TestListAndDeleteJobs(t *testing.T) {
	st := newTestStore(t)
	first := sampleJob()
	second := sampleJob()
	second.ID = "job-2"
	second.JobName = "evening run"

	if err := st.CreateJob(first); err != nil {
		t.Fatal(err)
	}
	if err := st.CreateJob(second); err != nil {
		t.Fatal(err)
	}

	jobs, err := st.ListJobs()
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	if err := st.DeleteJob(first.ID); err != nil {
		t.Fatalf("DeleteJob failed: %v", err)
	}
	jobs, err = st.ListJobs()
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 || jobs[0].ID != second.ID {
		t.Errorf("unexpected jobs after delete: %+v", jobs)
	}
}

func TestSaveGeneratedContent(t *testing.T) {
	st := newTestStore(t)

	req := core.GenerationRequest{
		ProductName:   "Glow Serum",
		Niche:         "beauty",
		TemplateType:  core.TemplateVideoScript,
		Tone:          "enthusiastic",
		ContentFormat: core.FormatStandard,
	}
	content := &core.GeneratedContent{
		ID:     "content-1",
		Script: "A script.",
		CaptionsByPlatform: map[string]string{
			"tiktok": "caption",
		},
		AffiliateLink: "https://www.amazon.com/s?k=Glow+Serum",
		Metadata:      core.Metadata{GeneratedAt: time.Now().UTC()},
	}

	id, err := st.SaveGeneratedContent(content, req, "job-1")
	if err != nil {
		t.Fatalf("SaveGeneratedContent failed: %v", err)
	}
	if id != content.ID {
		t.Errorf("unexpected returned id: %q", id)
	}

	// Interactive requests save with no job id.
	if _, err := st.SaveGeneratedContent(content, req, ""); err != nil {
		t.Errorf("save without job id failed: %v", err)
	}
}

func TestTrendingProducts(t *testing.T) {
	st := newTestStore(t)

	first, err := st.AddProduct("Glow Serum", "beauty", "manual")
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	if first.ID == "" {
		t.Error("product ID not assigned")
	}
	if _, err := st.AddProduct("Smart Mug", "tech", "manual"); err != nil {
		t.Fatal(err)
	}

	beauty, err := st.ListTrendingProducts("beauty")
	if err != nil {
		t.Fatalf("ListTrendingProducts failed: %v", err)
	}
	if len(beauty) != 1 || beauty[0].Title != "Glow Serum" {
		t.Errorf("unexpected beauty products: %+v", beauty)
	}

	// A niche with no products returns an empty list, not an error.
	empty, err := st.ListTrendingProducts("gardening")
	if err != nil {
		t.Fatalf("ListTrendingProducts failed for empty niche: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no products, got %+v", empty)
	}
}
