// Package scheduler drives recurring content generation: each active job owns
// one cron timer registration, every tick runs the full
// generate-persist-deliver pipeline per configured niche, and a job disables
// itself after too many consecutive failing ticks.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"promocast/internal/core"
	"promocast/internal/logger"
	"promocast/internal/webhook"
)

// ErrInvalidCronExpression indicates a cron expression failed validation at
// job create or update time.
var ErrInvalidCronExpression = errors.New("invalid cron expression")

// ErrJobNotFound indicates the referenced job does not exist.
var ErrJobNotFound = errors.New("job not found")

// DefaultFailureThreshold is the number of consecutive failing ticks after
// which a job disables itself. No backoff or jitter on top: the job interval
// itself (hourly/daily) already provides natural backoff.
const DefaultFailureThreshold = 5

// ContentGenerator produces content for one request.
type ContentGenerator interface {
	Generate(ctx context.Context, req core.GenerationRequest) (*core.GeneratedContent, error)
}

// ProductSource lists trending product candidates for a niche.
type ProductSource interface {
	ListTrendingProducts(niche string) ([]core.Product, error)
}

// JobStore persists jobs and generation results.
type JobStore interface {
	CreateJob(job *core.ScheduledJob) error
	UpdateJob(job *core.ScheduledJob) error
	GetJob(id string) (*core.ScheduledJob, error)
	ListJobs() ([]*core.ScheduledJob, error)
	DeleteJob(id string) error
	SaveGeneratedContent(content *core.GeneratedContent, req core.GenerationRequest, jobID string) (string, error)
}

// Deliverer relays finished content to the external endpoint. A tick's
// results are delivered together as one paced batch.
type Deliverer interface {
	DeliverBatch(items []*core.GeneratedContent, requests []core.GenerationRequest, eventType string) webhook.BatchResult
}

// Options tunes scheduler behavior.
type Options struct {
	FailureThreshold   int  // consecutive failures before auto-disable (default 5)
	EmptyTickIsSuccess bool // whether a tick that generates nothing counts as success
	Timezone           string
}

// Service owns the cron runner and the jobID -> timer-entry registry. All
// registry mutations go through the service's API under a single mutex so the
// persisted IsActive flag and the live timer set never diverge: an active job
// has exactly one entry, an inactive job has none.
type Service struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]cron.EntryID

	generator ContentGenerator
	products  ProductSource
	store     JobStore
	deliverer Deliverer

	failureThreshold   int
	emptyTickIsSuccess bool

	// Overlapping jobs tick concurrently, so draws from the shared rng are
	// serialized through rngMu.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates the scheduler service with constructor-injected collaborators.
func New(generator ContentGenerator, products ProductSource, store JobStore, deliverer Deliverer, opts Options) *Service {
	loc := time.UTC
	if opts.Timezone != "" {
		if parsed, err := time.LoadLocation(opts.Timezone); err == nil {
			loc = parsed
		}
	}

	threshold := opts.FailureThreshold
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}

	return &Service{
		cron:               cron.New(cron.WithLocation(loc)),
		entries:            make(map[string]cron.EntryID),
		generator:          generator,
		products:           products,
		store:              store,
		deliverer:          deliverer,
		failureThreshold:   threshold,
		emptyTickIsSuccess: opts.EmptyTickIsSuccess,
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ValidateCron checks a standard 5-field cron expression, optionally scoped
// to an IANA timezone. Invalid expressions are rejected synchronously, before
// any job is created or updated.
func ValidateCron(expr, timezone string) error {
	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidCronExpression, timezone)
		}
	}
	if _, err := cron.ParseStandard(expr); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidCronExpression, expr, err)
	}
	return nil
}

// Start registers timers for all active persisted jobs and starts the runner.
func (s *Service) Start() error {
	jobs, err := s.store.ListJobs()
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	s.mu.Lock()
	for _, job := range jobs {
		if !job.IsActive {
			continue
		}
		if err := s.registerLocked(job); err != nil {
			logger.Error("failed to register job at startup", err, "job", job.JobName)
		}
	}
	s.mu.Unlock()

	s.cron.Start()
	logger.Info("scheduler started", "jobs", len(s.entries))
	return nil
}

// Stop stops the cron runner. In-flight ticks run to completion; stop only
// prevents future ticks.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("scheduler stopped")
}

// CreateJob validates, persists and (when active) registers a new job.
func (s *Service) CreateJob(job *core.ScheduledJob) error {
	if err := ValidateCron(job.CronExpression, job.Timezone); err != nil {
		return err
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	if err := s.store.CreateJob(job); err != nil {
		return err
	}

	if job.IsActive {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.registerLocked(job); err != nil {
			return err
		}
	}

	logger.Info("job created", "job", job.JobName, "cron", job.CronExpression, "active", job.IsActive)
	return nil
}

// StopJob deregisters the timer and persists isActive=false, regardless of
// the current failure count (manual override).
func (s *Service) StopJob(id string) error {
	job, err := s.store.GetJob(id)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	s.mu.Lock()
	s.deregisterLocked(id)
	s.mu.Unlock()

	job.IsActive = false
	job.NextRun = nil
	return s.store.UpdateJob(job)
}

// ResumeJob reactivates a stopped or auto-disabled job and resets its failure
// count.
func (s *Service) ResumeJob(id string) error {
	job, err := s.store.GetJob(id)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	job.IsActive = true
	job.ConsecutiveFailures = 0
	job.LastError = ""
	if err := s.store.UpdateJob(job); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registerLocked(job)
}

// UpdateJob persists field changes; when the cron expression or timezone
// changed and the job is active, the timer is re-registered (stop+start)
// under the same lock so no double registration can slip in between.
func (s *Service) UpdateJob(job *core.ScheduledJob) error {
	if err := ValidateCron(job.CronExpression, job.Timezone); err != nil {
		return err
	}

	existing, err := s.store.GetJob(job.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", ErrJobNotFound, job.ID)
	}

	if err := s.store.UpdateJob(job); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.deregisterLocked(job.ID)
	if job.IsActive {
		return s.registerLocked(job)
	}
	return nil
}

// DeleteJob deregisters the timer and removes the job.
func (s *Service) DeleteJob(id string) error {
	s.mu.Lock()
	s.deregisterLocked(id)
	s.mu.Unlock()
	return s.store.DeleteJob(id)
}

// TriggerJob runs the tick logic immediately, bypassing the timer.
func (s *Service) TriggerJob(id string) error {
	job, err := s.store.GetJob(id)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	s.runTick(id)
	return nil
}

// registerLocked adds a cron entry for the job. Caller holds s.mu. Any stale
// entry for the job id is removed first, so a job never holds two timers.
func (s *Service) registerLocked(job *core.ScheduledJob) error {
	s.deregisterLocked(job.ID)

	spec := job.CronExpression
	if job.Timezone != "" {
		spec = "CRON_TZ=" + job.Timezone + " " + spec
	}

	jobID := job.ID
	entryID, err := s.cron.AddFunc(spec, func() {
		s.runTick(jobID)
	})
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidCronExpression, job.CronExpression, err)
	}

	s.entries[job.ID] = entryID

	if sched, err := cron.ParseStandard(job.CronExpression); err == nil {
		next := sched.Next(time.Now())
		job.NextRun = &next
	}

	return nil
}

// deregisterLocked removes the job's cron entry if one exists. Caller holds s.mu.
func (s *Service) deregisterLocked(id string) {
	if entryID, ok := s.entries[id]; ok {
		s.cron.Remove(entryID)
		delete(s.entries, id)
	}
}

// runTick executes one scheduled run: for each configured niche, pick a
// trending product at random, generate, persist and deliver. Per-niche errors
// are collected, never thrown; a tick with any failed niche counts as a
// failed tick. Niches with no product candidates are silently skipped - a
// tick that generates nothing is still a successful tick.
func (s *Service) runTick(jobID string) {
	job, err := s.store.GetJob(jobID)
	if err != nil || job == nil {
		logger.Error("tick aborted: job unavailable", err, "job_id", jobID)
		return
	}

	now := time.Now().UTC()
	job.LastRun = &now

	logger.Info("tick started", "job", job.JobName, "niches", len(job.Niches))

	var tickErrors []string
	var items []*core.GeneratedContent
	var requests []core.GenerationRequest

	for _, niche := range job.Niches {
		content, req, err := s.runNiche(job, niche)
		if err != nil {
			tickErrors = append(tickErrors, fmt.Sprintf("%s: %v", niche, err))
			logger.Error("niche failed", err, "job", job.JobName, "niche", niche)
			continue
		}
		if content != nil {
			items = append(items, content)
			requests = append(requests, req)
		}
	}
	generated := len(items)

	if len(tickErrors) == 0 && generated == 0 && !s.emptyTickIsSuccess {
		tickErrors = append(tickErrors, "no niche produced content")
	}

	// Delivery failure is observable in the dispatcher stats and logs; it is
	// reported per batch, not as an error, and does not fail the tick.
	if generated > 0 {
		result := s.deliverer.DeliverBatch(items, requests, "scheduled_generation")
		if result.Failed > 0 {
			logger.Warn("batch delivery incomplete", "job", job.JobName,
				"delivered", result.Success, "failed", result.Failed)
		}
	}

	if len(tickErrors) == 0 {
		job.ConsecutiveFailures = 0
		job.LastError = ""
	} else {
		job.ConsecutiveFailures++
		job.LastError = strings.Join(tickErrors, "; ")
		if job.ConsecutiveFailures >= s.failureThreshold {
			s.mu.Lock()
			s.deregisterLocked(job.ID)
			s.mu.Unlock()
			job.IsActive = false
			job.NextRun = nil
			logger.Warn("job auto-disabled after repeated failures",
				"job", job.JobName, "failures", job.ConsecutiveFailures)
		}
	}

	if err := s.store.UpdateJob(job); err != nil {
		logger.Error("failed to persist job state after tick", err, "job", job.JobName)
	}

	logger.Info("tick finished", "job", job.JobName, "generated", generated,
		"errors", len(tickErrors), "consecutive_failures", job.ConsecutiveFailures)
}

// runNiche generates and persists content for one niche within a tick,
// returning the result for batch delivery. A nil content with a nil error is
// a skipped niche: no product candidates is not a failure.
func (s *Service) runNiche(job *core.ScheduledJob, niche string) (*core.GeneratedContent, core.GenerationRequest, error) {
	candidates, err := s.products.ListTrendingProducts(niche)
	if err != nil {
		return nil, core.GenerationRequest{}, fmt.Errorf("trending lookup failed: %w", err)
	}
	if len(candidates) == 0 {
		logger.Debug("no trending products, skipping niche", "job", job.JobName, "niche", niche)
		return nil, core.GenerationRequest{}, nil
	}

	product := candidates[s.intn(len(candidates))]
	req := core.GenerationRequest{
		ProductName:   product.Title,
		Niche:         niche,
		TemplateType:  s.pickTemplate(job.Templates),
		Tone:          s.pickString(job.Tones),
		Platforms:     job.Platforms,
		ContentFormat: job.ContentFormat,
		AIModel:       job.AIModel,
		AffiliateID:   job.AffiliateID,
	}

	content, err := s.generator.Generate(context.Background(), req)
	if err != nil {
		return nil, core.GenerationRequest{}, err
	}

	if _, err := s.store.SaveGeneratedContent(content, req, job.ID); err != nil {
		return nil, core.GenerationRequest{}, err
	}

	return content, req, nil
}

func (s *Service) intn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

func (s *Service) pickString(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.intn(len(options))]
}

func (s *Service) pickTemplate(options []core.TemplateType) core.TemplateType {
	if len(options) == 0 {
		return core.TemplateVideoScript
	}
	return options[s.intn(len(options))]
}
