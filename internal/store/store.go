// Package store persists scheduled jobs, generated content and the trending
// product registry in a local SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"promocast/internal/core"
)

// Store represents the SQLite-backed persistence layer.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new store instance with a SQLite database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "promocast.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{
		db:   db,
		path: dbPath,
	}

	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// initialize creates the necessary tables
func (s *Store) initialize() error {
	jobsTable := `
	CREATE TABLE IF NOT EXISTS scheduled_jobs (
		id TEXT PRIMARY KEY,
		job_name TEXT,
		cron_expression TEXT,
		timezone TEXT,
		niches TEXT,
		tones TEXT,
		templates TEXT,
		platforms TEXT,
		ai_model TEXT,
		content_format TEXT,
		affiliate_id TEXT,
		is_active INTEGER,
		consecutive_failures INTEGER,
		last_error TEXT,
		last_run DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`

	contentTable := `
	CREATE TABLE IF NOT EXISTS generated_content (
		id TEXT PRIMARY KEY,
		job_id TEXT,
		product_name TEXT,
		niche TEXT,
		template_type TEXT,
		tone TEXT,
		content_format TEXT,
		ai_model TEXT,
		script TEXT,
		product_description TEXT,
		demo_script TEXT,
		captions TEXT,
		affiliate_link TEXT,
		generated_at DATETIME
	);`

	productsTable := `
	CREATE TABLE IF NOT EXISTS trending_products (
		id TEXT PRIMARY KEY,
		title TEXT,
		niche TEXT,
		source TEXT,
		created_at DATETIME
	);`

	tables := []string{jobsTable, contentTable, productsTable}
	for _, table := range tables {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGeneratedContent persists one generation result. jobID is empty for
// interactive (non-scheduled) requests.
func (s *Store) SaveGeneratedContent(content *core.GeneratedContent, req core.GenerationRequest, jobID string) (string, error) {
	captions, _ := json.Marshal(content.CaptionsByPlatform)

	query := `
	INSERT OR REPLACE INTO generated_content
	(id, job_id, product_name, niche, template_type, tone, content_format, ai_model,
	 script, product_description, demo_script, captions, affiliate_link, generated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		content.ID,
		jobID,
		req.ProductName,
		req.Niche,
		string(req.TemplateType),
		req.Tone,
		string(req.ContentFormat),
		req.AIModel,
		content.Script,
		content.ProductDescription,
		content.DemoScript,
		string(captions),
		content.AffiliateLink,
		content.Metadata.GeneratedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save generated content: %w", err)
	}

	return content.ID, nil
}

// CreateJob persists a new scheduled job.
func (s *Store) CreateJob(job *core.ScheduledJob) error {
	return s.writeJob(job, true)
}

// UpdateJob persists field changes on an existing job.
func (s *Store) UpdateJob(job *core.ScheduledJob) error {
	job.UpdatedAt = time.Now().UTC()
	return s.writeJob(job, false)
}

func (s *Store) writeJob(job *core.ScheduledJob, create bool) error {
	if create {
		now := time.Now().UTC()
		job.CreatedAt = now
		job.UpdatedAt = now
	}

	niches, _ := json.Marshal(job.Niches)
	tones, _ := json.Marshal(job.Tones)
	templates, _ := json.Marshal(job.Templates)
	platforms, _ := json.Marshal(job.Platforms)

	query := `
	INSERT OR REPLACE INTO scheduled_jobs
	(id, job_name, cron_expression, timezone, niches, tones, templates, platforms,
	 ai_model, content_format, affiliate_id, is_active, consecutive_failures,
	 last_error, last_run, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		job.ID,
		job.JobName,
		job.CronExpression,
		job.Timezone,
		string(niches),
		string(tones),
		string(templates),
		string(platforms),
		job.AIModel,
		string(job.ContentFormat),
		job.AffiliateID,
		job.IsActive,
		job.ConsecutiveFailures,
		job.LastError,
		job.LastRun,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to write job: %w", err)
	}

	return nil
}

// GetJob retrieves one scheduled job by id. Returns nil when not found.
func (s *Store) GetJob(id string) (*core.ScheduledJob, error) {
	row := s.db.QueryRow(`
	SELECT id, job_name, cron_expression, timezone, niches, tones, templates, platforms,
	       ai_model, content_format, affiliate_id, is_active, consecutive_failures,
	       last_error, last_run, created_at, updated_at
	FROM scheduled_jobs WHERE id = ?`, id)

	job, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}
	return job, nil
}

// ListJobs returns all scheduled jobs, newest first.
func (s *Store) ListJobs() ([]*core.ScheduledJob, error) {
	rows, err := s.db.Query(`
	SELECT id, job_name, cron_expression, timezone, niches, tones, templates, platforms,
	       ai_model, content_format, affiliate_id, is_active, consecutive_failures,
	       last_error, last_run, created_at, updated_at
	FROM scheduled_jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*core.ScheduledJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// DeleteJob removes a scheduled job.
func (s *Store) DeleteJob(id string) error {
	_, err := s.db.Exec("DELETE FROM scheduled_jobs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*core.ScheduledJob, error) {
	var job core.ScheduledJob
	var niches, tones, templates, platforms string
	var lastRun sql.NullTime

	err := row.Scan(
		&job.ID,
		&job.JobName,
		&job.CronExpression,
		&job.Timezone,
		&niches,
		&tones,
		&templates,
		&platforms,
		&job.AIModel,
		&job.ContentFormat,
		&job.AffiliateID,
		&job.IsActive,
		&job.ConsecutiveFailures,
		&job.LastError,
		&lastRun,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	json.Unmarshal([]byte(niches), &job.Niches)
	json.Unmarshal([]byte(tones), &job.Tones)
	json.Unmarshal([]byte(templates), &job.Templates)
	json.Unmarshal([]byte(platforms), &job.Platforms)
	if lastRun.Valid {
		t := lastRun.Time
		job.LastRun = &t
	}

	return &job, nil
}

// AddProduct registers a trending product candidate for a niche.
func (s *Store) AddProduct(title, niche, source string) (*core.Product, error) {
	product := &core.Product{
		ID:        uuid.NewString(),
		Title:     title,
		Niche:     niche,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(`
	INSERT INTO trending_products (id, title, niche, source, created_at)
	VALUES (?, ?, ?, ?, ?)`,
		product.ID, product.Title, product.Niche, product.Source, product.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	return product, nil
}

// ListTrendingProducts returns the trending product candidates for a niche,
// newest first.
func (s *Store) ListTrendingProducts(niche string) ([]core.Product, error) {
	rows, err := s.db.Query(`
	SELECT id, title, niche, source, created_at
	FROM trending_products WHERE niche = ? ORDER BY created_at DESC`, niche)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []core.Product
	for rows.Next() {
		var p core.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Niche, &p.Source, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
