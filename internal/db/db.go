// Package db provides PostgreSQL persistence for scan history.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-scanner/internal/matching"
)

const scansSchema = `
CREATE TABLE IF NOT EXISTS scans (
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	match_score DOUBLE PRECISION NOT NULL,
	simple_match_ratio DOUBLE PRECISION NOT NULL,
	total_job_keywords INTEGER NOT NULL,
	total_matched INTEGER NOT NULL,
	resume_word_count INTEGER NOT NULL
)`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and ensures the scans table exists
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, scansSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create scans table: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// RecordScan stores a summary of one scan run and returns its ID
func (db *DB) RecordScan(ctx context.Context, result *matching.Result, resumeWordCount int) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO scans (id, match_score, simple_match_ratio, total_job_keywords, total_matched, resume_word_count)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, result.OverallScore, result.SimpleMatchRatio,
		result.TotalJobKeywords, result.TotalMatched, resumeWordCount,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record scan: %w", err)
	}
	return id, nil
}

// ScanRecord is one stored scan summary
type ScanRecord struct {
	ID               uuid.UUID `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	MatchScore       float64   `json:"match_score"`
	SimpleMatchRatio float64   `json:"simple_match_ratio"`
	TotalJobKeywords int       `json:"total_job_keywords"`
	TotalMatched     int       `json:"total_matched"`
	ResumeWordCount  int       `json:"resume_word_count"`
}

// GetScan retrieves one scan by ID, or nil when it does not exist
func (db *DB) GetScan(ctx context.Context, id uuid.UUID) (*ScanRecord, error) {
	var rec ScanRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, created_at, match_score, simple_match_ratio, total_job_keywords, total_matched, resume_word_count
		 FROM scans WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.MatchScore, &rec.SimpleMatchRatio,
		&rec.TotalJobKeywords, &rec.TotalMatched, &rec.ResumeWordCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	return &rec, nil
}

// ListScans retrieves recent scans, newest first
func (db *DB) ListScans(ctx context.Context, limit int) ([]ScanRecord, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, created_at, match_score, simple_match_ratio, total_job_keywords, total_matched, resume_word_count
		 FROM scans ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var rec ScanRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.MatchScore, &rec.SimpleMatchRatio,
			&rec.TotalJobKeywords, &rec.TotalMatched, &rec.ResumeWordCount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Stats summarizes stored scan history
type Stats struct {
	TotalScans   int     `json:"total_scans"`
	AverageScore float64 `json:"average_score"`
}

// GetStats computes aggregate statistics over all stored scans
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(match_score), 0) FROM scans`,
	).Scan(&stats.TotalScans, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}
