package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/internal/storage/models"
	"github.com/prospect-intel/backend/pkg/logger"
)

type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))
	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		company_name TEXT NOT NULL,
		domain TEXT,
		score REAL NOT NULL,
		category TEXT NOT NULL,
		sector TEXT NOT NULL,
		confidence REAL NOT NULL,
		cached INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER,
		payload TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_analyses_company ON analyses(company_name);
	CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);

	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		analysis_id TEXT NOT NULL,
		company_name TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		FOREIGN KEY (analysis_id) REFERENCES analyses(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_reports_analysis ON reports(analysis_id);
	`

	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite schema initialized")
	return nil
}

// InsertAnalysis persists one completed analysis. The full response is kept
// as a JSON payload next to the indexed summary columns.
func (c *Client) InsertAnalysis(ctx context.Context, analysis *domain.Analysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis payload: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO analyses
			(id, company_name, domain, score, category, sector, confidence, cached, latency_ms, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		analysis.ID,
		analysis.CompanyName,
		analysis.Domain,
		analysis.Breakdown.Total,
		analysis.Category,
		analysis.Breakdown.Sector,
		analysis.Breakdown.Confidence,
		boolToInt(analysis.Cached),
		analysis.LatencyMS,
		string(payload),
		analysis.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

// RecentAnalyses returns the newest records first, capped at limit.
func (c *Client) RecentAnalyses(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, company_name, domain, score, category, sector, confidence, cached, latency_ms, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var records []models.AnalysisRecord
	for rows.Next() {
		var r models.AnalysisRecord
		var cached int
		var createdAt int64
		var dom sql.NullString
		if err := rows.Scan(&r.ID, &r.CompanyName, &dom, &r.Score, &r.Category,
			&r.Sector, &r.Confidence, &cached, &r.LatencyMS, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		r.Domain = dom.String
		r.Cached = cached != 0
		r.CreatedAt = time.Unix(createdAt, 0).UTC()
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return records, nil
}

// GetAnalysis loads one persisted analysis payload by id.
func (c *Client) GetAnalysis(ctx context.Context, id string) (*domain.Analysis, error) {
	var payload string
	err := c.db.QueryRowContext(ctx,
		`SELECT payload FROM analyses WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var analysis domain.Analysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis payload: %w", err)
	}
	return &analysis, nil
}

// InsertReport records a generated report.
func (c *Client) InsertReport(ctx context.Context, record models.ReportRecord) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO reports (id, analysis_id, company_name, size_bytes, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		record.ID, record.AnalysisID, record.CompanyName, record.SizeBytes,
		record.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert report record: %w", err)
	}
	return nil
}

// HealthCheck verifies the database connection.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
