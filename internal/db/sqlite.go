// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lmoreno/weekendly/internal/plan"
)

// SQLite implements plan.Repository using SQLite. Each plan is stored as one
// row holding a JSON snapshot, plus denormalized columns for listing without
// decoding every snapshot.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SavePlan inserts or replaces the plan's snapshot row.
func (s *SQLite) SavePlan(ctx context.Context, p *plan.WeekendPlan) error {
	snapshot, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	query := `
		INSERT INTO plans (id, name, theme, activity_count, updated_at, snapshot)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			theme = excluded.theme,
			activity_count = excluded.activity_count,
			updated_at = excluded.updated_at,
			snapshot = excluded.snapshot
	`

	_, err = s.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Theme),
		p.ActivityCount(),
		p.UpdatedAt.Format(time.RFC3339),
		string(snapshot),
	)
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}

	return nil
}

// LoadPlan retrieves a plan by id. Returns nil when no plan matches.
func (s *SQLite) LoadPlan(ctx context.Context, id string) (*plan.WeekendPlan, error) {
	return s.loadOne(ctx, `SELECT snapshot FROM plans WHERE id = ?`, id)
}

// LoadLatest retrieves the most recently updated plan. Returns nil when the
// store is empty.
func (s *SQLite) LoadLatest(ctx context.Context) (*plan.WeekendPlan, error) {
	return s.loadOne(ctx, `SELECT snapshot FROM plans ORDER BY updated_at DESC, id LIMIT 1`)
}

func (s *SQLite) loadOne(ctx context.Context, query string, args ...any) (*plan.WeekendPlan, error) {
	var snapshot string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&snapshot)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying plan: %w", err)
	}

	var p plan.WeekendPlan
	if err := json.Unmarshal([]byte(snapshot), &p); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("restored plan is inconsistent: %w", err)
	}

	return &p, nil
}

// ListPlans returns summaries of all saved plans, most recent first.
func (s *SQLite) ListPlans(ctx context.Context) ([]plan.Summary, error) {
	query := `
		SELECT id, name, theme, activity_count, updated_at
		FROM plans
		ORDER BY updated_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []plan.Summary
	for rows.Next() {
		var (
			sum       plan.Summary
			updatedAt string
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Theme, &sum.ActivityCount, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		sum.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing updated at: %w", err)
		}
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}

	return summaries, nil
}

// DeletePlan removes a saved plan by id.
func (s *SQLite) DeletePlan(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("plan %s not found", id)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
