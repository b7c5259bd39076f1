package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS plans (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL,
			theme          TEXT NOT NULL DEFAULT '',
			activity_count INTEGER NOT NULL DEFAULT 0,
			updated_at     DATETIME NOT NULL,
			snapshot       TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_plans_updated ON plans(updated_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating plans table: %w", err)
	}

	return nil
}
