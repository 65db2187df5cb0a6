package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion is stored in PRAGMA user_version.
const schemaVersion = 2

// Migrate brings the database to schemaVersion one step at a time.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= schemaVersion {
		return tx.Commit()
	}

	// ---- v1: company_profiles ----
	if v < 1 {
		if _, err := tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS company_profiles (
  company_id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  industry TEXT NOT NULL DEFAULT '',
  size TEXT NOT NULL DEFAULT '',
  diversity_score REAL NOT NULL,
  growth_score REAL NOT NULL,
  culture_score REAL NOT NULL,
  benefits_score REAL NOT NULL,
  leadership_diversity REAL NULL,
  employee_retention REAL NULL,
  glassdoor_rating REAL NULL,
  indeed_rating REAL NULL,
  remote_friendly INTEGER NULL,
  headquarters TEXT NOT NULL DEFAULT '',
  founded_year INTEGER NOT NULL DEFAULT 0,
  funding_stage TEXT NOT NULL DEFAULT '',
  revenue_band TEXT NOT NULL DEFAULT '',
  fetched_at TEXT NOT NULL
);
`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
CREATE INDEX IF NOT EXISTS idx_company_profiles_fetched_at
ON company_profiles(fetched_at);
`); err != nil {
			return err
		}
	}

	// ---- v2: website + provenance ----
	if v < 2 {
		if !columnExists(ctx, tx, "company_profiles", "website") {
			if _, err := tx.ExecContext(ctx, `ALTER TABLE company_profiles ADD COLUMN website TEXT NOT NULL DEFAULT '';`); err != nil {
				return err
			}
		}
		if !columnExists(ctx, tx, "company_profiles", "sources") {
			if _, err := tx.ExecContext(ctx, `ALTER TABLE company_profiles ADD COLUMN sources TEXT NOT NULL DEFAULT '[]';`); err != nil {
				return err
			}
		}
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d;`, schemaVersion)); err != nil {
		return err
	}
	return tx.Commit()
}

func columnExists(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, table, col string) bool {
	query := fmt.Sprintf(`
SELECT 1
FROM pragma_table_info('%s')
WHERE name = ?
LIMIT 1;
`, table)

	var one int
	err := q.QueryRowContext(ctx, query, col).Scan(&one)
	return err == nil
}
