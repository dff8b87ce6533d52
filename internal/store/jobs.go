package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"skijobs-engine/internal/domain"
)

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  resort TEXT NOT NULL,
  location TEXT NOT NULL,
  salary TEXT NOT NULL,
  type TEXT NOT NULL,
  difficulty INTEGER NOT NULL DEFAULT 1,
  image TEXT NOT NULL DEFAULT '',
  featured INTEGER NOT NULL DEFAULT 0,
  url TEXT NOT NULL,
  company TEXT NOT NULL,
  housing INTEGER NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  requirements TEXT NOT NULL DEFAULT '[]',
  benefits TEXT NOT NULL DEFAULT '[]',
  pos INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_company
ON jobs(company);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplaceAll swaps the table contents for the latest aggregate in a single
// transaction. Readers either see the old snapshot or the new one, never a
// half-written mix.
func ReplaceAll(ctx context.Context, db *sql.DB, jobs []domain.Job) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM jobs;`); err != nil {
		return fmt.Errorf("clear jobs: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, j := range jobs {
		reqB, _ := json.Marshal(j.Requirements)
		benB, _ := json.Marshal(j.Benefits)
		if _, err := tx.ExecContext(ctx, `
INSERT INTO jobs (id, title, resort, location, salary, type, difficulty, image,
                  featured, url, company, housing, description, requirements,
                  benefits, pos, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			j.ID, j.Title, j.Resort, j.Location, j.Salary, j.Type, j.Difficulty, j.Image,
			boolInt(j.Featured), j.URL, string(j.Company), boolInt(j.Housing), j.Description,
			string(reqB), string(benB), i, now,
		); err != nil {
			return fmt.Errorf("insert job %s: %w", j.ID, err)
		}
	}

	return tx.Commit()
}

// List returns the stored snapshot, optionally filtered by a case-insensitive
// substring match over title, resort, location, and description. Featured jobs
// sort first; within each group, original scrape order is kept.
func List(ctx context.Context, db *sql.DB, query string) ([]domain.Job, error) {
	q := `
SELECT id, title, resort, location, salary, type, difficulty, image,
       featured, url, company, housing, description, requirements, benefits
FROM jobs`
	var args []any
	if query != "" {
		q += `
WHERE title LIKE ? COLLATE NOCASE
   OR resort LIKE ? COLLATE NOCASE
   OR location LIKE ? COLLATE NOCASE
   OR description LIKE ? COLLATE NOCASE`
		like := "%" + query + "%"
		args = append(args, like, like, like, like)
	}
	q += `
ORDER BY featured DESC, pos ASC;`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		var (
			j        domain.Job
			featured int
			housing  int
			company  string
			reqJSON  string
			benJSON  string
		)
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Resort, &j.Location, &j.Salary, &j.Type,
			&j.Difficulty, &j.Image, &featured, &j.URL, &company, &housing,
			&j.Description, &reqJSON, &benJSON,
		); err != nil {
			return nil, err
		}
		j.Featured = featured != 0
		j.Housing = housing != 0
		j.Company = domain.Company(company)
		_ = json.Unmarshal([]byte(reqJSON), &j.Requirements)
		_ = json.Unmarshal([]byte(benJSON), &j.Benefits)
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count reports how many jobs the current snapshot holds.
func Count(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n)
	return n, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
