package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/kwex/pkg/kwex/report"
	"github.com/cognicore/kwex/pkg/kwex/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	body TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	target TEXT,
	keywords TEXT NOT NULL
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertDoc inserts or updates a corpus document, keyed by name
func (s *sqliteStore) UpsertDoc(ctx context.Context, d store.Doc) error {
	const stmt = `
INSERT INTO docs (name, body)
VALUES (?, ?)
ON CONFLICT(name) DO UPDATE SET body=excluded.body;
`

	_, err := s.db.ExecContext(ctx, stmt, d.Name, d.Body)
	return err
}

// GetDoc returns a document by ID
func (s *sqliteStore) GetDoc(ctx context.Context, id int64) (store.Doc, bool, error) {
	var d store.Doc
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, body FROM docs WHERE id = ?", id,
	).Scan(&d.ID, &d.Name, &d.Body)
	if err == sql.ErrNoRows {
		return store.Doc{}, false, nil
	}
	if err != nil {
		return store.Doc{}, false, err
	}
	return d, true, nil
}

// GetDocByName returns a document by its source name
func (s *sqliteStore) GetDocByName(ctx context.Context, name string) (store.Doc, bool, error) {
	var d store.Doc
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, body FROM docs WHERE name = ?", name,
	).Scan(&d.ID, &d.Name, &d.Body)
	if err == sql.ErrNoRows {
		return store.Doc{}, false, nil
	}
	if err != nil {
		return store.Doc{}, false, err
	}
	return d, true, nil
}

// ListDocs returns all documents ordered by ID
func (s *sqliteStore) ListDocs(ctx context.Context) ([]store.Doc, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, body FROM docs ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []store.Doc
	for rows.Next() {
		var d store.Doc
		if err := rows.Scan(&d.ID, &d.Name, &d.Body); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// CountDocs returns the number of stored documents
func (s *sqliteStore) CountDocs(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM docs").Scan(&count)
	return count, err
}

// SaveReport stores an extraction report with JSON-encoded keywords
func (s *sqliteStore) SaveReport(ctx context.Context, r report.Report) error {
	keywords, err := json.Marshal(r.Keywords)
	if err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}

	const stmt = `
INSERT INTO reports (id, created_at, target, keywords)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	created_at=excluded.created_at,
	target=excluded.target,
	keywords=excluded.keywords;
`

	_, err = s.db.ExecContext(ctx, stmt,
		r.ID,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
		r.Target,
		string(keywords),
	)
	return err
}

// GetReport returns a report by ID
func (s *sqliteStore) GetReport(ctx context.Context, id string) (report.Report, bool, error) {
	var (
		r         report.Report
		createdAt string
		keywords  string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, created_at, target, keywords FROM reports WHERE id = ?", id,
	).Scan(&r.ID, &createdAt, &r.Target, &keywords)
	if err == sql.ErrNoRows {
		return report.Report{}, false, nil
	}
	if err != nil {
		return report.Report{}, false, err
	}

	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return report.Report{}, false, fmt.Errorf("parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(keywords), &r.Keywords); err != nil {
		return report.Report{}, false, fmt.Errorf("decode keywords: %w", err)
	}
	return r, true, nil
}

// ListReports returns up to limit reports, newest first
func (s *sqliteStore) ListReports(ctx context.Context, limit int) ([]report.Report, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, target, keywords FROM reports ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []report.Report
	for rows.Next() {
		var (
			r         report.Report
			createdAt string
			keywords  string
		)
		if err := rows.Scan(&r.ID, &createdAt, &r.Target, &keywords); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		if err := json.Unmarshal([]byte(keywords), &r.Keywords); err != nil {
			return nil, fmt.Errorf("decode keywords: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
