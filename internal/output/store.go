// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/tablepull/pkg/types"
)

// Store mirrors extracted tables into a SQLite database under the results
// directory, for runs that want queryable output next to the CSV files.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at <basePath>/results/<name> and
// ensures the schema exists.
func OpenStore(basePath, name string) (*Store, error) {
	dir := filepath.Join(basePath, resultsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, name)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tables (
			title TEXT PRIMARY KEY,
			source_url TEXT,
			page INTEGER,
			header TEXT NOT NULL,
			row_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS table_rows (
			title TEXT NOT NULL REFERENCES tables(title) ON DELETE CASCADE,
			row_index INTEGER NOT NULL,
			cells TEXT NOT NULL,
			PRIMARY KEY (title, row_index)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveTable upserts one extracted table. Saving the same title again
// replaces the previous contents, matching the last-write-wins rule of the
// CSV output. Header and cell lists are stored as JSON.
func (s *Store) SaveTable(ctx context.Context, t types.Table, sourceURL string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	headerJSON, _ := json.Marshal(t.Header)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO tables (title, source_url, page, header, row_count)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(title) DO UPDATE SET
			source_url=excluded.source_url, page=excluded.page,
			header=excluded.header, row_count=excluded.row_count`,
		t.Title, sourceURL, t.Page, string(headerJSON), len(t.Rows),
	); err != nil {
		return fmt.Errorf("upserting table %q: %w", t.Title, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM table_rows WHERE title = ?`, t.Title); err != nil {
		return fmt.Errorf("deleting old rows for %q: %w", t.Title, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO table_rows (title, row_index, cells) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing row insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		cellsJSON, _ := json.Marshal(row)
		if _, err := stmt.ExecContext(ctx, t.Title, i, string(cellsJSON)); err != nil {
			return fmt.Errorf("inserting row %d of %q: %w", i, t.Title, err)
		}
	}

	return tx.Commit()
}
