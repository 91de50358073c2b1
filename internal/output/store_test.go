// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/tablepull/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(t.TempDir(), "tables.db")
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreSaveTable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	table := types.Table{
		Title:  "Table 1: Revenue",
		Page:   1,
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "2"}, {"3", "4"}},
	}
	if err := s.SaveTable(ctx, table, "https://example.com/report.pdf"); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	var headerJSON, sourceURL string
	var page, rowCount int
	err := s.db.QueryRow(
		`SELECT source_url, page, header, row_count FROM tables WHERE title = ?`,
		table.Title,
	).Scan(&sourceURL, &page, &headerJSON, &rowCount)
	if err != nil {
		t.Fatalf("querying table record: %v", err)
	}
	if sourceURL != "https://example.com/report.pdf" {
		t.Errorf("source_url = %q", sourceURL)
	}
	if page != 1 || rowCount != 2 {
		t.Errorf("page = %d, row_count = %d, want 1 and 2", page, rowCount)
	}

	var header []string
	if err := json.Unmarshal([]byte(headerJSON), &header); err != nil {
		t.Fatalf("decoding header: %v", err)
	}
	if len(header) != 2 || header[0] != "A" || header[1] != "B" {
		t.Errorf("header = %v, want [A B]", header)
	}

	var cellsJSON string
	err = s.db.QueryRow(
		`SELECT cells FROM table_rows WHERE title = ? AND row_index = 1`, table.Title,
	).Scan(&cellsJSON)
	if err != nil {
		t.Fatalf("querying row record: %v", err)
	}
	var cells []string
	if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
		t.Fatalf("decoding cells: %v", err)
	}
	if len(cells) != 2 || cells[0] != "3" || cells[1] != "4" {
		t.Errorf("cells = %v, want [3 4]", cells)
	}
}

func TestStoreSaveTableReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := types.Table{
		Title:  "Table 1: Summary",
		Page:   1,
		Header: []string{"A"},
		Rows:   [][]string{{"old"}, {"older"}},
	}
	if err := s.SaveTable(ctx, first, "u"); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	second := types.Table{
		Title:  "Table 1: Summary",
		Page:   2,
		Header: []string{"A"},
		Rows:   [][]string{{"new"}},
	}
	if err := s.SaveTable(ctx, second, "u"); err != nil {
		t.Fatalf("SaveTable (replace): %v", err)
	}

	var rowCount int
	if err := s.db.QueryRow(`SELECT count(*) FROM table_rows WHERE title = ?`, second.Title).Scan(&rowCount); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if rowCount != 1 {
		t.Errorf("row count = %d, want 1 (old rows replaced)", rowCount)
	}

	var page int
	var cellsJSON string
	if err := s.db.QueryRow(
		`SELECT t.page, r.cells FROM tables t JOIN table_rows r ON r.title = t.title WHERE t.title = ?`,
		second.Title,
	).Scan(&page, &cellsJSON); err != nil {
		t.Fatalf("querying replaced record: %v", err)
	}
	if page != 2 {
		t.Errorf("page = %d, want 2", page)
	}
	var cells []string
	if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
		t.Fatalf("decoding cells: %v", err)
	}
	if len(cells) != 1 || cells[0] != "new" {
		t.Errorf("cells = %v, want [new]", cells)
	}
}

func TestOpenStoreCreatesResultsDir(t *testing.T) {
	base := t.TempDir()
	s, err := OpenStore(base, "tables.db")
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(base, "results", "tables.db")); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}
