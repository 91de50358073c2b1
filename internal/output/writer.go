// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output persists extracted tables as CSV files, writes a run
// manifest, and optionally mirrors the tables into a SQLite database.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/tablepull/pkg/types"
)

// resultsDir is the fixed subdirectory created under the results path.
const resultsDir = "results"

// slugUnsafe matches characters that must not appear in a derived filename:
// path separators, shell-hostile punctuation, and control characters.
var slugUnsafe = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]`)

// Slugify derives the filename stem for a table title: lowercased, spaces
// to underscores, unsafe characters to underscores. The result is
// deterministic and idempotent.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "_")
	return slugUnsafe.ReplaceAllString(slug, "_")
}

// Summary holds the outcome of writing one run's tables.
type Summary struct {
	Written int
	Failed  int
}

// Total returns the number of tables attempted.
func (s Summary) Total() int {
	return s.Written + s.Failed
}

// HasFailures reports whether any write failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// WriteTables writes each table to <basePath>/results/<slug>.csv, creating
// the directory if needed. A failed write is reported and counted; it never
// aborts the remaining tables. Only a missing results directory is fatal.
func WriteTables(tables []types.Table, basePath string, w io.Writer) (Summary, error) {
	dir := filepath.Join(basePath, resultsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating results directory %s: %w", dir, err)
	}

	var summary Summary
	for _, t := range tables {
		path := filepath.Join(dir, Slugify(t.Title)+".csv")
		if err := writeCSV(path, t); err != nil {
			fmt.Fprintf(w, "failed:  %q (%v)\n", t.Title, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "saved: %s\n", path)
		summary.Written++
	}
	return summary, nil
}

// writeCSV writes one table as UTF-8 CSV: the header row, then data rows.
func writeCSV(path string, t types.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	writeErr := cw.Write(t.Header)
	for _, row := range t.Rows {
		if writeErr != nil {
			break
		}
		writeErr = cw.Write(row)
	}
	cw.Flush()
	if writeErr == nil {
		writeErr = cw.Error()
	}

	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", path, closeErr)
	}
	return nil
}
