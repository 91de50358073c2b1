// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"regexp"

	"github.com/pyhub-apps/pdfplumber-golang"
	"github.com/pyhub-apps/pdfplumber-golang/pkg/pdf"

	"github.com/pdiddy/tablepull/pkg/types"
)

// Page is the slice of the PDF library's page surface the pipeline reads.
type Page interface {
	GetObjects() pdf.Objects
	ExtractTables(opts ...pdf.TableExtractionOption) []pdf.Table
}

// Skip records a table (or page) that was dropped from the result and why.
type Skip struct {
	// Page is the 1-based page number.
	Page int
	// Table is the 1-based detection order on the page, 0 for page-level skips.
	Table int
	// Reason is a human-readable explanation.
	Reason string
}

// processPage merges one page's titled tables into res. Tables without a
// title above them and tables with a malformed cell grid become Skip
// records; neither aborts the page.
func processPage(page Page, pageNum int, pattern *regexp.Regexp, settings types.TableSettings, res *Result, w io.Writer) {
	titles := FindTitles(page, pattern)
	tables := page.ExtractTables(tableOptions(settings)...)

	for i, tbl := range tables {
		title, ok := AssociateTitle(titles, tbl.BBox.Y0)
		if !ok {
			res.skip(Skip{Page: pageNum, Table: i + 1, Reason: "no title above table"}, w)
			continue
		}

		t, err := buildTable(title.Text, pageNum, tbl)
		if err != nil {
			res.skip(Skip{Page: pageNum, Table: i + 1, Reason: err.Error()}, w)
			continue
		}

		res.add(t)
		fmt.Fprintf(w, "extracted: %q (page %d, %d columns, %d rows)\n",
			t.Title, pageNum, len(t.Header), len(t.Rows))
	}
}

// buildTable turns a detected cell grid into a Table. The first row is the
// header; a grid without one is malformed.
func buildTable(title string, pageNum int, tbl pdf.Table) (types.Table, error) {
	if len(tbl.Rows) == 0 || len(tbl.Rows[0]) == 0 {
		return types.Table{}, fmt.Errorf("empty cell grid")
	}
	return types.Table{
		Title:  title,
		Page:   pageNum,
		Header: tbl.Rows[0],
		Rows:   tbl.Rows[1:],
	}, nil
}

// tableOptions maps the opaque table_settings block onto the library's
// extraction options. Zero values keep the library defaults.
func tableOptions(s types.TableSettings) []pdf.TableExtractionOption {
	var opts []pdf.TableExtractionOption
	if s.VerticalStrategy != "" || s.HorizontalStrategy != "" {
		v, h := s.VerticalStrategy, s.HorizontalStrategy
		if v == "" {
			v = "lines"
		}
		if h == "" {
			h = "lines"
		}
		opts = append(opts, pdfplumber.WithTableStrategy(v, h))
	}
	if s.MinTableSize > 0 {
		opts = append(opts, pdfplumber.WithMinTableSize(s.MinTableSize))
	}
	if s.TextTolerance > 0 {
		opts = append(opts, pdfplumber.WithTextTolerance(s.TextTolerance))
	}
	return opts
}
