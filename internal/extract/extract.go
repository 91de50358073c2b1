// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates titled tables on each page of a PDF document.
// Table and cell-grid detection is delegated to the pdfplumber library;
// this package associates each detected table with the title found
// directly above it and aggregates the results across pages.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/pyhub-apps/pdfplumber-golang"

	"github.com/pdiddy/tablepull/pkg/types"
)

// ErrDocumentNotLoaded indicates Process was called before the PDF bytes
// were fetched.
var ErrDocumentNotLoaded = errors.New("document not loaded: fetch the PDF before processing")

// Result is the combined mapping of one run, ordered by discovery.
type Result struct {
	// Titles holds the keys of Tables in discovery order. A duplicate
	// title keeps its original position.
	Titles []string

	// Tables maps title text to the extracted table filed under it.
	Tables map[string]types.Table

	// Skipped records every table dropped from the result.
	Skipped []Skip
}

// add merges t under its title. A duplicate title takes the later table's
// contents (last write wins) but keeps its original discovery position.
func (r *Result) add(t types.Table) {
	if _, ok := r.Tables[t.Title]; !ok {
		r.Titles = append(r.Titles, t.Title)
	}
	r.Tables[t.Title] = t
}

// skip records and reports a dropped table.
func (r *Result) skip(s Skip, w io.Writer) {
	r.Skipped = append(r.Skipped, s)
	if s.Table > 0 {
		fmt.Fprintf(w, "skipped: table %d on page %d (%s)\n", s.Table, s.Page, s.Reason)
	} else {
		fmt.Fprintf(w, "skipped: page %d (%s)\n", s.Page, s.Reason)
	}
}

// Ordered returns the extracted tables in discovery order.
func (r *Result) Ordered() []types.Table {
	out := make([]types.Table, 0, len(r.Titles))
	for _, title := range r.Titles {
		out = append(out, r.Tables[title])
	}
	return out
}

// Process opens the fetched PDF and walks its pages in order, merging each
// page's titled tables into one combined result. An unreadable page is
// recorded and skipped; an unparsable document is an error. data must hold
// the fetched document bytes.
func Process(data []byte, pattern *regexp.Regexp, settings types.TableSettings, w io.Writer) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrDocumentNotLoaded
	}

	// The PDF library opens documents by path, so the in-memory buffer is
	// spilled to a temp file for the duration of the parse.
	tmpPath, err := spillToTemp(data)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpPath)

	doc, err := pdfplumber.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF document: %w", err)
	}
	defer doc.Close()

	res := &Result{Tables: make(map[string]types.Table)}
	for i := 0; i < doc.PageCount(); i++ {
		page, err := doc.GetPage(i)
		if err != nil {
			res.skip(Skip{Page: i + 1, Reason: fmt.Sprintf("reading page: %v", err)}, w)
			continue
		}
		processPage(page, i+1, pattern, settings, res, w)
	}
	return res, nil
}

// spillToTemp writes data to a temp file and returns its path. The caller
// removes the file.
func spillToTemp(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "tablepull-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}
	return tmpPath, nil
}
