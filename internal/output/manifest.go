// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tablepull/internal/extract"
)

// manifestFile is the manifest's name under the results directory.
const manifestFile = "manifest.yaml"

// Manifest records what one run produced, next to the CSV files it
// describes.
type Manifest struct {
	SourceURL   string          `yaml:"source_url"`
	GeneratedAt time.Time       `yaml:"generated_at"`
	Tables      []ManifestTable `yaml:"tables"`
	Skipped     []ManifestSkip  `yaml:"skipped,omitempty"`
}

// ManifestTable describes one written table.
type ManifestTable struct {
	Title   string `yaml:"title"`
	File    string `yaml:"file"`
	Page    int    `yaml:"page"`
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
}

// ManifestSkip describes one table dropped during extraction.
type ManifestSkip struct {
	Page   int    `yaml:"page"`
	Table  int    `yaml:"table,omitempty"`
	Reason string `yaml:"reason"`
}

// BuildManifest assembles the manifest for one run from the extraction
// result, in discovery order.
func BuildManifest(sourceURL string, at time.Time, res *extract.Result) Manifest {
	m := Manifest{SourceURL: sourceURL, GeneratedAt: at}
	for _, t := range res.Ordered() {
		m.Tables = append(m.Tables, ManifestTable{
			Title:   t.Title,
			File:    Slugify(t.Title) + ".csv",
			Page:    t.Page,
			Columns: len(t.Header),
			Rows:    len(t.Rows),
		})
	}
	for _, s := range res.Skipped {
		m.Skipped = append(m.Skipped, ManifestSkip{Page: s.Page, Table: s.Table, Reason: s.Reason})
	}
	return m
}

// WriteManifest writes the manifest to <basePath>/results/manifest.yaml.
func WriteManifest(m Manifest, basePath string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	path := filepath.Join(basePath, resultsDir, manifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
