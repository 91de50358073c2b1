// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tablepull CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tablepull/internal/config"
	"github.com/pdiddy/tablepull/internal/extract"
	"github.com/pdiddy/tablepull/internal/fetch"
	"github.com/pdiddy/tablepull/internal/output"
	"github.com/pdiddy/tablepull/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout = 60 * time.Second
	userAgent      = "tablepull/0.1"
)

// rootCmd is the single command of the tablepull CLI; there are no
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "tablepull",
	Short: "Extract titled tables from a PDF into CSV files",
	Long: `tablepull downloads a PDF document, detects the tables on each page,
pairs every table with the title found directly above it, and writes each
titled table to its own CSV file under a results/ directory.

The source URL, table detection settings, and title pattern come from a
YAML configuration file. Tables without a title above them are skipped and
reported in the run summary; when two tables resolve to the same title, the
one processed later wins.`,
	RunE:         runRoot,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

func init() {
	rootCmd.Flags().String("config_file", "config.yml", "path to the YAML configuration file")
	rootCmd.Flags().String("results_path", ".", "directory the results/ subdirectory is created under")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	rootCmd.Flags().String("db", "", "also store tables in this SQLite file under results/ (disabled when empty)")
	rootCmd.Version = version
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config_file")
	resultsPath, _ := cmd.Flags().GetString("results_path")
	dbName, _ := cmd.Flags().GetString("db")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	out := cmd.OutOrStdout()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Load already validated the pattern; compile cannot fail here.
	pattern, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return fmt.Errorf("compiling title pattern: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	data, err := fetch.PDF(client, cfg.PDFURL, userAgent)
	if err != nil {
		return fmt.Errorf("downloading PDF: %w", err)
	}
	fmt.Fprintf(out, "downloaded: %s (%d bytes)\n", cfg.PDFURL, len(data))

	result, err := extract.Process(data, pattern, cfg.TableSettings, out)
	if err != nil {
		return err
	}

	tables := result.Ordered()
	summary, err := output.WriteTables(tables, resultsPath, out)
	if err != nil {
		return err
	}

	manifest := output.BuildManifest(cfg.PDFURL, time.Now().UTC(), result)
	if err := output.WriteManifest(manifest, resultsPath); err != nil {
		fmt.Fprintf(out, "warning: manifest write failed: %v\n", err)
	}

	if dbName != "" {
		if err := saveToStore(cmd.Context(), dbName, resultsPath, cfg.PDFURL, tables, out); err != nil {
			fmt.Fprintf(out, "warning: database save failed: %v\n", err)
		}
	}

	fmt.Fprintf(out, "\nRun summary: %d table(s) written, %d write failure(s), %d table(s) skipped\n",
		summary.Written, summary.Failed, len(result.Skipped))
	return nil
}

// saveToStore mirrors the written tables into the optional SQLite sink.
func saveToStore(ctx context.Context, name, resultsPath, sourceURL string, tables []types.Table, out io.Writer) error {
	store, err := output.OpenStore(resultsPath, name)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, t := range tables {
		if err := store.SaveTable(ctx, t, sourceURL); err != nil {
			return fmt.Errorf("saving %q: %w", t.Title, err)
		}
	}
	fmt.Fprintf(out, "stored: %d table(s) in %s\n", len(tables), name)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
