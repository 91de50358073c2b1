package types

import "time"

// HTTPConfig holds HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "tablepull/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// TableSettings selects how the table detector finds cell boundaries on a
// page. The values are passed through to the PDF library untouched; zero
// values fall back to the library defaults.
type TableSettings struct {
	// VerticalStrategy selects column boundary detection: "lines" or "text".
	VerticalStrategy string `mapstructure:"vertical_strategy" json:"vertical_strategy" yaml:"vertical_strategy"`

	// HorizontalStrategy selects row boundary detection: "lines" or "text".
	HorizontalStrategy string `mapstructure:"horizontal_strategy" json:"horizontal_strategy" yaml:"horizontal_strategy"`

	// MinTableSize is the minimum number of cells a detected region needs
	// to count as a table.
	MinTableSize int `mapstructure:"min_table_size" json:"min_table_size" yaml:"min_table_size"`

	// TextTolerance is the snapping distance, in points, used when grouping
	// text into cells.
	TextTolerance float64 `mapstructure:"text_tolerance" json:"text_tolerance" yaml:"text_tolerance"`
}

// Config is the per-run configuration loaded from the YAML config file.
// All three fields are required.
type Config struct {
	// PDFURL is the URL the source document is downloaded from.
	PDFURL string `mapstructure:"pdf_url" json:"pdf_url" yaml:"pdf_url"`

	// TableSettings is handed to the table detector as-is.
	TableSettings TableSettings `mapstructure:"table_settings" json:"table_settings" yaml:"table_settings"`

	// Pattern is the regular expression that identifies table titles in
	// the page text.
	Pattern string `mapstructure:"pattern" json:"pattern" yaml:"pattern"`
}
