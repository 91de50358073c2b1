package types

// Table is one extracted table, keyed in the run result by the title found
// directly above it on the page.
type Table struct {
	// Title is the matched title text the table was filed under.
	Title string `json:"title" yaml:"title"`

	// Page is the 1-based page number the table was detected on.
	Page int `json:"page" yaml:"page"`

	// Header holds the cells of the table's first row.
	Header []string `json:"header" yaml:"header"`

	// Rows holds the remaining rows, in page order.
	Rows [][]string `json:"rows" yaml:"rows"`
}
