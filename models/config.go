// Package models defines data structures for run configuration.
package models

// DefaultExtension is the only file extension treated as a document.
const DefaultExtension = ".html"

// DefaultTopKeywords is how many keywords the run summary lists.
const DefaultTopKeywords = 25

// RunConfig holds runtime configuration for one word-frequency run.
// All values come from CLI arguments and flags, not external config files.
type RunConfig struct {
	InputDir    string
	OutputDir   string
	Extension   string
	RunID       string // empty means generate one from the input documents
	Summary     bool
	SQLitePath  string
	TopKeywords int
}
