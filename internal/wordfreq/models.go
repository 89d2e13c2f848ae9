package wordfreq

import (
	"time"

	"github.com/dtnitsch/html-wordfreq/pkg/report"
)

// Error types recorded on failed documents and reports.
const (
	ErrorTypeOpen   = "open_error"
	ErrorTypeRead   = "read_error"
	ErrorTypeCreate = "create_error"
	ErrorTypeWrite  = "write_error"
)

// DocumentResult holds the outcome of tokenizing one input document.
type DocumentResult struct {
	Path       string
	WordCounts map[string]int
	Error      error
	ErrorType  string
}

// ReportResult holds the outcome of writing one report file.
type ReportResult struct {
	Kind      report.Kind
	Path      string
	Lines     int
	Error     error
	ErrorType string
}

// Outcome is everything a run produced. Failures are recorded, never fatal.
type Outcome struct {
	RunID       string
	Documents   []DocumentResult
	WordCounts  map[string]int
	Reports     []ReportResult
	Elapsed     time.Duration
	TimingLog   string
	TimingErr   error
	SummaryPath string
	SummaryErr  error
	ExportErr   error
	ListErr     error
}

// Failed reports whether any unit of work in the run failed.
func (o *Outcome) Failed() bool {
	if o.ListErr != nil || o.TimingErr != nil || o.SummaryErr != nil || o.ExportErr != nil {
		return true
	}
	for _, d := range o.Documents {
		if d.Error != nil {
			return true
		}
	}
	for _, r := range o.Reports {
		if r.Error != nil {
			return true
		}
	}
	return false
}
