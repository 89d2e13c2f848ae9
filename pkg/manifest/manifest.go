package manifest

// SummaryManifest represents the structure of the YAML run summary.
// It gives an overview of every document, both reports and the top keywords
// without having to open the full reports.
type SummaryManifest struct {
	GeneratedAt    string            `yaml:"generated_at"`
	RunID          string            `yaml:"run_id"`
	InputDir       string            `yaml:"input_dir"`
	OutputDir      string            `yaml:"output_dir"`
	TotalDocuments int               `yaml:"total_documents"`
	Successful     int               `yaml:"successful"`
	Failed         int               `yaml:"failed"`
	TotalTokens    int               `yaml:"total_tokens"`
	UniqueTokens   int               `yaml:"unique_tokens"`
	ElapsedSeconds float64           `yaml:"elapsed_seconds"`
	TopKeywords    []string          `yaml:"top_keywords"`
	Documents      []DocumentSummary `yaml:"documents"`
	Reports        []ReportSummary   `yaml:"reports"`
}

// DocumentSummary represents summary information for a single input document.
type DocumentSummary struct {
	Path               string  `yaml:"path"`
	Status             string  `yaml:"status"` // "success" or "error"
	ErrorType          string  `yaml:"error_type,omitempty"`
	ErrorMessage       string  `yaml:"error_message,omitempty"`
	SizeBytes          int64   `yaml:"size_bytes,omitempty"`
	Tokens             int     `yaml:"tokens"`
	UniqueTokens       int     `yaml:"unique_tokens"`
	Title              string  `yaml:"title,omitempty"`
	Excerpt            string  `yaml:"excerpt,omitempty"`
	Language           string  `yaml:"language,omitempty"`
	LanguageConfidence float64 `yaml:"language_confidence,omitempty"`
}

// ReportSummary represents the outcome of writing one report file.
type ReportSummary struct {
	Kind         string `yaml:"kind"`
	Path         string `yaml:"path"`
	Status       string `yaml:"status"`
	Lines        int    `yaml:"lines"`
	ErrorType    string `yaml:"error_type,omitempty"`
	ErrorMessage string `yaml:"error_message,omitempty"`
}
