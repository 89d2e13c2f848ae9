package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/html-wordfreq/pkg/detector"
	"github.com/dtnitsch/html-wordfreq/pkg/mapreduce"
	"github.com/dtnitsch/html-wordfreq/pkg/storage"
)

// DocumentResult is the outcome of tokenizing one document.
// This is passed in by the caller to avoid circular dependencies.
type DocumentResult struct {
	Path       string
	WordCounts map[string]int
	Error      error
	ErrorType  string
	Metadata   *detector.DocumentMetadata
}

// ReportResult is the outcome of writing one report.
type ReportResult struct {
	Kind      string
	Path      string
	Lines     int
	Error     error
	ErrorType string
}

// Run carries everything the summary describes.
type Run struct {
	RunID      string
	InputDir   string
	OutputDir  string
	Elapsed    time.Duration
	TopN       int
	WordCounts map[string]int
	Documents  []DocumentResult
	Reports    []ReportResult
}

// Build assembles the summary manifest for a run without writing it.
func Build(run Run, s *storage.Storage, now time.Time) SummaryManifest {
	m := SummaryManifest{
		GeneratedAt:    now.Format(time.RFC3339),
		RunID:          run.RunID,
		InputDir:       run.InputDir,
		OutputDir:      run.OutputDir,
		TotalDocuments: len(run.Documents),
		TotalTokens:    mapreduce.Total(run.WordCounts),
		UniqueTokens:   len(run.WordCounts),
		ElapsedSeconds: run.Elapsed.Seconds(),
		TopKeywords:    mapreduce.TopKeywords(run.WordCounts, run.TopN),
		Documents:      []DocumentSummary{},
		Reports:        []ReportSummary{},
	}

	for _, doc := range run.Documents {
		summary := DocumentSummary{
			Path:         doc.Path,
			Tokens:       mapreduce.Total(doc.WordCounts),
			UniqueTokens: len(doc.WordCounts),
		}

		if doc.Error != nil {
			m.Failed++
			summary.Status = "error"
			summary.ErrorType = doc.ErrorType
			summary.ErrorMessage = doc.Error.Error()
		} else {
			m.Successful++
			summary.Status = "success"
		}

		if stats, err := s.GetFileStats(doc.Path); err == nil {
			summary.SizeBytes = stats.SizeBytes
		}

		if doc.Metadata != nil {
			summary.Title = doc.Metadata.Title
			summary.Excerpt = doc.Metadata.Excerpt
			summary.Language = doc.Metadata.Language
			summary.LanguageConfidence = doc.Metadata.LanguageConfidence
		}

		m.Documents = append(m.Documents, summary)
	}

	for _, r := range run.Reports {
		summary := ReportSummary{
			Kind:  r.Kind,
			Path:  r.Path,
			Lines: r.Lines,
		}
		if r.Error != nil {
			summary.Status = "error"
			summary.ErrorType = r.ErrorType
			summary.ErrorMessage = r.Error.Error()
		} else {
			summary.Status = "success"
		}
		m.Reports = append(m.Reports, summary)
	}

	return m
}

// GenerateSummary writes the run summary as YAML into the run's output directory.
// Returns the path to the generated manifest file and any error.
func GenerateSummary(run Run, fileName string, s *storage.Storage) (string, error) {
	manifest := Build(run, s, time.Now())

	manifestPath := filepath.Join(run.OutputDir, fileName)
	manifestData, err := yaml.Marshal(&manifest)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(manifestPath, manifestData); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return manifestPath, nil
}
