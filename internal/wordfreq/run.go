package wordfreq

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dtnitsch/html-wordfreq/models"
	"github.com/dtnitsch/html-wordfreq/pkg/analytics"
	"github.com/dtnitsch/html-wordfreq/pkg/db"
	"github.com/dtnitsch/html-wordfreq/pkg/detector"
	"github.com/dtnitsch/html-wordfreq/pkg/manifest"
	"github.com/dtnitsch/html-wordfreq/pkg/mapreduce"
	"github.com/dtnitsch/html-wordfreq/pkg/report"
	"github.com/dtnitsch/html-wordfreq/pkg/session"
	"github.com/dtnitsch/html-wordfreq/pkg/storage"
)

// Run tokenizes every document of config.InputDir, writes both reports and
// the timing log, then the optional summary and SQLite export.
// Every failure is logged and recorded in the outcome; none stops the run.
func Run(logger *slog.Logger, config *models.RunConfig) *Outcome {
	s := &storage.Storage{}
	a := &analytics.Analytics{}

	ext := config.Extension
	if ext == "" {
		ext = models.DefaultExtension
	}

	outcome := &Outcome{}
	startTime := time.Now()

	paths, err := s.ListFiles(config.InputDir, ext)
	if err != nil {
		logger.Error("Failed to list input directory", "path", config.InputDir, "error", err)
		outcome.ListErr = err
	}
	logger.Info("Starting tokenize phase", "input_dir", config.InputDir, "count", len(paths))

	consolidated := make(map[string]int)
	outcome.Documents = make([]DocumentResult, 0, len(paths))
	for _, path := range paths {
		doc := tokenizeDocument(logger, a, path)
		mapreduce.Merge(consolidated, doc.WordCounts)
		outcome.Documents = append(outcome.Documents, doc)
	}
	outcome.WordCounts = consolidated
	logger.Info("Reduce phase complete", "unique_tokens", len(consolidated), "total_tokens", mapreduce.Total(consolidated))

	for _, kind := range []report.Kind{report.KindAlphabetical, report.KindFrequency} {
		outcome.Reports = append(outcome.Reports, saveReport(logger, s, config.OutputDir, kind, consolidated))
	}

	outcome.Elapsed = time.Since(startTime)

	outcome.RunID = session.SanitizeRunID(config.RunID)
	if outcome.RunID == "" {
		outcome.RunID = session.GenerateRunID(paths, startTime)
	}

	outcome.TimingLog = filepath.Join(config.OutputDir, session.TimingLogName(outcome.RunID))
	if err := writeTimingLog(s, outcome.TimingLog, outcome.Elapsed); err != nil {
		logger.Error("Failed to write timing log", "path", outcome.TimingLog, "error", err)
		outcome.TimingErr = err
	} else {
		logger.Info("Timing log saved", "path", outcome.TimingLog, "elapsed_seconds", outcome.Elapsed.Seconds())
	}

	if config.Summary {
		writeSummary(logger, s, config, outcome)
	}
	if config.SQLitePath != "" {
		exportRun(logger, config, outcome)
	}

	return outcome
}

// tokenizeDocument counts one document. The returned counts are always
// safe to merge, even when the document could not be read.
func tokenizeDocument(logger *slog.Logger, a *analytics.Analytics, path string) DocumentResult {
	result := DocumentResult{Path: path}

	counts, err := mapreduce.Map(path, a)
	result.WordCounts = counts
	if err != nil {
		result.Error = err
		result.ErrorType = ErrorTypeRead
		if errors.Is(err, analytics.ErrOpenDocument) {
			result.ErrorType = ErrorTypeOpen
		}
		logger.Error("Failed to tokenize document", "path", path, "error_type", result.ErrorType, "error", err)
		return result
	}

	logger.Info("Tokenized document", "path", path, "count", mapreduce.Total(counts))
	return result
}

func saveReport(logger *slog.Logger, s *storage.Storage, outputDir string, kind report.Kind, counts map[string]int) ReportResult {
	result := ReportResult{
		Kind: kind,
		Path: filepath.Join(outputDir, kind.FileName()),
	}

	lines, err := report.Save(s, result.Path, kind.Order(counts))
	result.Lines = lines
	if err != nil {
		result.Error = err
		result.ErrorType = ErrorTypeWrite
		if errors.Is(err, report.ErrCreateReport) {
			result.ErrorType = ErrorTypeCreate
		}
		logger.Error("Failed to save report", "kind", kind, "path", result.Path, "error_type", result.ErrorType, "error", err)
		return result
	}

	logger.Info("Report saved", "kind", kind, "path", result.Path, "count", lines)
	return result
}

// TimingLine formats the single line written to the timing log.
func TimingLine(elapsed time.Duration) string {
	return fmt.Sprintf("Total execution time: %s seconds\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
}

func writeTimingLog(s *storage.Storage, path string, elapsed time.Duration) error {
	return s.SaveFile(path, []byte(TimingLine(elapsed)))
}

func writeSummary(logger *slog.Logger, s *storage.Storage, config *models.RunConfig, outcome *Outcome) {
	d := detector.New()

	docs := make([]manifest.DocumentResult, 0, len(outcome.Documents))
	for _, doc := range outcome.Documents {
		md := manifest.DocumentResult{
			Path:       doc.Path,
			WordCounts: doc.WordCounts,
			Error:      doc.Error,
			ErrorType:  doc.ErrorType,
		}
		if doc.Error == nil {
			if raw, err := s.ReadFile(doc.Path); err == nil {
				md.Metadata = d.Analyze(doc.Path, raw)
			} else {
				logger.Warn("Failed to read document for metadata", "path", doc.Path, "error", err)
			}
		}
		docs = append(docs, md)
	}

	reports := make([]manifest.ReportResult, 0, len(outcome.Reports))
	for _, r := range outcome.Reports {
		reports = append(reports, manifest.ReportResult{
			Kind:      string(r.Kind),
			Path:      r.Path,
			Lines:     r.Lines,
			Error:     r.Error,
			ErrorType: r.ErrorType,
		})
	}

	topN := config.TopKeywords
	if topN <= 0 {
		topN = models.DefaultTopKeywords
	}

	path, err := manifest.GenerateSummary(manifest.Run{
		RunID:      outcome.RunID,
		InputDir:   config.InputDir,
		OutputDir:  config.OutputDir,
		Elapsed:    outcome.Elapsed,
		TopN:       topN,
		WordCounts: outcome.WordCounts,
		Documents:  docs,
		Reports:    reports,
	}, session.SummaryName(outcome.RunID), s)
	if err != nil {
		logger.Error("Failed to generate run summary", "error", err)
		outcome.SummaryErr = err
		return
	}

	outcome.SummaryPath = path
	logger.Info("Run summary saved", "path", path)
}

func exportRun(logger *slog.Logger, config *models.RunConfig, outcome *Outcome) {
	database, err := db.Open(config.SQLitePath)
	if err != nil {
		logger.Error("Failed to open database", "path", config.SQLitePath, "error", err)
		outcome.ExportErr = err
		return
	}
	defer database.Close()

	docs := make([]db.Document, 0, len(outcome.Documents))
	for _, doc := range outcome.Documents {
		d := db.Document{
			Path:         doc.Path,
			Status:       "success",
			TokenCount:   mapreduce.Total(doc.WordCounts),
			UniqueTokens: len(doc.WordCounts),
		}
		if doc.Error != nil {
			d.Status = "error"
			d.ErrorType = doc.ErrorType
			d.ErrorMessage = doc.Error.Error()
		}
		docs = append(docs, d)
	}

	runID, err := database.ExportRun(db.Run{
		RunKey:     outcome.RunID,
		InputDir:   config.InputDir,
		OutputDir:  config.OutputDir,
		Elapsed:    outcome.Elapsed,
		WordCounts: outcome.WordCounts,
		Documents:  docs,
	})
	if err != nil {
		logger.Error("Failed to export run", "path", config.SQLitePath, "error", err)
		outcome.ExportErr = err
		return
	}

	logger.Info("Run exported", "path", config.SQLitePath, "run_id", runID)
}
