// Package report renders word counts as "<word>: <count>" text files.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dtnitsch/html-wordfreq/pkg/mapreduce"
	"github.com/dtnitsch/html-wordfreq/pkg/storage"
)

const (
	AlphabeticalFile = "consolidated_alphabetical.txt"
	FrequencyFile    = "consolidated_frequency.txt"
)

// BOM is the UTF-8 byte-order mark written at the start of every report.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrCreateReport is returned by Save when the destination cannot be opened.
var ErrCreateReport = errors.New("cannot create report")

// Kind selects the ordering of a report.
type Kind string

const (
	KindAlphabetical Kind = "alphabetical"
	KindFrequency    Kind = "frequency"
)

// FileName returns the output file name for the report kind.
func (k Kind) FileName() string {
	if k == KindFrequency {
		return FrequencyFile
	}
	return AlphabeticalFile
}

// Order returns the entries of counts in the order the kind requires.
func (k Kind) Order(counts map[string]int) []mapreduce.WordCount {
	if k == KindFrequency {
		return mapreduce.ByFrequency(counts)
	}
	return mapreduce.Alphabetical(counts)
}

// Write emits the BOM followed by one "<word>: <count>\n" line per entry.
// It returns the number of lines written.
func Write(w io.Writer, entries []mapreduce.WordCount) (int, error) {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(BOM); err != nil {
		return 0, fmt.Errorf("error writing byte-order mark: %w", err)
	}

	lines := 0
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s: %d\n", e.Word, e.Count); err != nil {
			return lines, fmt.Errorf("error writing report line: %w", err)
		}
		lines++
	}

	if err := bw.Flush(); err != nil {
		return lines, fmt.Errorf("error flushing report: %w", err)
	}
	return lines, nil
}

// Save writes entries to filePath. An open failure is wrapped in ErrCreateReport.
func Save(s *storage.Storage, filePath string, entries []mapreduce.WordCount) (int, error) {
	f, err := s.CreateFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrCreateReport, filePath, err)
	}

	lines, err := Write(f, entries)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("error closing report: %w", closeErr)
	}
	return lines, err
}
