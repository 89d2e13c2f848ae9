package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GenerateRunID creates a timestamp-first run ID from the list of input documents.
// Format: YYYY-MM-DDTHH-MM-SS-{hash}
// Hash is derived from the sorted document names.
func GenerateRunID(paths []string, now time.Time) string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		h.Write([]byte(name))
		h.Write([]byte("\n"))
	}
	shortHash := hex.EncodeToString(h.Sum(nil)[:6]) // 12 char hex

	return fmt.Sprintf("%s-%s", now.Format("2006-01-02T15-04-05"), shortHash)
}

// SanitizeRunID makes a user-supplied run ID safe to embed in a file name.
func SanitizeRunID(id string) string {
	id = strings.TrimSpace(id)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, id)
}

// TimingLogName returns the file name of the timing log for a run.
func TimingLogName(runID string) string {
	return fmt.Sprintf("timing_%s.txt", runID)
}

// SummaryName returns the file name of the YAML run summary.
func SummaryName(runID string) string {
	return fmt.Sprintf("summary-%s.yaml", runID)
}
