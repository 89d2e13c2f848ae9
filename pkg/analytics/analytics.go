package analytics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrOpenDocument is returned by TokenizeFile when the document cannot be opened.
var ErrOpenDocument = errors.New("cannot open document")

// maxFieldSize caps how large a single whitespace-delimited field may grow.
const maxFieldSize = 64 * 1024 * 1024

type Analytics struct{}

// TokenizeFile counts the cleaned tokens of the document at path.
// On open failure it returns an empty map and an error wrapping ErrOpenDocument,
// so callers can fold the result unconditionally.
func (a *Analytics) TokenizeFile(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return map[string]int{}, fmt.Errorf("%w %s: %w", ErrOpenDocument, path, err)
	}
	defer f.Close()

	return a.WordFrequency(f)
}

// WordFrequency reads whitespace-delimited fields from r, strips every
// non-alphanumeric byte from each one and counts the non-empty results.
// On a read error the counts gathered so far are returned with the error.
func (a *Analytics) WordFrequency(r io.Reader) (map[string]int, error) {
	frequencies := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFieldSize)
	scanner.Split(ScanFields)

	for scanner.Scan() {
		word := CleanToken(scanner.Bytes())
		if word == "" {
			continue
		}
		frequencies[word]++
	}

	if err := scanner.Err(); err != nil {
		return frequencies, fmt.Errorf("error reading document: %w", err)
	}

	return frequencies, nil
}

// CleanToken deletes every byte that is not an ASCII letter or digit.
func CleanToken(field []byte) string {
	buf := make([]byte, 0, len(field))
	for _, c := range field {
		if isAlnum(c) {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// IsToken reports whether s is a non-empty run of ASCII letters and digits.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) {
			return false
		}
	}
	return true
}

// ScanFields is a bufio.SplitFunc like bufio.ScanWords, except that only the
// ASCII whitespace bytes separate fields. Multi-byte UTF-8 spaces stay inside
// the field and are later removed by CleanToken.
func ScanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}

	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			return i + 1, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// Request more data.
	return start, nil, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
