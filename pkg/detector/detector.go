package detector

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// minLanguageSample is the shortest text worth running language detection on.
const minLanguageSample = 20

// DocumentMetadata describes one input document for the run summary.
// It is informational only and never influences token counts.
type DocumentMetadata struct {
	Title              string
	Excerpt            string
	Language           string // ISO-639-1, lowercase
	LanguageConfidence float64
}

// Detector extracts titles, excerpts and languages from HTML documents.
type Detector struct {
	languages lingua.LanguageDetector
}

// New builds a Detector restricted to a small set of common languages
// to keep lingua's model footprint low.
func New() *Detector {
	languages := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Spanish, lingua.French, lingua.German, lingua.Portuguese, lingua.Italian).
		Build()
	return &Detector{languages: languages}
}

// Analyze returns metadata for the document at path whose raw bytes are raw.
func (d *Detector) Analyze(path string, raw []byte) *DocumentMetadata {
	md := &DocumentMetadata{}

	// Let go-readability find the article title and description
	if abs, err := filepath.Abs(path); err == nil {
		pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
		parser := readability.NewParser()
		article, err := parser.Parse(bytes.NewReader(raw), pageURL)
		if err == nil {
			md.Title = normalizeText(article.Title)
			md.Excerpt = normalizeText(article.Excerpt)
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err == nil {
		if md.Title == "" {
			md.Title = normalizeText(doc.Find("title").First().Text())
		}
		md.Language, md.LanguageConfidence = d.detectLanguage(doc.Find("body").Text())
	}

	if md.Title == "" {
		md.Title = titleFromFilename(path)
	}

	return md
}

func (d *Detector) detectLanguage(text string) (string, float64) {
	text = normalizeText(text)
	if len(text) < minLanguageSample {
		return "", 0
	}

	language, ok := d.languages.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}
	confidence := d.languages.ComputeLanguageConfidence(text, language)
	return strings.ToLower(language.IsoCode639_1().String()), confidence
}

// normalizeText collapses all whitespace runs into single spaces.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

func titleFromFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}
