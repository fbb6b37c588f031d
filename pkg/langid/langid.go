// Package langid detects the dominant language of a work's text. The f/ſ
// correction tables are English-specific, so the clean command uses this to
// flag works where applying them would be questionable.
package langid

import (
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"

	"github.com/corpustools/ocrclean/models"
)

// sampleLimit bounds how much text per work is fed to the detector; a few
// pages are plenty for a confident call.
const sampleLimit = 4000

// Candidate languages of the digitized collection.
var languages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Latin,
	lingua.Italian,
	lingua.Spanish,
	lingua.Dutch,
}

// Detector wraps a lingua language detector restricted to the collection's
// candidate languages. Build one per process; detection is stateless.
type Detector struct {
	inner lingua.LanguageDetector
}

// New builds a detector.
func New() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the lowercase ISO 639-1 code of the text's language, or
// ("", false) when no confident call can be made.
func (d *Detector) Detect(text string) (string, bool) {
	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// DetectWork samples the leading pages of a work and detects their dominant
// language.
func (d *Detector) DetectWork(pages []models.Page) (string, bool) {
	var sb strings.Builder
	for _, page := range pages {
		if sb.Len() >= sampleLimit {
			break
		}
		sb.WriteString(page.Text)
		sb.WriteString("\n")
	}
	sample := sb.String()
	if len(sample) > sampleLimit {
		cut := sampleLimit
		for cut > 0 && !utf8.RuneStart(sample[cut]) {
			cut--
		}
		sample = sample[:cut]
	}
	if strings.TrimSpace(sample) == "" {
		return "", false
	}
	return d.Detect(sample)
}
