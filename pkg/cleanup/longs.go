package cleanup

import "strings"

// longS is the historic long-s glyph used in pre-19th-century printing,
// which OCR frequently misreads.
const longS = "ſ"

// ReplaceLongS substitutes every long-s glyph with a modern "s" and logs the
// changed words as (original, corrected) pairs. Returns the new text and the
// number of distinct words changed. Running it on already-normalized text is
// a no-op with an empty log.
func ReplaceLongS(text string, log *CorrectionLog) (string, int) {
	corrected := strings.ReplaceAll(text, longS, "s")
	if corrected == text {
		return text, 0
	}

	// Words are compared on whitespace-split tokens: any split word still
	// containing the glyph is a changed word. Deduplicate in first-seen
	// order so the log is stable.
	corrections := 0
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(text) {
		if !strings.Contains(word, longS) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		log.Append(word, strings.ReplaceAll(word, longS, "s"))
		corrections++
	}
	return corrected, corrections
}
