package cleanup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// lineBreakMarker is the OCR line-wrap marker: a word split across lines
// with a trailing hyphen.
const lineBreakMarker = "-\n"

// RejoinLinebreaks repairs words split across lines. The text is split on
// the hyphen+newline marker; at each boundary the last word before the break
// and the first word after it are joined without the hyphen, and the pair
// (last-\nfirst, lastfirst) is logged. A boundary with no word on either
// side is left alone: the literal hyphen is restored and nothing is logged.
// Returns the repaired text and the number of boundaries repaired.
func RejoinLinebreaks(text string, log *CorrectionLog) (string, int) {
	parts := strings.Split(text, lineBreakMarker)
	if len(parts) == 1 {
		return text, 0
	}

	var sb strings.Builder
	sb.Grow(len(text))
	sb.WriteString(parts[0])
	corrections := 0

	for _, part := range parts[1:] {
		last := lastField(sb.String())
		first := firstField(part)
		if last != "" && first != "" {
			log.Append(last+lineBreakMarker+first, last+first)
			sb.WriteString(part)
			corrections++
		} else {
			sb.WriteString("-")
			sb.WriteString(part)
		}
	}
	return sb.String(), corrections
}

// lastField returns the final whitespace-delimited word of s, or "".
func lastField(s string) string {
	end := len(s)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	start := end
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsSpace(r) {
			break
		}
		start -= size
	}
	return s[start:end]
}

// firstField returns the leading whitespace-delimited word of s, or "".
func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
