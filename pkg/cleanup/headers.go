package cleanup

import (
	"strings"
	"unicode"

	"github.com/xrash/smetrics"

	"github.com/corpustools/ocrclean/models"
)

// DefaultSimilarityThreshold is the fuzzy-match cutoff (0-100 scale) above
// which two lines count as the same running header.
const DefaultSimilarityThreshold = 80

// headerWindow is how many pages before and after a page are searched for a
// recurring header line.
const headerWindow = 2

// maxHeaderLines caps how many substantial lines per page are considered
// header candidates.
const maxHeaderLines = 2

// IdentifyHeaders finds running headers and footers across a work's ordered
// pages. A header is a substantial line near the top of a page that
// fuzzy-matches a line on a nearby page (within headerWindow pages either
// side). Comparison is done on the alphabetic characters only, so embedded
// page numbers and punctuation do not defeat the match. The returned set
// contains the original line texts, collapsed across pages: once a line is
// judged a header anywhere in the work it is stripped everywhere it occurs
// verbatim, even outside the window where it was detected. Works of zero or one pages have no
// comparison partners and yield an empty set.
func IdentifyHeaders(pages []models.Page, threshold float64) map[string]struct{} {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	type occurrence struct {
		page int
		line string
	}
	seen := make(map[occurrence]struct{})
	headers := make(map[string]struct{})

	substantial := make([][]string, len(pages))
	for i, page := range pages {
		substantial[i] = substantialLines(page.Text)
	}

	for i := range pages {
		start := max(0, i-headerWindow)
		end := min(len(pages), i+headerWindow+1)

		for j := start; j < end; j++ {
			if j == i {
				continue
			}
			for _, line := range substantial[i] {
				cleaned := stripNonAlpha(line)
				for _, other := range substantial[j] {
					if similarityRatio(cleaned, stripNonAlpha(other)) > threshold {
						key := occurrence{page: i, line: line}
						if _, ok := seen[key]; !ok {
							seen[key] = struct{}{}
							headers[line] = struct{}{}
						}
						break
					}
				}
			}
		}
	}
	return headers
}

// substantialLines returns up to the first maxHeaderLines lines of the page
// worth comparing. A line is insubstantial when its trimmed form is shorter
// than five characters or is purely digits, which filters out blank lines
// and bare page numbers. The returned lines are the untrimmed originals.
func substantialLines(pageText string) []string {
	var lines []string
	for _, line := range strings.Split(pageText, "\n") {
		trimmed := strings.TrimSpace(line)
		if len([]rune(trimmed)) < 5 || isAllDigits(trimmed) {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxHeaderLines {
			break
		}
	}
	return lines
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// stripNonAlpha keeps only the letters of a line.
func stripNonAlpha(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// similarityRatio returns a normalized similarity in [0,100]. With
// substitutions costing 2, the Wagner-Fischer distance equals
// len(a)+len(b)-2*LCS(a,b), so the ratio reduces to 2*LCS/(len(a)+len(b)),
// the classic longest-common-subsequence match ratio. Two empty strings are
// identical.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 100
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 100 * (1 - float64(dist)/float64(len(a)+len(b)))
}
