package cleanup

import "github.com/corpustools/ocrclean/models"

// CorrectionLog collects (original, corrected) pairs with set semantics
// while keeping first-insertion order, so correction logs are reproducible
// across runs.
type CorrectionLog struct {
	seen  map[models.Correction]struct{}
	pairs []models.Correction
}

// Append records a pair unless an identical pair was already recorded.
func (l *CorrectionLog) Append(original, corrected string) {
	c := models.Correction{Original: original, Corrected: corrected}
	if l.seen == nil {
		l.seen = make(map[models.Correction]struct{})
	}
	if _, ok := l.seen[c]; ok {
		return
	}
	l.seen[c] = struct{}{}
	l.pairs = append(l.pairs, c)
}

// Pairs returns the recorded pairs in insertion order.
func (l *CorrectionLog) Pairs() []models.Correction {
	return l.pairs
}

// Len returns the number of distinct pairs recorded.
func (l *CorrectionLog) Len() int {
	return len(l.pairs)
}
