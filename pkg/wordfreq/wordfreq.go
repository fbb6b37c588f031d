// Package wordfreq supplies word-frequency lookups for a reference language.
// The cleanup pipeline itself never consults it; only offline rule generation
// does, as a safety filter against correcting real words.
package wordfreq

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const scannerBufSize = 1024 * 1024

// Oracle answers how frequent a lowercase word is in a reference language,
// as a value in [0,1). A lookup failure (e.g. unknown language) is an error;
// an unknown word is simply frequency zero.
type Oracle interface {
	Frequency(word, lang string) (float64, error)
}

// TableOracle is a file-backed Oracle. Each language table is a plain text
// file with one "word<whitespace>frequency" entry per line.
type TableOracle struct {
	tables map[string]map[string]float64
}

// NewTableOracle returns an oracle with no languages loaded.
func NewTableOracle() *TableOracle {
	return &TableOracle{tables: make(map[string]map[string]float64)}
}

// LoadTable reads a frequency table for a language code. Malformed lines are
// skipped; duplicate words keep the last value.
func (o *TableOracle) LoadTable(lang, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open frequency table: %w", err)
	}
	defer f.Close()

	table := make(map[string]float64)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, scannerBufSize), scannerBufSize)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		table[strings.ToLower(fields[0])] = freq
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read frequency table: %w", err)
	}
	o.tables[lang] = table
	return nil
}

// Frequency implements Oracle. Looking up a language that was never loaded
// is an error; this is an offline, supervised path and should halt loudly.
func (o *TableOracle) Frequency(word, lang string) (float64, error) {
	table, ok := o.tables[lang]
	if !ok {
		return 0, fmt.Errorf("no frequency table loaded for language %q", lang)
	}
	return table[strings.ToLower(word)], nil
}
