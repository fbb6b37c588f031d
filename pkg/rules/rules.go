// Package rules loads and generates the OCR correction-rule tables: a
// general wrong→right dictionary and the heuristic f/ſ substitution table
// derived from long-s correction logs.
package rules

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadCorrectionRules reads the general OCR correction dictionary. The file
// is UTF-8 text, one rule per line, tab-separated: incorrect, correct, then
// any number of ignored trailing fields. The first line is a header row and
// is skipped. Lines with fewer than two fields are skipped; a duplicate
// incorrect key keeps the last value.
func LoadCorrectionRules(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open correction rules: %w", err)
	}
	defer f.Close()

	rules := make(map[string]string)
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			continue
		}
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) < 2 {
			continue
		}
		rules[parts[0]] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read correction rules: %w", err)
	}
	return rules, nil
}

// LoadFSHackRules reads the generated f/ſ substitution table. Unlike the
// dictionary table the fields are separated by arbitrary whitespace and
// there is no header row; only the first two fields of each line are used.
func LoadFSHackRules(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open f/s hack rules: %w", err)
	}
	defer f.Close()

	rules := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}
		rules[parts[0]] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read f/s hack rules: %w", err)
	}
	return rules, nil
}
