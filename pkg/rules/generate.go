package rules

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/corpustools/ocrclean/pkg/wordfreq"
)

// DefaultFrequencyThreshold is the cutoff above which a candidate f-spelling
// counts as a real word and is disregarded.
const DefaultFrequencyThreshold = 1e-6

// Trailing sentence punctuation only. The hyphen is deliberately absent:
// a trailing hyphen marks a line-broken word and must survive.
var trailingPunctRe = regexp.MustCompile("[\\.,\\?!\"')(:;`]+\\s*$")

// StripTrailingPunct removes trailing sentence punctuation and spaces from a
// word, never a trailing hyphen.
func StripTrailingPunct(word string) string {
	return trailingPunctRe.ReplaceAllString(word, "")
}

// GenerateOptions tunes GenerateFSHack.
type GenerateOptions struct {
	// SkipWords are candidate f-spellings to exclude outright.
	SkipWords map[string]struct{}
	// FrequencyThreshold defaults to DefaultFrequencyThreshold when zero.
	FrequencyThreshold float64
	// Language is the frequency-oracle language code, "en" when empty.
	Language string
}

// GenerateStats reports what GenerateFSHack did.
type GenerateStats struct {
	Accepted    int `yaml:"accepted"`
	Disregarded int `yaml:"disregarded"`
	Skipped     int `yaml:"skipped"`
}

// GenerateFSHack derives the f/ſ substitution table from a long-s correction
// log. Each source row is a tab-separated (long-s form, correct form) pair,
// header line skipped. The long-s form with every ſ replaced by f is a
// plausible OCR misreading; the pair is accepted as a correction rule only
// when the oracle says the f-spelling is rarer than the threshold, so that
// legitimately common f-words ("found", "fame") are never miscorrected.
// Accepted pairs go to outputPath, too-common ones to disregardPath, both as
// headerless incorrect<TAB>correct TSV. Oracle failures propagate: this is a
// supervised batch step that should halt rather than carry on.
func GenerateFSHack(oracle wordfreq.Oracle, sourcePath, outputPath, disregardPath string, opts GenerateOptions) (GenerateStats, error) {
	var stats GenerateStats

	threshold := opts.FrequencyThreshold
	if threshold == 0 {
		threshold = DefaultFrequencyThreshold
	}
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return stats, fmt.Errorf("failed to open source table: %w", err)
	}
	defer src.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return stats, fmt.Errorf("failed to create output table: %w", err)
	}
	defer out.Close()

	disregard, err := os.Create(disregardPath)
	if err != nil {
		return stats, fmt.Errorf("failed to create disregard table: %w", err)
	}
	defer disregard.Close()

	type pair struct{ incorrect, correct string }
	seen := make(map[pair]struct{})

	scanner := bufio.NewScanner(src)
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}
		parts := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if len(parts) < 2 {
			continue
		}

		incorrect := StripTrailingPunct(strings.TrimSpace(parts[0]))
		correct := StripTrailingPunct(strings.TrimSpace(parts[1]))

		candidate := strings.ReplaceAll(incorrect, "ſ", "f")
		if _, skip := opts.SkipWords[candidate]; skip {
			stats.Skipped++
			continue
		}
		if _, dup := seen[pair{candidate, correct}]; dup {
			stats.Skipped++
			continue
		}

		freq, err := oracle.Frequency(strings.ToLower(candidate), lang)
		if err != nil {
			return stats, fmt.Errorf("frequency lookup for %q: %w", candidate, err)
		}
		if freq > threshold {
			if _, err := fmt.Fprintf(disregard, "%s\t%s\n", candidate, correct); err != nil {
				return stats, fmt.Errorf("failed to write disregard table: %w", err)
			}
			stats.Disregarded++
			continue
		}

		if _, err := fmt.Fprintf(out, "%s\t%s\n", candidate, correct); err != nil {
			return stats, fmt.Errorf("failed to write output table: %w", err)
		}
		seen[pair{candidate, correct}] = struct{}{}
		stats.Accepted++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read source table: %w", err)
	}
	return stats, nil
}
