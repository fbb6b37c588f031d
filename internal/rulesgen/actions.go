// Package rulesgen implements the offline generate-rules command that
// derives the f/ſ substitution table from a long-s correction log.
package rulesgen

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/corpustools/ocrclean/pkg/rules"
	"github.com/corpustools/ocrclean/pkg/wordfreq"
)

// Action generates the accepted and disregarded f/ſ tables from a source
// long-s log, gated by a file-backed word-frequency oracle.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	lang := c.String("lang")
	oracle := wordfreq.NewTableOracle()
	if err := oracle.LoadTable(lang, c.String("freq-table")); err != nil {
		return err
	}

	skipWords := make(map[string]struct{})
	for _, word := range strings.Split(c.String("skip-words"), ",") {
		if word = strings.TrimSpace(word); word != "" {
			skipWords[word] = struct{}{}
		}
	}

	opts := rules.GenerateOptions{
		SkipWords:          skipWords,
		FrequencyThreshold: c.Float64("threshold"),
		Language:           lang,
	}
	logger.Info("Generating f/s hack table",
		"source", c.String("source"), "threshold", opts.FrequencyThreshold, "lang", lang)

	stats, err := rules.GenerateFSHack(oracle, c.String("source"), c.String("out"), c.String("disregard"), opts)
	if err != nil {
		return err
	}
	logger.Info("Generation finished",
		"accepted", stats.Accepted, "disregarded", stats.Disregarded, "skipped", stats.Skipped)

	yamlBytes, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
