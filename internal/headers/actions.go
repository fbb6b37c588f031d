// Package headers implements the identify-only command: report running
// headers per work without cleaning anything.
package headers

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/corpustools/ocrclean/models"
	"github.com/corpustools/ocrclean/pkg/cleanup"
	"github.com/corpustools/ocrclean/pkg/storage"
)

// Action detects running headers for every work in a pages file and prints
// them as YAML, keyed by work id.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	pages, err := storage.ReadPages(c.String("pages"))
	if err != nil {
		return err
	}
	works := models.GroupPages(pages)
	logger.Info("Loaded corpus", "pages", len(pages), "works", len(works))

	threshold := c.Float64("threshold")
	report := make(map[string][]string, len(works))
	for _, work := range works {
		headers := cleanup.IdentifyHeaders(work.Pages, threshold)
		if len(headers) == 0 {
			continue
		}
		lines := make([]string, 0, len(headers))
		for line := range headers {
			lines = append(lines, line)
		}
		sort.Strings(lines)
		report[work.ID] = lines
	}

	yamlBytes, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
