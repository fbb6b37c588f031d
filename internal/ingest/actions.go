// Package ingest implements the ECCO XML ingest command: convert a work's
// source-edition XML pair into corpus page records.
package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/corpustools/ocrclean/pkg/ecco"
	"github.com/corpustools/ocrclean/pkg/storage"
)

// EccoAction parses an ECCO text XML (plus optional metadata XML) and
// writes page records as JSONL.
func EccoAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	workID := c.String("work-id")
	if workID == "" {
		return fmt.Errorf("work-id is required")
	}

	textFile, err := os.Open(c.String("text"))
	if err != nil {
		return fmt.Errorf("failed to open text xml: %w", err)
	}
	defer textFile.Close()

	var meta io.Reader
	if metaPath := c.String("meta"); metaPath != "" {
		metaFile, err := os.Open(metaPath)
		if err != nil {
			return fmt.Errorf("failed to open metadata xml: %w", err)
		}
		defer metaFile.Close()
		meta = metaFile
	}

	pages, err := ecco.ParsePages(workID, textFile, meta)
	if err != nil {
		return err
	}
	logger.Info("Parsed ECCO work", "work_id", workID, "pages", len(pages))

	if err := storage.WritePages(c.String("out"), pages); err != nil {
		return err
	}
	logger.Info("Wrote page records", "path", c.String("out"))
	return nil
}
