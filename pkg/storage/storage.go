// Package storage reads and writes the corpus page files: JSON Lines, one
// page record per line, optionally gzip-compressed (.gz suffix).
package storage

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corpustools/ocrclean/models"
)

// Page texts can be long; size the line scanner generously.
const maxLineSize = 16 * 1024 * 1024

// ReadPages loads an ordered page list from a JSONL file. Blank lines are
// skipped; a malformed line is an error, not noise.
func ReadPages(path string) ([]models.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pages file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	var pages []models.Page
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var page models.Page
		if err := json.Unmarshal([]byte(line), &page); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}
		pages = append(pages, page)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pages file: %w", err)
	}
	return pages, nil
}

// WriteCleanedPages writes cleaned page records as JSONL, gzip-compressed
// when the path ends in .gz.
func WriteCleanedPages(path string, pages []models.CleanedPage) error {
	return writeJSONL(path, pages)
}

// WritePages writes raw page records as JSONL, gzip-compressed when the
// path ends in .gz. Used by the ingest command.
func WritePages(path string, pages []models.Page) error {
	return writeJSONL(path, pages)
}

func writeJSONL[T any](path string, records []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}

	enc := json.NewEncoder(w)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to flush gzip stream: %w", err)
		}
	}
	return nil
}
