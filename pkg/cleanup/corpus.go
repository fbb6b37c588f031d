package cleanup

import (
	"github.com/corpustools/ocrclean/models"
	"github.com/corpustools/ocrclean/pkg/rules"
)

// Options tunes a corpus-level cleanup run.
type Options struct {
	// KeepHeaders skips running-header detection and removal entirely.
	// All other stages still run.
	KeepHeaders bool
	// SimilarityThreshold for header detection; DefaultSimilarityThreshold
	// when zero.
	SimilarityThreshold float64
}

// CleanPages cleans an ordered list of a work's pages, preserving order.
// Header detection runs once over the whole list before any page is
// cleaned: a line can only be judged "running" by its repetition across
// pages, and the header set must be complete before page-level stripping
// begins. The same header set is applied to every page.
func CleanPages(pages []models.Page, reg *rules.Registry, opts Options) []models.CleanedPage {
	var headers map[string]struct{}
	if !opts.KeepHeaders {
		headers = IdentifyHeaders(pages, opts.SimilarityThreshold)
	}

	cleaned := make([]models.CleanedPage, len(pages))
	for i, page := range pages {
		cleaned[i] = CleanPage(page, headers, reg)
	}
	return cleaned
}
