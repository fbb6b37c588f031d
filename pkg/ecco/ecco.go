// Package ecco extracts page records from ECCO source-edition XML. A work
// ships as a pair of files: a text file with <page id="..."><ocrtext>
// elements, and a metadata file with per-page <pageid>, <assetid>,
// <ocrlanguage>, <ocr> and <imagelink> fields. The two are joined on the
// page id.
package ecco

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/corpustools/ocrclean/models"
)

var metaFields = []string{"pageid", "assetid", "ocrlanguage", "ocr", "imagelink"}

// ParsePages reads an ECCO text XML (and an optional metadata XML; pass nil
// to skip it) and returns ordered page records. Page ids are prefixed with
// the work id, '_'-separated, matching the corpus page-id convention.
func ParsePages(workID string, text io.Reader, meta io.Reader) ([]models.Page, error) {
	textDoc, err := goquery.NewDocumentFromReader(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text xml: %w", err)
	}

	metaByID := map[string]map[string]any{}
	if meta != nil {
		metaDoc, err := goquery.NewDocumentFromReader(meta)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metadata xml: %w", err)
		}
		metaDoc.Find("page").Each(func(_ int, s *goquery.Selection) {
			fields := make(map[string]any, len(metaFields))
			for _, name := range metaFields {
				if v := strings.TrimSpace(s.Find(name).First().Text()); v != "" {
					fields[name] = v
				}
			}
			id, _ := fields["pageid"].(string)
			if id == "" {
				return
			}
			// OCR confidence is numeric when present.
			if raw, ok := fields["ocr"].(string); ok {
				if f, err := strconv.ParseFloat(raw, 64); err == nil {
					fields["ocr"] = f
				}
			}
			delete(fields, "pageid")
			metaByID[id] = fields
		})
	}

	var pages []models.Page
	textDoc.Find("page").Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("id")
		if !ok || id == "" {
			return
		}
		pageText := s.Find("ocrtext").First().Text()

		pageMeta := map[string]any{
			"page_num_orig": id,
			"page_len_char": len([]rune(strings.TrimSpace(pageText))),
			"page_len_word": len(strings.Fields(pageText)),
			"work_id":       workID,
		}
		for k, v := range metaByID[id] {
			pageMeta[k] = v
		}

		pages = append(pages, models.Page{
			ID:   workID + "_" + id,
			Text: pageText,
			Meta: pageMeta,
		})
	})
	if len(pages) == 0 {
		return nil, fmt.Errorf("no <page> elements found in text xml for work %s", workID)
	}
	return pages, nil
}
