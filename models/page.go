package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Page is one ordered unit of OCR text within a work. ID embeds the work id
// as a '_'-separated prefix (e.g. "A12345_00170"). Meta carries every other
// field of the source record untouched; the cleanup pipeline never mutates a
// Page, it produces a new CleanedPage.
type Page struct {
	ID   string
	Text string
	Meta map[string]any
}

// WorkID returns the work-id prefix of the page id.
func (p Page) WorkID() string {
	if i := strings.Index(p.ID, "_"); i >= 0 {
		return p.ID[:i]
	}
	return p.ID
}

// UnmarshalJSON accepts the corpus record format: "page_id" and "page_text"
// are lifted into the struct, all remaining keys land in Meta unchanged.
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Meta = make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "page_id":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("page_id: expected string, got %T", v)
			}
			p.ID = s
		case "page_text":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("page_text: expected string, got %T", v)
			}
			p.Text = s
		default:
			p.Meta[k] = v
		}
	}
	return nil
}

// MarshalJSON flattens the page back into a single record.
func (p Page) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(p.Meta)+2)
	for k, v := range p.Meta {
		raw[k] = v
	}
	raw["page_id"] = p.ID
	raw["page_text"] = p.Text
	return json.Marshal(raw)
}

// Correction is one (original, corrected) pair from a cleanup stage. Header
// removals use an empty Corrected. It serializes as a two-element array.
type Correction struct {
	Original  string
	Corrected string
}

func (c Correction) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{c.Original, c.Corrected})
}

func (c *Correction) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	c.Original, c.Corrected = pair[0], pair[1]
	return nil
}

// CleanedPage is the output record for a single cleaned page.
//
// TextOrig holds the text after header removal, linebreak rejoining and
// long-s normalization but before token-level corrections; it is "orig"
// relative to the dictionary-correction step, not the raw input.
type CleanedPage struct {
	Text       string
	TextOrig   string
	Tokens     []string
	Headers    []Correction
	Linebreaks []Correction
	LongS      []Correction
	OCR        []Correction
	FSHack     []Correction
	Meta       map[string]any
}

// MarshalJSON flattens the cleaned page into the corpus record format, with
// all pass-through metadata at the top level.
func (cp CleanedPage) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(cp.Meta)+8)
	for k, v := range cp.Meta {
		raw[k] = v
	}
	raw["page_text"] = cp.Text
	raw["page_text_orig"] = cp.TextOrig
	raw["page_tokens"] = emptySlice(cp.Tokens)
	raw["page_corrections_headers"] = emptyCorrections(cp.Headers)
	raw["page_corrections_linebreaks"] = emptyCorrections(cp.Linebreaks)
	raw["page_corrections_long_s"] = emptyCorrections(cp.LongS)
	raw["page_corrections_ocr"] = emptyCorrections(cp.OCR)
	raw["page_corrections_f_s"] = emptyCorrections(cp.FSHack)
	return json.Marshal(raw)
}

// NumCorrections counts all logged corrections across the five stages.
func (cp CleanedPage) NumCorrections() int {
	return len(cp.Headers) + len(cp.Linebreaks) + len(cp.LongS) + len(cp.OCR) + len(cp.FSHack)
}

func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyCorrections(c []Correction) []Correction {
	if c == nil {
		return []Correction{}
	}
	return c
}
