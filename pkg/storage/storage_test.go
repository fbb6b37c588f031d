package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/corpustools/ocrclean/models"
)

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestReadPagesRoundTrip(t *testing.T) {
	for _, name := range []string{"pages.jsonl", "pages.jsonl.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			in := []models.Page{
				{ID: "w1_0001", Text: "firſt page", Meta: map[string]any{"source": "ECCO"}},
				{ID: "w1_0002", Text: "second-\npage", Meta: map[string]any{}},
				{ID: "w2_0001", Text: "", Meta: map[string]any{}},
			}
			if err := WritePages(path, in); err != nil {
				t.Fatalf("WritePages() error: %v", err)
			}

			out, err := ReadPages(path)
			if err != nil {
				t.Fatalf("ReadPages() error: %v", err)
			}
			if len(out) != len(in) {
				t.Fatalf("got %d pages, want %d", len(out), len(in))
			}
			for i := range in {
				if out[i].ID != in[i].ID || out[i].Text != in[i].Text {
					t.Errorf("page %d = (%q, %q), want (%q, %q)", i, out[i].ID, out[i].Text, in[i].ID, in[i].Text)
				}
			}
			if out[0].Meta["source"] != "ECCO" {
				t.Errorf("metadata lost: %v", out[0].Meta)
			}
		})
	}
}

func TestReadPagesMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.jsonl")
	in := []models.Page{{ID: "w1_0001", Text: "fine"}}
	if err := WritePages(path, in); err != nil {
		t.Fatal(err)
	}
	// Append garbage by writing a fresh file with a broken line.
	if err := writeRaw(path, `{"page_id": "w1_0001", "page_text": "fine"}`+"\nnot json\n"); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadPages(path); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestWriteCleanedPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.jsonl")
	cleaned := []models.CleanedPage{
		{
			Text:     "some text",
			TextOrig: "ſome text",
			Tokens:   []string{"some", "text"},
			LongS:    []models.Correction{{Original: "ſome", Corrected: "some"}},
			Meta:     map[string]any{"page_id": "w1_0001"},
		},
	}
	if err := WriteCleanedPages(path, cleaned); err != nil {
		t.Fatalf("WriteCleanedPages() error: %v", err)
	}

	pages, err := ReadPages(path)
	if err != nil {
		t.Fatalf("ReadPages() error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d records, want 1", len(pages))
	}
	if pages[0].ID != "w1_0001" || pages[0].Text != "some text" {
		t.Errorf("record = (%q, %q), want (w1_0001, some text)", pages[0].ID, pages[0].Text)
	}
	if pages[0].Meta["page_text_orig"] != "ſome text" {
		t.Errorf("page_text_orig = %v, want ſome text", pages[0].Meta["page_text_orig"])
	}
}
