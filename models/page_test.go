package models

import (
	"encoding/json"
	"testing"
)

func TestPageUnmarshalSplitsMetadata(t *testing.T) {
	record := `{"page_id":"W42_0001","page_text":"ſome text","page_num":1,"source":"ECCO"}`

	var page Page
	if err := json.Unmarshal([]byte(record), &page); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if page.ID != "W42_0001" || page.Text != "ſome text" {
		t.Errorf("page = (%q, %q), want (W42_0001, ſome text)", page.ID, page.Text)
	}
	if page.WorkID() != "W42" {
		t.Errorf("WorkID() = %q, want W42", page.WorkID())
	}
	if page.Meta["source"] != "ECCO" {
		t.Errorf("meta = %v, want source preserved", page.Meta)
	}
	if _, ok := page.Meta["page_text"]; ok {
		t.Error("page_text leaked into metadata")
	}
}

func TestPageUnmarshalMissingText(t *testing.T) {
	var page Page
	if err := json.Unmarshal([]byte(`{"page_id":"W42_0001"}`), &page); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if page.Text != "" {
		t.Errorf("text = %q, want empty", page.Text)
	}
}

func TestPageUnmarshalWrongType(t *testing.T) {
	var page Page
	if err := json.Unmarshal([]byte(`{"page_text": 5}`), &page); err == nil {
		t.Error("expected error for non-string page_text")
	}
}

func TestCleanedPageMarshal(t *testing.T) {
	cp := CleanedPage{
		Text:     "Those judged.",
		TextOrig: "Thoſe judged.",
		Tokens:   []string{"those", "judged"},
		LongS:    []Correction{{Original: "Thoſe", Corrected: "Those"}},
		Meta:     map[string]any{"page_id": "W42_0001", "year": 1744},
	}

	data, err := json.Marshal(cp)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("round trip: %v", err)
	}

	if raw["page_text"] != "Those judged." || raw["page_text_orig"] != "Thoſe judged." {
		t.Errorf("text fields = %v / %v", raw["page_text"], raw["page_text_orig"])
	}
	if raw["page_id"] != "W42_0001" {
		t.Errorf("page_id = %v, want W42_0001", raw["page_id"])
	}
	longS, ok := raw["page_corrections_long_s"].([]any)
	if !ok || len(longS) != 1 {
		t.Fatalf("page_corrections_long_s = %v, want one pair", raw["page_corrections_long_s"])
	}
	pair, ok := longS[0].([]any)
	if !ok || len(pair) != 2 || pair[0] != "Thoſe" || pair[1] != "Those" {
		t.Errorf("pair = %v, want [Thoſe Those]", longS[0])
	}
	// Empty logs serialize as empty arrays, not null.
	if _, ok := raw["page_corrections_headers"].([]any); !ok {
		t.Errorf("page_corrections_headers = %v, want empty array", raw["page_corrections_headers"])
	}
}

func TestGroupPages(t *testing.T) {
	pages := []Page{
		{ID: "W1_0001"}, {ID: "W1_0002"},
		{ID: "W2_0001"},
		{ID: "W1_0003"}, // out-of-band page still lands in its work
	}
	works := GroupPages(pages)
	if len(works) != 2 {
		t.Fatalf("got %d works, want 2", len(works))
	}
	if works[0].ID != "W1" || len(works[0].Pages) != 3 {
		t.Errorf("works[0] = (%s, %d pages), want (W1, 3)", works[0].ID, len(works[0].Pages))
	}
	if works[1].ID != "W2" || len(works[1].Pages) != 1 {
		t.Errorf("works[1] = (%s, %d pages), want (W2, 1)", works[1].ID, len(works[1].Pages))
	}
	if works[0].Pages[2].ID != "W1_0003" {
		t.Errorf("page order not preserved: %v", works[0].Pages)
	}
}

func TestGroupPagesNoUnderscore(t *testing.T) {
	works := GroupPages([]Page{{ID: "bare"}})
	if len(works) != 1 || works[0].ID != "bare" {
		t.Errorf("works = %v, want single work 'bare'", works)
	}
}
