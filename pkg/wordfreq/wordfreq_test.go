package wordfreq

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTableOracle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en_freq.txt")
	content := "the 0.053\n" +
		"Fame\t2e-6\n" +
		"malformed\n" +
		"bogus notanumber\n" +
		"sword 1.2e-5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	oracle := NewTableOracle()
	if err := oracle.LoadTable("en", path); err != nil {
		t.Fatalf("LoadTable() error: %v", err)
	}

	tests := []struct {
		word string
		want float64
	}{
		{"the", 0.053},
		{"fame", 2e-6}, // table entries are case-folded
		{"sword", 1.2e-5},
		{"unknownword", 0},
	}
	for _, tt := range tests {
		got, err := oracle.Frequency(tt.word, "en")
		if err != nil {
			t.Errorf("Frequency(%q) error: %v", tt.word, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Frequency(%q) = %g, want %g", tt.word, got, tt.want)
		}
	}
}

func TestTableOracleUnknownLanguage(t *testing.T) {
	oracle := NewTableOracle()
	if _, err := oracle.Frequency("word", "fr"); err == nil {
		t.Error("expected error for unloaded language")
	}
}
