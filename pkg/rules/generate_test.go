package rules

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeOracle serves canned frequencies and fails on demand.
type fakeOracle struct {
	freqs map[string]float64
	err   error
}

func (f *fakeOracle) Frequency(word, lang string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.freqs[word], nil
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestGenerateFSHackFrequencyGate(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "long_s_log.tsv")
	out := filepath.Join(dir, "accepted.tsv")
	disregard := filepath.Join(dir, "disregarded.tsv")

	// "fame" is a real English word (above threshold), "moft" is not.
	content := "incorrect\tcorrect\n" +
		"ſame\tsame\n" +
		"moſt\tmost\n"
	if err := os.WriteFile(source, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	oracle := &fakeOracle{freqs: map[string]float64{"fame": 2e-6, "moft": 5e-7}}
	stats, err := GenerateFSHack(oracle, source, out, disregard, GenerateOptions{FrequencyThreshold: 1e-6})
	if err != nil {
		t.Fatalf("GenerateFSHack() error: %v", err)
	}
	if stats.Accepted != 1 || stats.Disregarded != 1 {
		t.Errorf("stats = %+v, want 1 accepted, 1 disregarded", stats)
	}

	accepted := readLines(t, out)
	if len(accepted) != 1 || accepted[0] != "moft\tmost" {
		t.Errorf("accepted = %v, want [moft\\tmost]", accepted)
	}
	disregarded := readLines(t, disregard)
	if len(disregarded) != 1 || disregarded[0] != "fame\tsame" {
		t.Errorf("disregarded = %v, want [fame\\tsame]", disregarded)
	}
}

func TestGenerateFSHackDeduplicatesAndSkips(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "long_s_log.tsv")
	out := filepath.Join(dir, "accepted.tsv")
	disregard := filepath.Join(dir, "disregarded.tsv")

	content := "incorrect\tcorrect\n" +
		"moſt\tmost\n" +
		"moſt.\tmost,\n" + // trailing punctuation stripped, then a duplicate
		"ſkipme\tskipme\n" +
		"broken-\tbroken-\n" // trailing hyphen must survive
	if err := os.WriteFile(source, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	oracle := &fakeOracle{freqs: map[string]float64{}}
	stats, err := GenerateFSHack(oracle, source, out, disregard, GenerateOptions{
		SkipWords: map[string]struct{}{"fkipme": {}},
	})
	if err != nil {
		t.Fatalf("GenerateFSHack() error: %v", err)
	}
	if stats.Skipped != 2 {
		t.Errorf("stats.Skipped = %d, want 2 (one skip word, one duplicate)", stats.Skipped)
	}

	accepted := readLines(t, out)
	want := []string{"moft\tmost", "broken-\tbroken-"}
	if len(accepted) != len(want) {
		t.Fatalf("accepted = %v, want %v", accepted, want)
	}
	for i := range want {
		if accepted[i] != want[i] {
			t.Errorf("accepted[%d] = %q, want %q", i, accepted[i], want[i])
		}
	}
}

func TestGenerateFSHackOracleFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "long_s_log.tsv")
	if err := os.WriteFile(source, []byte("incorrect\tcorrect\nmoſt\tmost\n"), 0644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("oracle offline")
	_, err := GenerateFSHack(&fakeOracle{err: boom}, source,
		filepath.Join(dir, "out.tsv"), filepath.Join(dir, "dis.tsv"), GenerateOptions{})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
}

func TestStripTrailingPunct(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"moſt.", "moſt"},
		{"word,!  ", "word"},
		{"broken-", "broken-"},
		{"(nested);", "(nested"},
		{"clean", "clean"},
	}
	for _, tt := range tests {
		if got := StripTrailingPunct(tt.in); got != tt.want {
			t.Errorf("StripTrailingPunct(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
