package deck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"riddlegrid/internal/puzzle"
)

func TestDefaultDeck(t *testing.T) {
	d, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(d.Riddles) != puzzle.TileCount {
		t.Fatalf("riddles = %d", len(d.Riddles))
	}
	if d.Riddles[0].Answer != "library" || d.Riddles[8].Answer != "table" {
		t.Errorf("unexpected answers: %q %q", d.Riddles[0].Answer, d.Riddles[8].Answer)
	}
	if !strings.HasPrefix(d.ImageURL, "https://") {
		t.Errorf("image url = %q", d.ImageURL)
	}
	if len(d.Art) != 9 {
		t.Errorf("art lines = %d", len(d.Art))
	}
	if got := len(d.Answers()); got != 8 {
		t.Errorf("distinct answers = %d, want 8", got)
	}
}

func TestParseRejectsShortDeck(t *testing.T) {
	_, err := Parse([]byte("riddles:\n  - prompt: a\n    answer: b\n"))
	if !errors.Is(err, puzzle.ErrRiddleCount) {
		t.Fatalf("err = %v, want ErrRiddleCount", err)
	}
}

func TestParseRejectsEmptyAnswer(t *testing.T) {
	var b strings.Builder
	b.WriteString("riddles:\n")
	for i := range puzzle.TileCount {
		b.WriteString("  - prompt: q\n")
		if i == 3 {
			b.WriteString("    answer: \"  \"\n")
		} else {
			b.WriteString("    answer: a\n")
		}
	}
	_, err := Parse([]byte(b.String()))
	if err == nil || !strings.Contains(err.Error(), "riddle 3: empty answer") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseFillsDefaults(t *testing.T) {
	var b strings.Builder
	b.WriteString("riddles:\n")
	for range puzzle.TileCount {
		b.WriteString("  - {prompt: q, answer: a}\n")
	}
	d, err := Parse([]byte(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if d.Title == "" || d.ContinueLabel != "Continue" || d.CompleteTitle == "" {
		t.Errorf("defaults not applied: %+v", d)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("riddles: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	if err := os.WriteFile(path, defaultDeckYAML, 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Title != "Phase 1: Unlock the Map" {
		t.Errorf("title = %q", d.Title)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom deck")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	d, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Riddles) != puzzle.TileCount {
		t.Errorf("riddles = %d", len(d.Riddles))
	}
}
