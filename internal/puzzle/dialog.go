package puzzle

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Riddle is one prompt/answer pair hidden behind a tile.
type Riddle struct {
	Prompt string `yaml:"prompt" json:"prompt"`
	Answer string `yaml:"answer" json:"answer"`
}

// Dialog is the riddle dialog for one open tile. It only judges answers;
// the Screen decides what a correct answer changes.
type Dialog struct {
	Index    int
	Riddle   Riddle
	Draft    string
	Attempts int
}

// Check reports whether answer matches the expected answer, ignoring case
// and surrounding whitespace.
func (d Dialog) Check(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(d.Riddle.Answer))
}

// Near reports whether a wrong answer is one edit away from the expected one.
// It never makes an answer correct.
func (d Dialog) Near(answer string) bool {
	got := normalizeAnswer(answer)
	want := normalizeAnswer(d.Riddle.Answer)
	if got == "" || got == want || len(want) < 3 {
		return false
	}
	return levenshtein.ComputeDistance(got, want) == 1
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
