// Package deck loads the riddles and presentation text of a puzzle board.
package deck

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"riddlegrid/internal/puzzle"
)

//go:embed default.yaml
var defaultDeckYAML []byte

// LocalPath is checked when no explicit deck path is given.
const LocalPath = "configs/deck.yaml"

// Deck is the content injected into a puzzle screen.
type Deck struct {
	Title           string          `yaml:"title"`
	Subtitle        string          `yaml:"subtitle"`
	ImageURL        string          `yaml:"image_url"`
	CompleteTitle   string          `yaml:"complete_title"`
	CompleteMessage string          `yaml:"complete_message"`
	ContinueLabel   string          `yaml:"continue_label"`
	Art             []string        `yaml:"art"`
	Riddles         []puzzle.Riddle `yaml:"riddles"`
}

// Load reads a deck.
// Search order: customPath -> ./configs/deck.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error.
func Load(customPath string) (Deck, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Deck{}, fmt.Errorf("failed to read deck %s: %w", customPath, err)
		}
		d, err := Parse(data)
		if err != nil {
			return Deck{}, fmt.Errorf("deck %s: %w", filepath.Base(customPath), err)
		}
		return d, nil
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if d, err := Parse(data); err == nil {
			return d, nil
		}
	}

	return Default()
}

// Default returns the embedded deck.
func Default() (Deck, error) {
	return Parse(defaultDeckYAML)
}

// Parse decodes and validates a YAML deck, filling unset text with defaults.
func Parse(data []byte) (Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Deck{}, fmt.Errorf("failed to parse deck: %w", err)
	}
	d.applyDefaults()
	if err := d.Validate(); err != nil {
		return Deck{}, err
	}
	return d, nil
}

// Validate checks that the deck can fill a board.
func (d Deck) Validate() error {
	var errs []error
	if len(d.Riddles) != puzzle.TileCount {
		errs = append(errs, fmt.Errorf("%w: got %d", puzzle.ErrRiddleCount, len(d.Riddles)))
	}
	for i, r := range d.Riddles {
		if strings.TrimSpace(r.Prompt) == "" {
			errs = append(errs, fmt.Errorf("riddle %d: empty prompt", i))
		}
		if strings.TrimSpace(r.Answer) == "" {
			errs = append(errs, fmt.Errorf("riddle %d: empty answer", i))
		}
	}
	return errors.Join(errs...)
}

// Answers returns the distinct answers, lower-cased.
func (d Deck) Answers() []string {
	return lo.Uniq(lo.Map(d.Riddles, func(r puzzle.Riddle, _ int) string {
		return strings.ToLower(strings.TrimSpace(r.Answer))
	}))
}

func (d *Deck) applyDefaults() {
	if d.Title == "" {
		d.Title = "Unlock the Map"
	}
	if d.CompleteTitle == "" {
		d.CompleteTitle = "Complete!"
	}
	if d.ContinueLabel == "" {
		d.ContinueLabel = "Continue"
	}
}
