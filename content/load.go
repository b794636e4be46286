package content

import (
	"errors"
	"fmt"
	"os"

	"github.com/okbaghel/devfolio/model"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyTitle    = errors.New("project title is empty")
	ErrDuplicateID   = errors.New("duplicate project id")
	ErrLevelRange    = errors.New("skill level out of range")
	ErrEmptyTypingTx = errors.New("typing text is empty")
)

// Load reads a YAML content file on top of the default profile. Fields the
// file does not mention keep their default values; lists in the file replace
// the default lists entirely.
func Load(path string) (*model.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read content file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse is Load for content already in memory.
func Parse(data []byte) (*model.Profile, error) {
	profile := Default()

	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("could not parse content: %w", err)
	}

	if profile.TypingDelay <= 0 {
		profile.TypingDelay = DefaultTypingDelay
	}

	if err := Validate(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks the invariants the page relies on.
func Validate(p *model.Profile) error {
	if p.TypingText == "" {
		return ErrEmptyTypingTx
	}

	seen := make(map[string]struct{}, len(p.Projects))

	for i, project := range p.Projects {
		if project.Title == "" {
			return fmt.Errorf("project #%d: %w", i, ErrEmptyTitle)
		}

		if _, ok := seen[project.ID]; ok {
			return fmt.Errorf("project %q: %w", project.ID, ErrDuplicateID)
		}

		seen[project.ID] = struct{}{}
	}

	for _, skill := range p.Skills {
		if skill.Level < 0 || skill.Level > 100 {
			return fmt.Errorf("skill %q has level %d: %w", skill.Name, skill.Level, ErrLevelRange)
		}
	}

	return nil
}
