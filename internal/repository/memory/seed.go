package memory

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mergingtonactivities/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// seedFile is the YAML shape of an activities file.
type seedFile struct {
	Activities []seedActivity `yaml:"activities"`
}

type seedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadSeed reads the activities dataset from path, or from the embedded
// default when path is empty. The returned map is what NewActivityStore
// expects.
func LoadSeed(path string) (map[string]*domain.Activity, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read activities file: %w", err)
		}
		raw = b
	}
	return ParseSeed(raw)
}

// ParseSeed parses and validates a YAML activities dataset. Activity names
// must be unique and non-empty, capacities positive, and no email may appear
// twice on the same roster.
func ParseSeed(raw []byte) (map[string]*domain.Activity, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse activities file: %w", err)
	}
	if len(f.Activities) == 0 {
		return nil, fmt.Errorf("activities file defines no activities")
	}

	out := make(map[string]*domain.Activity, len(f.Activities))
	for _, sa := range f.Activities {
		if sa.Name == "" {
			return nil, fmt.Errorf("activity with empty name")
		}
		if _, ok := out[sa.Name]; ok {
			return nil, fmt.Errorf("duplicate activity %q", sa.Name)
		}
		if sa.MaxParticipants < 1 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive, got %d", sa.Name, sa.MaxParticipants)
		}
		seen := make(map[string]struct{}, len(sa.Participants))
		for _, p := range sa.Participants {
			if p == "" {
				return nil, fmt.Errorf("activity %q: empty participant email", sa.Name)
			}
			if _, ok := seen[p]; ok {
				return nil, fmt.Errorf("activity %q: duplicate participant %q", sa.Name, p)
			}
			seen[p] = struct{}{}
		}
		out[sa.Name] = domain.NewActivity(sa.Description, sa.Schedule, sa.MaxParticipants, sa.Participants)
	}
	return out, nil
}
