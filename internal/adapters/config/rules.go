// Package config loads the classification rule set.
//
// The group lists driving classification have changed across game revisions,
// so they are data rather than constants: the embedded defaults match the
// current game data, and a YAML rules file can override any section without a
// rebuild.
package config

import (
	"os"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// RulesLoader implements rule-set loading from an optional YAML file.
type RulesLoader struct{}

// NewRulesLoader creates a new RulesLoader.
func NewRulesLoader() *RulesLoader {
	return &RulesLoader{}
}

// rulesFile is the YAML schema of a rules override file. Absent sections keep
// their defaults.
type rulesFile struct {
	ReactionGroups []int32          `yaml:"reaction_groups"`
	FlatIconGroups []int32          `yaml:"flat_icon_groups"`
	TechOverlays   map[int32]string `yaml:"tech_overlays"`
}

// Load returns the classification rules. An empty path yields the embedded
// defaults; a named file must exist and parse.
func (l *RulesLoader) Load(path string) (*domain.RuleSet, error) {
	rules := domain.DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read rules file")
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse rules file")
	}

	if file.ReactionGroups != nil {
		rules.ReactionGroups = groupSet(file.ReactionGroups)
	}
	if file.FlatIconGroups != nil {
		rules.FlatIconGroups = groupSet(file.FlatIconGroups)
	}
	if file.TechOverlays != nil {
		rules.TechOverlays = file.TechOverlays
	}
	return rules, nil
}

func groupSet(ids []int32) map[int32]bool {
	set := make(map[int32]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
