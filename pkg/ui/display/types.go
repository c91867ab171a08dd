// Package display holds the result types rendered by the ui renderers
package display

import (
	"time"

	"github.com/arthur-debert/oascan/pkg/config"
	"github.com/arthur-debert/oascan/pkg/pattern"
)

// Documented is implemented by results whose structured output (json, toml,
// yaml) differs from their display form
type Documented interface {
	StructuredDocument() interface{}
}

// ConfigResult is the output of the config commands
type ConfigResult struct {
	Command   string       `json:"command"` // "show", "defaults", "watch"
	Sources   []SourceRow  `json:"sources"`
	Settings  []SettingRow `json:"settings"`
	Timestamp time.Time    `json:"timestamp"`

	values config.Values
}

// SourceRow is one file that contributed to a configuration
type SourceRow struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// SettingRow is the resolved value of one option
type SettingRow struct {
	Property  string `json:"property"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Set       bool   `json:"set"`
	IsDefault bool   `json:"isDefault"`
}

// NewConfigResult builds the display form of cfg
func NewConfigResult(command string, cfg *config.Config) *ConfigResult {
	r := &ConfigResult{
		Command:   command,
		Sources:   []SourceRow{},
		Timestamp: time.Now(),
		values:    cfg.Effective(),
	}
	for _, src := range cfg.Sources() {
		r.Sources = append(r.Sources, SourceRow{Kind: string(src.Kind), Path: src.Path})
	}
	for _, s := range cfg.Settings() {
		r.Settings = append(r.Settings, SettingRow{
			Property:  s.Option.DisplayProperty(),
			Key:       s.Option.Key,
			Value:     s.Value,
			Set:       s.Set,
			IsDefault: s.IsDefault(),
		})
	}
	return r
}

// StructuredDocument returns the effective values in the layout of a project
// file, so structured output can be saved and loaded back
func (r *ConfigResult) StructuredDocument() interface{} {
	return r.values
}

// PatternResult is the output of the pattern command
type PatternResult struct {
	Raw      string         `json:"raw"`
	BuiltIns []string       `json:"builtIns,omitempty"`
	Mode     string         `json:"mode"`
	Engine   string         `json:"engine"`
	Source   string         `json:"source"`
	Matches  []PatternMatch `json:"matches"`
}

// PatternMatch is the outcome for one candidate
type PatternMatch struct {
	Candidate string `json:"candidate"`
	Matched   bool   `json:"matched"`
}

// NewPatternResult runs every candidate through p
func NewPatternResult(raw string, builtIns []string, p *pattern.Pattern, candidates []string) *PatternResult {
	r := &PatternResult{
		Raw:      raw,
		BuiltIns: builtIns,
		Mode:     p.Mode().String(),
		Engine:   string(p.Engine()),
		Source:   p.String(),
		Matches:  make([]PatternMatch, 0, len(candidates)),
	}
	for _, c := range candidates {
		r.Matches = append(r.Matches, PatternMatch{Candidate: c, Matched: p.MatchString(c)})
	}
	return r
}

// MatchedCount returns how many candidates matched
func (r *PatternResult) MatchedCount() int {
	n := 0
	for _, m := range r.Matches {
		if m.Matched {
			n++
		}
	}
	return n
}
