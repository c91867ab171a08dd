package pattern

import (
	"regexp"
	"strings"
	"time"

	"github.com/arthur-debert/oascan/pkg/errors"
	"github.com/arthur-debert/oascan/pkg/types"
)

// Mode describes how a Pattern was resolved
type Mode int

const (
	// ModeNever is the degenerate matcher produced by an empty literal set
	ModeNever Mode = iota
	// ModeLiteral matches an escaped alternation of literals
	ModeLiteral
	// ModeRegex matches a user supplied regular expression
	ModeRegex
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNever:
		return "never"
	case ModeLiteral:
		return "literal"
	case ModeRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Pattern is a compiled inclusion/exclusion rule.
type Pattern struct {
	source string
	mode   Mode
	engine Engine
	match  matchFunc
}

// MatchString reports whether candidate satisfies the pattern
func (p *Pattern) MatchString(candidate string) bool {
	return p.match(candidate)
}

// String returns the expression the pattern was compiled from.
// It is empty for a never-matching pattern.
func (p *Pattern) String() string {
	return p.source
}

// Mode returns how the pattern was resolved
func (p *Pattern) Mode() Mode {
	return p.mode
}

// Engine returns the regex engine backing the pattern
func (p *Pattern) Engine() Engine {
	return p.engine
}

// Never returns a pattern that matches no input, including the empty string
func Never() *Pattern {
	return &Pattern{
		mode:   ModeNever,
		engine: EngineRE2,
		match:  func(string) bool { return false },
	}
}

type options struct {
	engine  Engine
	timeout time.Duration
}

// Option customizes Compile
type Option func(*options)

// WithEngine selects the engine used in regex mode
func WithEngine(engine Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithMatchTimeout bounds a single match for the backtracking engine.
// Non-positive values keep DefaultMatchTimeout.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// IsRegex reports whether raw selects regex mode
func IsRegex(raw string) bool {
	return strings.HasPrefix(raw, "^") || strings.HasSuffix(raw, "$")
}

// Compile resolves raw, together with the built-in literals, into a Pattern.
//
// An empty raw value stands for an absent configuration value. The only error
// is an invalid regular expression in regex mode, reported with code
// ErrPatternInvalid.
func Compile(raw string, builtIns types.StringSet, opts ...Option) (*Pattern, error) {
	o := options{engine: EngineRE2, timeout: DefaultMatchTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	if IsRegex(raw) {
		match, err := compileWith(o.engine, raw, o.timeout)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid regular expression %q", raw).
				WithDetail("pattern", raw).
				WithDetail("engine", string(o.engine))
		}
		return &Pattern{source: raw, mode: ModeRegex, engine: o.engine, match: match}, nil
	}

	literals := CSVToSet(raw)
	for lit := range builtIns {
		if lit != "" {
			literals.Add(lit)
		}
	}
	if literals.Len() == 0 {
		return Never(), nil
	}

	sorted := literals.Sorted()
	quoted := make([]string, len(sorted))
	for i, lit := range sorted {
		quoted[i] = regexp.QuoteMeta(lit)
	}
	source := "(" + strings.Join(quoted, "|") + ")"

	return &Pattern{
		source: source,
		mode:   ModeLiteral,
		engine: EngineRE2,
		match:  regexp.MustCompile(source).MatchString,
	}, nil
}
