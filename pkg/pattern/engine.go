package pattern

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Engine selects the regular expression implementation used in regex mode.
// Literal mode always uses RE2 because escaped literals are valid in every engine.
type Engine string

const (
	// EngineRE2 uses Go's linear-time regexp package. It is the default.
	EngineRE2 Engine = "re2"
	// EngineBacktracking uses regexp2, which accepts lookarounds and
	// backreferences as found in JVM-authored expressions.
	EngineBacktracking Engine = "backtracking"
)

// DefaultMatchTimeout bounds a single backtracking match.
const DefaultMatchTimeout = time.Second

// Engines lists the supported engines in display order
func Engines() []Engine {
	return []Engine{EngineRE2, EngineBacktracking}
}

// ParseEngine parses an engine name, case-insensitively. An empty name selects EngineRE2.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(EngineRE2):
		return EngineRE2, nil
	case string(EngineBacktracking):
		return EngineBacktracking, nil
	default:
		return "", fmt.Errorf("unknown regex engine: %s", s)
	}
}

type matchFunc func(candidate string) bool

func compileWith(engine Engine, expr string, timeout time.Duration) (matchFunc, error) {
	switch engine {
	case EngineRE2:
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, err
		}
		return re.MatchString, nil
	case EngineBacktracking:
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, err
		}
		re.MatchTimeout = timeout
		return func(candidate string) bool {
			// A timed out match counts as no match.
			ok, err := re.MatchString(candidate)
			return err == nil && ok
		}, nil
	default:
		return nil, fmt.Errorf("unknown regex engine: %s", engine)
	}
}
