package config

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// UnknownProperty is a key under the mp.openapi. namespace that matches no option
type UnknownProperty struct {
	Property   string
	Suggestion string
}

// TranslateProperties turns MicroProfile property keys into the structured
// layout used by config files. Keys outside the mp.openapi. namespace are
// ignored, keys with an empty value count as unset, and unrecognized keys
// inside the namespace are returned sorted by key.
func TranslateProperties(props map[string]string) (map[string]interface{}, []UnknownProperty) {
	out := make(map[string]interface{})
	var unknown []UnknownProperty

	for property, value := range props {
		if !strings.HasPrefix(property, PropertyPrefix) {
			continue
		}
		opt, entry, ok := LookupProperty(property)
		if !ok {
			unknown = append(unknown, UnknownProperty{Property: property, Suggestion: Suggest(property)})
			continue
		}
		if value == "" {
			continue
		}
		setProperty(out, opt, entry, value)
	}

	sort.Slice(unknown, func(i, j int) bool { return unknown[i].Property < unknown[j].Property })
	return out, unknown
}

func setProperty(m map[string]interface{}, opt OptionSpec, entry, value string) {
	keys := strings.Split(opt.Key, ".")
	if opt.Prefix {
		// map entry names are used verbatim, dots included
		keys = append(keys, entry)
	}
	setInMap(m, keys, value)
}

// Suggest returns the closest recognized property key, or "" when nothing is
// close enough to be a plausible typo
func Suggest(property string) string {
	best := ""
	bestDistance := -1
	for _, o := range optionTable {
		candidate := o.Property
		if o.Prefix {
			if strings.HasPrefix(property, o.Property) {
				continue
			}
			candidate = strings.TrimSuffix(o.Property, ".")
		}
		d := fuzzy.LevenshteinDistance(strings.ToLower(property), strings.ToLower(candidate))
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if bestDistance < 0 || bestDistance > maxSuggestionDistance(property) {
		return ""
	}
	return best
}

func maxSuggestionDistance(property string) int {
	n := len(strings.TrimPrefix(property, PropertyPrefix)) / 3
	if n < 2 {
		return 2
	}
	return n
}

func setInMap(m map[string]interface{}, keys []string, val interface{}) map[string]interface{} {
	curr := m
	for i, key := range keys {
		if i == len(keys)-1 {
			curr[key] = val
			continue
		}
		next, ok := curr[key].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			curr[key] = next
		}
		curr = next
	}
	return m
}
