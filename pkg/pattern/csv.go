package pattern

import (
	"strings"

	"github.com/arthur-debert/oascan/pkg/types"
)

// CSVToSet splits raw on commas, trims every entry and returns the distinct
// entries. An empty input yields an empty, non-nil set.
func CSVToSet(raw string) types.StringSet {
	return types.NewStringSet(splitCSV(raw)...)
}

// CSVToList splits raw on commas and trims every entry, keeping order and
// duplicates. An empty input yields an empty, non-nil slice.
func CSVToList(raw string) []string {
	return splitCSV(raw)
}

// splitCSV drops entries that are empty after trimming; an empty literal
// would otherwise turn an allow-list into a match-everything rule.
func splitCSV(raw string) []string {
	items := []string{}
	if strings.TrimSpace(raw) == "" {
		return items
	}
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		items = append(items, piece)
	}
	return items
}
