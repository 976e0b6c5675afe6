package pricing

import "strings"

// occupancyKeywords is scanned in order; the first keyword contained in the
// label wins, so a mixed label like "double-triple combo" resolves to 2.
var occupancyKeywords = []struct {
	keyword    string
	multiplier int
}{
	{"single", 1},
	{"double", 2},
	{"triple", 3},
	{"quad", 4},
}

// OccupancyMultiplier infers how many guests per room a pricing component
// covers from its free-text label. The check is case-insensitive and total:
// labels without an occupancy keyword ("Per Person", "Extra Bed", "Infant")
// default to 1. This is a heuristic over operator-entered text, not a lookup
// against a controlled vocabulary.
func OccupancyMultiplier(label string) int {
	l := strings.ToLower(label)
	for _, k := range occupancyKeywords {
		if strings.Contains(l, k.keyword) {
			return k.multiplier
		}
	}
	return 1
}
