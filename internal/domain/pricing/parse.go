package pricing

import (
	"strconv"
	"strings"
)

// ParseAmount parses an operator-entered price string. Malformed or empty
// input degrades to 0 with ok=false instead of failing, so one bad price
// entry never blocks a whole calculation. Callers that care about visibility
// should log when ok is false.
func ParseAmount(s string) (amount float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatAmount renders a float the way the back office writes prices: no
// exponent, no trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
