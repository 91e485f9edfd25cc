package tidepool

import "strings"

// trimmedText normalizes optional text inputs: surrounding whitespace is
// stripped and whitespace-only strings collapse to empty (treated as unset).
func trimmedText(s string) string {
	return strings.TrimSpace(s)
}
