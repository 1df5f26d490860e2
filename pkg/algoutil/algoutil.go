//Package algoutil contain some scaffold algo
package algoutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// NormalizeNotation folds full-width characters (１２３ｍ, ，) to their
// ASCII forms and removes every whitespace rune.
func NormalizeNotation(s string) string {
	folded := width.Fold.String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

// CeilTo rounds v up to the next multiple of unit.
func CeilTo(v, unit int) int {
	if unit <= 0 {
		return v
	}
	if r := v % unit; r != 0 {
		if v < 0 {
			return v - r
		}
		return v + unit - r
	}
	return v
}
