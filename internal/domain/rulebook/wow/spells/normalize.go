package spells

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize turns a spell name into its lookup key:
// "Avenger's Shield" and "avengers-shield" both become "avengers_shield".
func Normalize(name string) string {
	// Casers keep state, so one per call
	folded := cases.Fold().String(name)
	folded = strings.Map(func(r rune) rune {
		switch r {
		case '\'', '’':
			return -1
		case '-', '_', ':', '.':
			return ' '
		}
		return r
	}, folded)

	return strings.Join(strings.Fields(folded), "_")
}
