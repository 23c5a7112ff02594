// SPDX-License-Identifier: Apache-2.0

package font

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold maps UTF-8 text onto the characters a Font can draw. Accents are
// stripped and anything else outside FirstChar..LastChar becomes
// Replacement. Line breaks are kept.
func Fold(s string) string {
	if drawable(s) {
		return s
	}
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if r == '\n' || (r >= FirstChar && r <= LastChar) {
				return r
			}
			return Replacement
		}),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func drawable(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '\n' && (c < FirstChar || c > LastChar) {
			return false
		}
	}
	return true
}
