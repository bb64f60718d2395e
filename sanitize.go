package imgexport

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// filenameSanitizer folds the input to NFKC form and strips every rune
// that is not safe inside a path segment.
var filenameSanitizer = transform.Chain(
	norm.NFKC,
	runes.Remove(runes.Predicate(func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		return r != '-' && r != '_' && r != '.'
	})),
)

// ValidFilename maps an arbitrary string to one safe for use as a single
// path segment. Leading and trailing whitespace is trimmed, interior
// spaces become underscores, and every remaining rune that is not a
// letter, digit, '-', '_', or '.' is removed. The mapping is
// deterministic and idempotent: sanitizing an already-sanitized name
// returns it unchanged.
//
// The result may be empty when the input contains no safe runes; callers
// needing a non-empty name must supply their own fallback.
func ValidFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")

	sanitized, _, err := transform.String(filenameSanitizer, name)
	if err != nil {
		// Transform only fails on malformed input; fall back to a plain
		// rune filter so the mapping still terminates deterministically.
		sanitized = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
				return r
			}
			return -1
		}, name)
	}
	return sanitized
}
