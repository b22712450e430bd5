package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Fold lowercases s with a width-stable Unicode transform, so non-ASCII
// letters fold the same way on both sides of a comparison.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ContainsFold reports whether substr is contained in s, compared
// case-insensitively. The empty substring matches everything.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(Fold(s), Fold(substr))
}

// Normalize strips diacritics, "ö" becomes "o". Used only when
// highlighting filter matches in the UI; filter matching itself is
// case-insensitive but accent-sensitive. Note that Mn is the unicode key
// for nonspacing marks.
func Normalize(in string) (string, error) {
	out, _, err := transform.String(stripMarks, in)
	return out, err
}
