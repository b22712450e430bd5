package ui

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"

	"github.com/fontlens/fontlens/pkg/text"
)

// StyleFilteredText renders haystack with the characters matched by the
// filter query drawn in matchedStyle. Matching happens on the
// diacritic-stripped form so "offent" highlights inside "Öffentlich".
func StyleFilteredText(haystack, needles string, defaultStyle, matchedStyle termenv.Style) string {
	if needles == "" {
		return defaultStyle.Styled(haystack)
	}

	normalizedHay, err := text.Normalize(haystack)
	if err != nil {
		normalizedHay = haystack
	}

	matches := fuzzy.Find(needles, []string{normalizedHay})
	if len(matches) == 0 {
		return defaultStyle.Styled(haystack)
	}

	b := strings.Builder{}
	m := matches[0] // only one haystack, so at most one match
	for i, r := range []rune(haystack) {
		styled := false
		for _, mi := range m.MatchedIndexes {
			if i == mi {
				b.WriteString(matchedStyle.Styled(string(r)))
				styled = true
			}
		}
		if !styled {
			b.WriteString(defaultStyle.Styled(string(r)))
		}
	}
	return b.String()
}
