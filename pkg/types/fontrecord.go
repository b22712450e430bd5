package types

import (
	"sort"

	"github.com/fontlens/fontlens/pkg/text"
)

// CharsetUnspecified is the Charset value for backends that cannot
// determine a character-set code for a face.
const CharsetUnspecified = -1

// FontRecord is the canonical, backend-agnostic description of a single
// font face. Each enumeration backend maps its own raw descriptors into
// this shape; fields a backend cannot supply keep their zero/default
// value.
type FontRecord struct {
	// Family is the family name, e.g. "Arial". Never empty in a record
	// that made it into a collection.
	Family string

	// Style is the face/style name, e.g. "Bold Italic". May be empty if
	// the backend cannot supply one.
	Style string

	// Path is the on-disk location of the backing file. Empty for
	// backends that do not expose file locations and for memory-resident
	// faces.
	Path string

	// Axes summarizes the variable axes as "tag min-max" entries joined
	// by ", ", e.g. "wght 100-900, wdth 75-100". Empty for non-variable
	// faces.
	Axes string

	// Weight on the usual 100-900 scale; 400 when the backend does not
	// know better.
	Weight int

	Italic     bool
	FixedPitch bool

	// Variable is true iff at least one axis has min != max.
	Variable bool

	// Charset is a backend-specific character-set code,
	// CharsetUnspecified when not reported.
	Charset int

	// FileSize is the size of the backing file in bytes, 0 for
	// memory-resident faces.
	FileSize int64
}

// DisplayName returns "Family Style", or just the family when the style
// is empty.
func (r FontRecord) DisplayName() string {
	if r.Style == "" {
		return r.Family
	}
	return r.Family + " " + r.Style
}

// MatchesFilter reports whether the query matches this record: a
// case-insensitive substring of either the family or the style name. The
// empty query matches everything.
func (r FontRecord) MatchesFilter(query string) bool {
	return text.ContainsFold(r.Family, query) || text.ContainsFold(r.Style, query)
}

// SortByFamily sorts records by family name only, using plain codepoint
// comparison. This is the order the legacy backend presents.
func SortByFamily(recs []FontRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Family < recs[j].Family
	})
}

// SortByFamilyAndStyle sorts records by family name, ties broken by
// style name. The richer backends present this order.
func SortByFamilyAndStyle(recs []FontRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Family != recs[j].Family {
			return recs[i].Family < recs[j].Family
		}
		return recs[i].Style < recs[j].Style
	})
}

// YesNo renders a boolean column value the way the list and the plain
// table print it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
