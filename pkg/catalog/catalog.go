// Package catalog holds the font collection between enumeration runs:
// the records the active backend produced, the filter narrowing the
// visible subset, and the user's current selection. All views are
// derived from one authoritative record slice so a refresh, a filter
// change, and a selection can never disagree about what exists.
package catalog

import (
	"fmt"

	"github.com/fontlens/fontlens/pkg/backend"
	"github.com/fontlens/fontlens/pkg/types"
)

// Selection is a value copy of the identifying attributes of a chosen
// face. It stays meaningful even after the records it came from are
// replaced.
type Selection struct {
	Family string
	Style  string
	Weight int
	Italic bool
}

type Catalog struct {
	mode     backend.Type
	hasRun   bool
	records  []types.FontRecord
	filtered []int // indexes into records, in record order
	query    string

	selection Selection
	selected  bool
}

func New() *Catalog {
	return &Catalog{}
}

// Refresh enumerates through b and replaces the collection with the
// result. On failure the previous collection, filter and selection all
// stay intact; the caller decides how to surface the error.
func (c *Catalog) Refresh(b backend.Backend) error {
	recs, err := b.Enumerate()
	if err != nil {
		return fmt.Errorf("%s enumeration failed: %w", b.Type().DisplayName(), err)
	}
	c.ReplaceAll(b.Type(), recs)
	return nil
}

// ReplaceAll swaps in a freshly enumerated collection. The selection is
// dropped because its positions no longer mean anything, but the filter
// query persists and is reapplied to the new records.
func (c *Catalog) ReplaceAll(mode backend.Type, recs []types.FontRecord) {
	c.mode = mode
	c.hasRun = true
	c.records = recs
	c.selected = false
	c.selection = Selection{}
	c.applyFilter()
}

// Clear empties the collection and selection. The active mode is kept
// so the next refresh knows which backend to run. Clearing an already
// empty catalog is a no-op.
func (c *Catalog) Clear() {
	c.records = nil
	c.filtered = nil
	c.hasRun = false
	c.selected = false
	c.selection = Selection{}
}

// SetFilter narrows the visible records to those whose family or style
// contains query, case-insensitively. An empty query shows everything.
// The full collection is untouched; only the view changes.
func (c *Catalog) SetFilter(query string) {
	c.query = query
	c.applyFilter()
}

func (c *Catalog) applyFilter() {
	c.filtered = c.filtered[:0]
	for i, r := range c.records {
		if r.MatchesFilter(c.query) {
			c.filtered = append(c.filtered, i)
		}
	}
}

// Select records the face at the given position in the filtered view.
// Out-of-range positions leave the selection unchanged.
func (c *Catalog) Select(pos int) {
	if pos < 0 || pos >= len(c.filtered) {
		return
	}
	r := c.records[c.filtered[pos]]
	c.selection = Selection{
		Family: r.Family,
		Style:  r.Style,
		Weight: r.Weight,
		Italic: r.Italic,
	}
	c.selected = true
}

// Selection returns the current selection and whether one exists.
func (c *Catalog) Selection() (Selection, bool) {
	return c.selection, c.selected
}

// VisibleAt returns the record at the given position of the filtered
// view.
func (c *Catalog) VisibleAt(pos int) (types.FontRecord, bool) {
	if pos < 0 || pos >= len(c.filtered) {
		return types.FontRecord{}, false
	}
	return c.records[c.filtered[pos]], true
}

// Visible returns the filtered records in collection order.
func (c *Catalog) Visible() []types.FontRecord {
	out := make([]types.FontRecord, len(c.filtered))
	for i, idx := range c.filtered {
		out[i] = c.records[idx]
	}
	return out
}

func (c *Catalog) Len() int         { return len(c.records) }
func (c *Catalog) FilteredLen() int { return len(c.filtered) }
func (c *Catalog) Query() string    { return c.query }

// Mode returns which backend produced the current collection.
func (c *Catalog) Mode() backend.Type { return c.mode }

// Status describes the collection in one line: the total after a plain
// enumeration, or the visible-of-total ratio while a filter hides some
// records.
func (c *Catalog) Status() string {
	if !c.hasRun {
		return "No enumeration yet"
	}
	if len(c.filtered) != len(c.records) {
		return fmt.Sprintf("%s enumeration: Showing %d of %d fonts",
			c.mode.DisplayName(), len(c.filtered), len(c.records))
	}
	return fmt.Sprintf("%s enumeration: Found %d fonts",
		c.mode.DisplayName(), len(c.records))
}
