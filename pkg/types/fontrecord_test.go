package types

import "testing"

func TestMatchesFilter(t *testing.T) {
	r := FontRecord{Family: "Courier New", Style: "Bold Italic"}

	for query, want := range map[string]bool{
		"":         true, // empty query matches everything
		"courier":  true,
		"COURIER":  true,
		"bold ita": true, // style matches too
		"ier ne":   true,
		"arial":    false,
	} {
		if got := r.MatchesFilter(query); got != want {
			t.Errorf("MatchesFilter(%q) = %v, want %v", query, got, want)
		}
	}
}

func TestSortByFamilyIsStable(t *testing.T) {
	recs := []FontRecord{
		{Family: "Zilla", Style: "Regular"},
		{Family: "Arial", Style: "Narrow"}, // inserted before Bold on purpose
		{Family: "Arial", Style: "Bold"},
	}
	SortByFamily(recs)

	if recs[0].Family != "Arial" || recs[2].Family != "Zilla" {
		t.Fatalf("family order wrong: %+v", recs)
	}
	// Styles keep insertion order within a family.
	if recs[0].Style != "Narrow" || recs[1].Style != "Bold" {
		t.Errorf("stability violated: %+v", recs)
	}
}

func TestSortByFamilyAndStyle(t *testing.T) {
	recs := []FontRecord{
		{Family: "Arial", Style: "Narrow"},
		{Family: "Arial", Style: "Bold"},
		{Family: "Andale Mono", Style: "Regular"},
	}
	SortByFamilyAndStyle(recs)

	if recs[0].Family != "Andale Mono" {
		t.Fatalf("order wrong: %+v", recs)
	}
	if recs[1].Style != "Bold" || recs[2].Style != "Narrow" {
		t.Errorf("style tiebreak wrong: %+v", recs)
	}
}

func TestDisplayName(t *testing.T) {
	if got := (FontRecord{Family: "Go", Style: "Bold"}).DisplayName(); got != "Go Bold" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := (FontRecord{Family: "Go"}).DisplayName(); got != "Go" {
		t.Errorf("DisplayName without style = %q", got)
	}
}
