package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fontlens/fontlens/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	for name, data := range map[string][]byte{
		"GoRegular.ttf": goregular.TTF,
		"GoBold.ttf":    gobold.TTF,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Default
	cfg.Backend = "metrics"
	cfg.FontDirs = []string{dir}
	cfg.IncludeEmbedded = false
	return &cfg
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewEnumeratesAtStartup(t *testing.T) {
	m, err := New(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if m.Catalog().Len() != 2 {
		t.Fatalf("startup enumeration found %d fonts", m.Catalog().Len())
	}
	if got := m.Catalog().Status(); !strings.Contains(got, "Metrics enumeration: Found 2 fonts") {
		t.Errorf("Status = %q", got)
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Backend = "gdi"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}

func TestFilterKeystrokes(t *testing.T) {
	m, err := New(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	var model tea.Model = *m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model, _ = model.Update(keyMsg("/"))
	for _, r := range "bold" {
		model, _ = model.Update(keyMsg(string(r)))
	}

	got := model.(Model)
	if got.Catalog().FilteredLen() != 1 {
		t.Fatalf("filter narrowed to %d fonts", got.Catalog().FilteredLen())
	}
	if !strings.Contains(got.Catalog().Status(), "Showing 1 of 2 fonts") {
		t.Errorf("Status = %q", got.Catalog().Status())
	}

	// esc abandons the filter.
	model, _ = got.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got = model.(Model)
	if got.Catalog().FilteredLen() != 2 {
		t.Errorf("esc did not restore the full list: %d", got.Catalog().FilteredLen())
	}
}

func TestChooseFillsPreview(t *testing.T) {
	m, err := New(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	var model tea.Model = *m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := model.(Model)
	sel, ok := got.Catalog().Selection()
	if !ok {
		t.Fatal("enter did not select")
	}
	if sel.Family == "" {
		t.Errorf("selection = %+v", sel)
	}
	if view := got.View(); !strings.Contains(view, got.cfg.SampleText) {
		t.Error("preview pane does not render the sample text")
	}
}

func TestClearEmptiesList(t *testing.T) {
	m, err := New(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	var model tea.Model = *m
	model, _ = model.Update(keyMsg("x"))
	got := model.(Model)
	if got.Catalog().Len() != 0 {
		t.Errorf("clear left %d fonts", got.Catalog().Len())
	}
	if !strings.Contains(got.View(), "No enumeration yet") {
		t.Error("cleared view does not report the empty state")
	}
}

func TestFailedSwitchKeepsCollection(t *testing.T) {
	cfg := testConfig(t)
	m, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	before := m.Catalog().Len()
	t.Setenv("PATH", t.TempDir()) // hide fc-list so the switch fails

	var model tea.Model = *m
	model, _ = model.Update(keyMsg("1"))
	got := model.(Model)
	if got.Err() == nil {
		t.Fatal("expected the fontconfig switch to fail without fc-list")
	}
	if got.Catalog().Len() != before {
		t.Errorf("failed switch disturbed the collection: %d -> %d", before, got.Catalog().Len())
	}
	if got.Catalog().Mode().DisplayName() != "Metrics" {
		t.Errorf("failed switch changed the mode: %q", got.Catalog().Mode())
	}
}
