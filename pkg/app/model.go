// Package app is the terminal frontend: a bubbletea model wiring the
// enumeration backends and the catalog to a filterable, pageable font
// list with a preview pane for the chosen face.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fontlens/fontlens/pkg/backend"
	"github.com/fontlens/fontlens/pkg/catalog"
	"github.com/fontlens/fontlens/pkg/config"
	"github.com/fontlens/fontlens/pkg/types"
)

type Model struct {
	cfg  *config.Config
	keys keyMap
	help help.Model

	filterInput textinput.Model
	paginator   paginator.Model

	catalog *catalog.Catalog

	// preview is the full record behind the catalog's selection; the
	// pane needs path, size and axes, which the selection value
	// deliberately does not carry.
	preview    types.FontRecord
	hasPreview bool

	cursor    int // absolute position in the filtered view
	filtering bool

	width  int
	height int

	err      error
	quitting bool
}

// New builds the model and runs the configured backend once, so the
// first frame already shows a populated list. A failing backend at
// startup is fatal: there is no earlier collection to fall back to.
func New(cfg *config.Config) (*Model, error) {
	t, err := backend.ParseType(cfg.Backend)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "family or style"
	ti.CharLimit = 64

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 10

	m := Model{
		cfg:         cfg,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		filterInput: ti,
		paginator:   p,
		catalog:     catalog.New(),
	}

	if err := m.enumerate(t); err != nil {
		return nil, err
	}
	return &m, nil
}

// enumerate runs backend t and swaps the result into the catalog. On
// failure the catalog keeps whatever it had.
func (m *Model) enumerate(t backend.Type) error {
	b, err := NewBackend(t, m.cfg)
	if err != nil {
		return err
	}
	if err := m.catalog.Refresh(b); err != nil {
		return err
	}
	m.cursor = 0
	m.hasPreview = false
	m.syncPaginator()
	return nil
}

func (m *Model) syncPaginator() {
	total := m.catalog.FilteredLen()
	if total == 0 {
		total = 1 // SetTotalPages panics on zero
	}
	m.paginator.SetTotalPages(total)
	m.paginator.Page = m.cursor / m.paginator.PerPage
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if rows := msg.Height - chromeHeight; rows > 0 {
			m.paginator.PerPage = rows
		}
		m.syncPaginator()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Abandon the filter entirely.
		m.filtering = false
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.applyFilter()
		return m, nil
	case "enter":
		// Keep the filter, leave the input.
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter pushes the input's current value into the catalog; the
// list narrows live with every keystroke.
func (m *Model) applyFilter() {
	m.catalog.SetFilter(m.filterInput.Value())
	m.cursor = 0
	m.syncPaginator()
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.syncPaginator()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.catalog.FilteredLen()-1 {
			m.cursor++
			m.syncPaginator()
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.cursor -= m.paginator.PerPage
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.syncPaginator()
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if next := m.cursor + m.paginator.PerPage; next < m.catalog.FilteredLen() {
			m.cursor = next
		}
		m.syncPaginator()
		return m, nil

	case key.Matches(msg, m.keys.Choose):
		m.catalog.Select(m.cursor)
		if r, ok := m.catalog.VisibleAt(m.cursor); ok {
			m.preview = r
			m.hasPreview = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.catalog.Clear()
		m.hasPreview = false
		m.cursor = 0
		m.err = nil
		m.syncPaginator()
		return m, nil

	case key.Matches(msg, m.keys.Fontconfig):
		m.switchBackend(backend.TypeFontconfig)
		return m, nil

	case key.Matches(msg, m.keys.Metrics):
		m.switchBackend(backend.TypeMetrics)
		return m, nil

	case key.Matches(msg, m.keys.FontSet):
		m.switchBackend(backend.TypeFontSet)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.switchBackend(m.catalog.Mode())
		return m, nil
	}

	return m, nil
}

// switchBackend re-enumerates through t. A backend failing here is not
// fatal: the previous collection stays on screen and the error is shown
// in the status area until the next successful run.
func (m *Model) switchBackend(t backend.Type) {
	if t == "" {
		return
	}
	if err := m.enumerate(t); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

// Catalog exposes the underlying collection, mainly for tests.
func (m *Model) Catalog() *catalog.Catalog { return m.catalog }

func (m *Model) Err() error { return m.err }
