package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/fontlens/fontlens/pkg/types"
	"github.com/fontlens/fontlens/pkg/ui"
)

// chromeHeight is how many rows the title, status bar, filter line,
// paginator and help take away from the list.
const chromeHeight = 7

func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var b strings.Builder
	b.WriteString(ui.GradientTitle("fontlens"))
	b.WriteString("\n\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.filterView())
	b.WriteString("\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), m.previewView())
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(ui.HelpStyle.Render(m.paginator.View()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return ui.DocStyle.Render(b.String())
}

func (m Model) statusView() string {
	status := ui.StatusPillStyle.Render(m.catalog.Mode().DisplayName()) +
		ui.StatusBarStyle.Render(m.catalog.Status())
	if m.err != nil {
		status += " " + ui.ErrorStyle.Render(m.err.Error())
	}
	return status
}

func (m Model) filterView() string {
	if m.filtering {
		return m.filterInput.View()
	}
	if q := m.catalog.Query(); q != "" {
		return ui.FilterPromptStyle.Render("/" + q)
	}
	return ""
}

func (m Model) listView() string {
	total := m.catalog.FilteredLen()
	if total == 0 {
		return ui.ListStyle.Render(ui.RowStyle.Render("no fonts to show"))
	}

	start, end := m.paginator.GetSliceBounds(total)
	rows := make([]string, 0, end-start)
	for pos := start; pos < end; pos++ {
		r, ok := m.catalog.VisibleAt(pos)
		if !ok {
			break
		}
		rows = append(rows, m.rowView(r, pos == m.cursor))
	}
	return ui.ListStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) rowView(r types.FontRecord, current bool) string {
	family := ui.StyleFilteredText(r.Family, m.catalog.Query(),
		termenv.Style{}, termenv.Style{}.Underline())
	line := family
	if r.Style != "" {
		line += " " + ui.StyleNameStyle.Render(r.Style)
	}
	if r.Variable {
		line += " " + ui.VariableBadgeStyle.String()
	}

	line = truncate.StringWithTail(line, uint(ui.ListColumnWidth-2), "…")
	if current {
		return ui.SelectedRowStyle.String() + line
	}
	return ui.RowStyle.Render(line)
}

func (m Model) previewView() string {
	if !m.hasPreview {
		return ui.PreviewStyle.Render(ui.HelpStyle.Render("enter previews the highlighted font"))
	}

	sel, ok := m.catalog.Selection()
	if !ok {
		return ui.PreviewStyle.Render(ui.HelpStyle.Render("enter previews the highlighted font"))
	}

	sample := lipgloss.NewStyle().
		Bold(sel.Weight >= 600).
		Italic(sel.Italic).
		Render(m.cfg.SampleText)

	label := ui.PreviewLabelStyle.Render
	lines := []string{
		label("family") + sel.Family,
		label("style") + sel.Style,
		label("weight") + fmt.Sprintf("%d", sel.Weight),
		label("italic") + types.YesNo(sel.Italic),
	}
	if m.preview.FixedPitch {
		lines = append(lines, label("pitch")+"fixed")
	}
	if m.preview.Path != "" {
		lines = append(lines, label("file")+m.preview.Path)
		lines = append(lines, label("size")+humanize.Bytes(uint64(m.preview.FileSize)))
	}
	if m.preview.Variable {
		lines = append(lines, label("axes")+m.preview.Axes)
	}
	lines = append(lines, "", sample)

	return ui.PreviewStyle.Render(strings.Join(lines, "\n"))
}
