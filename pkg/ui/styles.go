package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// ListColumnWidth is the width of the font list pane; the preview
	// pane takes the rest of the terminal.
	ListColumnWidth = 44
)

var (
	// Style definitions.

	// General.

	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	focus     = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#E7E7E7"}

	DocStyle = lipgloss.NewStyle().Padding(1, 2, 1, 2)

	// Font list.

	ListStyle = lipgloss.NewStyle().
			MarginRight(2).
			Width(ListColumnWidth)

	RowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			PaddingLeft(2)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(focus).
				Bold(true).
				PaddingLeft(0).
				SetString("> ")

	StyleNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})

	VariableBadgeStyle = lipgloss.NewStyle().
				Foreground(special).
				SetString("var")

	// Preview pane.

	PreviewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 2)

	PreviewLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}).
				Width(8)

	// Status bar.

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"}).
			Padding(0, 1)

	StatusPillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#FF5F87")).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)

	FilterPromptStyle = lipgloss.NewStyle().Foreground(special)

	HelpStyle = lipgloss.NewStyle().Foreground(subtle)
)

// GradientTitle renders the application title with a horizontal color
// blend, one hue step per character.
func GradientTitle(title string) string {
	left, _ := colorful.Hex("#F25D94")
	right, _ := colorful.Hex("#643AFF")

	runes := []rune(title)
	b := strings.Builder{}
	for i, r := range runes {
		c := left.BlendLuv(right, float64(i)/float64(len(runes)))
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Hex())).
			Render(string(r)))
	}
	return b.String()
}
