package report

import "github.com/charmbracelet/lipgloss"

// Paleta inspirada en gruvbox, la misma familia de colores de los reportes
// de terminal que ya usa el resto del tooling interno.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorBlue   = lipgloss.Color("#83a598")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleHeader  = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleGreen   = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow  = lipgloss.NewStyle().Foreground(colorYellow)
	styleBlue    = lipgloss.NewStyle().Foreground(colorBlue)
	stylePlain   = lipgloss.NewStyle()
	styleSection = lipgloss.NewStyle().Bold(true)
)
