package tui

import "github.com/charmbracelet/lipgloss"

// Colors follow the report header fill so the console and workbook match.
var (
	ColorInk     = lipgloss.Color("#E7ECF5")
	ColorDim     = lipgloss.Color("#7D8696")
	ColorAccent  = lipgloss.Color("#4472C4")
	ColorPath    = lipgloss.Color("#8EA9DB")
	ColorSuccess = lipgloss.Color("#70AD47")
	ColorWarn    = lipgloss.Color("#FFC000")
	ColorError   = lipgloss.Color("#FF0000")
)
