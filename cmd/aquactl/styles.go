package main

import "github.com/charmbracelet/lipgloss"

// Palette for the terminal UI. Risk and severity map to traffic-light
// colors, everything else stays in the water blues.
var (
	colorBlue  = lipgloss.Color("#4FA8D8")
	colorGreen = lipgloss.Color("#7FD17F")
	colorAmber = lipgloss.Color("#F4D03F")
	colorRed   = lipgloss.Color("#E74C3C")
	colorSlate = lipgloss.Color("#8A9BA8")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	styleInfo  = lipgloss.NewStyle().Foreground(colorBlue)
	styleGood  = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarn  = lipgloss.NewStyle().Foreground(colorAmber)
	styleBad   = lipgloss.NewStyle().Foreground(colorRed)
	styleMuted = lipgloss.NewStyle().Foreground(colorSlate)
)

func tierStyle(tier string) lipgloss.Style {
	switch tier {
	case "high":
		return styleBad
	case "medium":
		return styleWarn
	default:
		return styleGood
	}
}

func bandStyle(band string) lipgloss.Style {
	switch band {
	case "poor":
		return styleBad
	case "moderate":
		return styleWarn
	default:
		return styleGood
	}
}

func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case "high":
		return styleBad
	case "medium":
		return styleWarn
	default:
		return styleMuted
	}
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "open":
		return styleBad
	case "acknowledged":
		return styleWarn
	case "dispatched":
		return styleInfo
	default:
		return styleGood
	}
}
