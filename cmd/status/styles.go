package main

import "github.com/charmbracelet/lipgloss"

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorGreen     = lipgloss.Color("#00FF00")
	colorRed       = lipgloss.Color("#FF0000")
	colorPurple    = lipgloss.Color("#8524a6")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginBottom(1)

	pathStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Width(10)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Padding(0, 1)
)
