package cmd

import "github.com/charmbracelet/lipgloss"

var (
	slate = lipgloss.Color("#94A3B8")
	ink   = lipgloss.Color("#E5E7EB")

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderTop(false).
			BorderRight(false).
			BorderBottom(false).
			Padding(0, 1)

	pretextStyle = lipgloss.NewStyle().Bold(true).Foreground(ink)
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(slate)
	dimStyle     = lipgloss.NewStyle().Foreground(slate)
)
