package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the report renderer.

var (
	bannerStyle = lipgloss.NewStyle().Bold(true)

	sectionStyle = lipgloss.NewStyle().Bold(true)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
)
