package feed

import (
	"github.com/bnema/meshsos/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	message    lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	badge      lipgloss.Style
	panic      lipgloss.Style
	auto       lipgloss.Style
	status     lipgloss.Style
	signal     lipgloss.Style
	logTime    lipgloss.Style
	barBracket lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		message:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		panic:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		auto:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		status:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		signal:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		logTime:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

func severityColor(severity domain.Severity) lipgloss.Color {
	switch severity {
	case domain.SeverityLight:
		return lipgloss.Color("226")
	case domain.SeverityModerate:
		return lipgloss.Color("214")
	case domain.SeveritySevere:
		return lipgloss.Color("202")
	case domain.SeverityCritical:
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("252")
	}
}
