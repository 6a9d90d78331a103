package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/example/themeshot/internal/report"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	skipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func statusStyle(s report.Status) lipgloss.Style {
	switch {
	case s == report.StatusOK:
		return okStyle
	case s.Failed():
		return failStyle
	default:
		return skipStyle
	}
}

func passFail(ok bool) string {
	if ok {
		return okStyle.Render("pass")
	}
	return failStyle.Render("FAIL")
}
