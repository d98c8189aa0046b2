package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusBar   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236"))
	statusLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236"))
	statusValue = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Background(lipgloss.Color("236")).Bold(true)
	keyHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Background(lipgloss.Color("236")).Italic(true)
)
