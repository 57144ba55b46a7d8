package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("205")
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("46")
	mutedColor   = lipgloss.Color("240")
	borderColor  = lipgloss.Color("63")
)

// Badge styles shared with the menu header.
var (
	MutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(successColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(errorColor)
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
