package ui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used by the view. A zero-value style renders its
// text unchanged, so PlainTheme doubles as the no-color mode.
type Theme struct {
	Border  lipgloss.Style // horizontal rules around the header
	Header  lipgloss.Style // title line
	Number  lipgloss.Style // 1-based task numbers
	Done    lipgloss.Style // text of completed tasks
	Success lipgloss.Style // status line after a successful command
	Error   lipgloss.Style // status line after a rejected command
	Warning lipgloss.Style // confirmation prompts
	Legend  lipgloss.Style // command descriptions in the footer and help
	Key     lipgloss.Style // command names in the footer and help
	Hint    lipgloss.Style // empty-list hint
	Prompt  lipgloss.Style // input prompt
}

// BlueTheme is the classic smallt palette.
func BlueTheme() Theme {
	return Theme{
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Number:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Done:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Legend:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Key:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("6")),
		Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// PlainTheme renders without any styling.
func PlainTheme() Theme {
	return Theme{}
}
