// Package theme holds the lipgloss styles shared by the interactive session.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles used by the chat renderer. Package-level so every component renders
// consistently without threading a style struct through constructors.
var (
	Banner   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	Divider  = lipgloss.NewStyle().Faint(true)
	BotName  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Username = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Model    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	Accent   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	Tokens   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	Muted    = lipgloss.NewStyle().Faint(true)
	Error    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Path     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// Reply headings, deepest level first: ### / ## / #.
	Heading3 = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Heading2 = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	Heading1 = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)
