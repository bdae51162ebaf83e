package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	userPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	botPrefixStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78"))

	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).PaddingLeft(4)

	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	sidebarStyle = lipgloss.NewStyle().
			Width(32).
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("240"))

	limitOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	limitWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	limitDangStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().Bold(true)
)
