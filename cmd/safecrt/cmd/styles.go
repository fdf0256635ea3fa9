package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/safecrt/foundation/utils/stringx"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(10)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	codeStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle()
)

// renderStatus shows a status with its numeric value
func renderStatus(st stringx.Status) string {
	text := st.String()
	if st.OK() {
		return okStyle.Render(text)
	}
	return failStyle.Render(text) + " " + codeStyle.Render("("+string(st.Code())+")")
}

// renderField renders one "label value" output line
func renderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}
