package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/tui/theme"
)

// Model is the status bar component.
type Model struct {
	tr         *i18n.Translator
	width      int
	address    string
	connected  bool
	activeView string
	message    string
	busy       string
}

// New creates a new status bar model for the given backend address.
func New(tr *i18n.Translator, address string) Model {
	return Model{
		tr:      tr,
		address: address,
	}
}

// SetTranslator switches the display language.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
}

// SetWidth updates the component width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetConnected marks whether connection settings were applied successfully.
func (m *Model) SetConnected(connected bool) {
	m.connected = connected
}

// SetActiveView updates the displayed view name.
func (m *Model) SetActiveView(name string) {
	m.activeView = name
}

// SetMessage sets a temporary status message.
func (m *Model) SetMessage(msg string) {
	m.message = msg
}

// Message returns the current status message.
func (m Model) Message() string {
	return m.message
}

// SetBusy shows an activity indicator, or hides it when empty.
func (m *Model) SetBusy(indicator string) {
	m.busy = indicator
}

// View renders the status bar.
func (m Model) View() string {
	style := theme.StyleStatusBar.Width(m.width)

	dot := lipgloss.NewStyle().Foreground(theme.ColorMuted).Render("●")
	if m.connected {
		dot = lipgloss.NewStyle().Foreground(theme.ColorSuccess).Render("●")
	}
	left := dot + " " + m.tr.T(i18n.StatusBackend, m.address)
	if m.activeView != "" {
		left += " │ " + m.activeView
	}
	if m.busy != "" {
		left = m.busy + " " + left
	}

	right := m.tr.T(i18n.StatusHints)
	if m.message != "" {
		right = m.message
	}
	right += " │ " + m.tr.T(i18n.StatusLanguage, m.tr.Name())

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
