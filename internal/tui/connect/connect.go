package connect

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/tui/form"
	"github.com/joacominatel/ducklogs/internal/tui/theme"
)

// SubmitMsg asks the app to send the connection settings.
type SubmitMsg struct {
	Config backend.ConnectionConfig
}

const (
	fieldRegion = iota
	fieldEndpoint
	fieldCount
)

// Model is the S3 connection settings form.
type Model struct {
	tr       *i18n.Translator
	region   textinput.Model
	endpoint textinput.Model
	field    int
	state    form.State
	width    int
	height   int
	focused  bool
}

// New creates the form with initial field values.
func New(tr *i18n.Translator, region, endpoint string) Model {
	r := textinput.New()
	r.Placeholder = "ap-northeast-1"
	r.CharLimit = 64
	r.Width = 30
	r.SetValue(region)

	e := textinput.New()
	e.CharLimit = 500
	e.Width = 50
	e.SetValue(endpoint)

	m := Model{
		region:   r,
		endpoint: e,
	}
	m.SetTranslator(tr)
	return m
}

// SetTranslator switches the display language.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
	m.endpoint.Placeholder = tr.T(i18n.ConnectEndpointPlaceholder)
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	if w > 10 {
		m.endpoint.Width = min(50, w-6)
		m.region.Width = min(30, w-6)
	}
}

// SetFocused focuses the current field, or blurs every field.
func (m *Model) SetFocused(f bool) {
	m.focused = f
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.region.Blur()
	m.endpoint.Blur()
	if !m.focused {
		return
	}
	switch m.field {
	case fieldRegion:
		m.region.Focus()
	case fieldEndpoint:
		m.endpoint.Focus()
	}
}

// State returns the submission state.
func (m Model) State() form.State {
	return m.state
}

// Config returns the settings as they would be submitted. A blank endpoint
// is left out of the request.
func (m Model) Config() backend.ConnectionConfig {
	return backend.ConnectionConfig{
		Region:   m.region.Value(),
		Endpoint: m.endpoint.Value(),
	}
}

// SetResult records the outcome of the last submission.
func (m *Model) SetResult(res *backend.ConnectResult, err error) {
	if err != nil {
		m.state.Fail(err)
		return
	}
	m.state.Succeed(res.Message)
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.field = (m.field + 1) % fieldCount
			m.applyFocus()
			return m, nil
		case "shift+tab", "up":
			m.field = (m.field + fieldCount - 1) % fieldCount
			m.applyFocus()
			return m, nil
		case "enter":
			cmd := m.submit()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.field {
	case fieldRegion:
		m.region, cmd = m.region.Update(msg)
	case fieldEndpoint:
		m.endpoint, cmd = m.endpoint.Update(msg)
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	if !m.state.Begin() {
		return nil
	}
	cfg := m.Config()
	return func() tea.Msg {
		return SubmitMsg{Config: cfg}
	}
}

// View renders the form.
func (m Model) View() string {
	label := func(field int, key i18n.Key) string {
		if m.focused && m.field == field {
			return theme.StyleActiveLabel.Render(m.tr.T(key))
		}
		return theme.StyleLabel.Render(m.tr.T(key))
	}

	desc := theme.StyleMuted.Width(max(m.width-2, 20)).Render(m.tr.T(i18n.ConnectDescription))
	hint := theme.StyleMuted.Width(max(m.width-2, 20)).Render(m.tr.T(i18n.ConnectHint))

	parts := []string{
		theme.StyleTitle.Render(m.tr.T(i18n.ConnectTitle)),
		desc,
		"",
		label(fieldRegion, i18n.ConnectRegion),
		"  " + m.region.View(),
		label(fieldEndpoint, i18n.ConnectEndpoint),
		"  " + m.endpoint.View(),
		"",
		m.state.Button(m.tr.T(i18n.ConnectSubmit), m.tr.T(i18n.ConnectSubmitting)),
	}
	if line := m.state.View(m.tr); line != "" {
		parts = append(parts, "", line)
	}
	parts = append(parts, "", hint)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
