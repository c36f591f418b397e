package logs

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/ducklogs/internal/app"
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/render"
	"github.com/joacominatel/ducklogs/internal/tui/form"
	"github.com/joacominatel/ducklogs/internal/tui/results"
	"github.com/joacominatel/ducklogs/internal/tui/theme"
)

// SubmitMsg asks the app to quick-load a URI.
type SubmitMsg struct {
	Request backend.QuickRequest
}

const (
	fieldURI = iota
	fieldFormat
	fieldLimit
	fieldResults
	fieldCount
)

// formHeight is the number of lines above the results pane.
const formHeight = 14

// Model is the quick log loading view.
type Model struct {
	tr      *i18n.Translator
	uri     textinput.Model
	format  backend.Format
	limit   textinput.Model
	results results.Model
	field   int
	state   form.State
	sql     string
	width   int
	height  int
	focused bool
}

// New creates the view with initial field values.
func New(tr *i18n.Translator, uri string, format backend.Format, limit int) Model {
	u := textinput.New()
	u.Placeholder = "s3://your-bucket/logs/*.parquet"
	u.CharLimit = 1024
	u.Width = 60
	u.SetValue(uri)

	l := textinput.New()
	l.CharLimit = 10
	l.Width = 10
	l.SetValue(strconv.Itoa(limit))

	return Model{
		tr:      tr,
		uri:     u,
		format:  format,
		limit:   l,
		results: results.New(tr),
	}
}

// SetTranslator switches the display language.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
	m.results.SetTranslator(tr)
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	if w > 10 {
		m.uri.Width = min(80, w-6)
	}
	m.results.SetSize(w, max(h-formHeight, 5))
}

// SetFocused focuses the current field, or blurs every field.
func (m *Model) SetFocused(f bool) {
	m.focused = f
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.uri.Blur()
	m.limit.Blur()
	m.results.SetFocused(false)
	if !m.focused {
		return
	}
	switch m.field {
	case fieldURI:
		m.uri.Focus()
	case fieldLimit:
		m.limit.Focus()
	case fieldResults:
		m.results.SetFocused(true)
	}
}

// ResultsFocused reports whether the results pane holds the focus.
func (m Model) ResultsFocused() bool {
	return m.focused && m.field == fieldResults
}

// State returns the submission state.
func (m Model) State() form.State {
	return m.state
}

// SQL returns the statement the backend generated for the last load.
func (m Model) SQL() string {
	return m.sql
}

// Grid returns the rendered rows of the last successful load.
func (m Model) Grid() render.Grid {
	return m.results.Grid()
}

// Request returns the request as it would be submitted.
func (m Model) Request() backend.QuickRequest {
	return backend.QuickRequest{
		URI:    m.uri.Value(),
		Format: m.format,
		Limit:  CoerceLimit(m.limit.Value()),
	}
}

// SetResult records the outcome of the last submission. A failure keeps the
// previously loaded rows and SQL on screen.
func (m *Model) SetResult(res *app.QueryResult, err error) {
	m.results.SetLoading(false)
	if err != nil {
		m.state.Fail(err)
		return
	}
	m.state.Succeed("")
	m.sql = res.SQL
	m.results.SetResult(res.Result, res.Duration)
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			m.field = (m.field + 1) % fieldCount
			m.applyFocus()
			return m, nil
		case "shift+tab":
			m.field = (m.field + fieldCount - 1) % fieldCount
			m.applyFocus()
			return m, nil
		case "enter":
			if m.field != fieldResults {
				cmd := m.submit()
				return m, cmd
			}
		}

		if m.field == fieldFormat {
			switch keyMsg.String() {
			case "right", "l", " ", "down":
				m.format = m.format.Next()
			case "left", "h", "up":
				m.format = m.format.Prev()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.field {
	case fieldURI:
		m.uri, cmd = m.uri.Update(msg)
	case fieldLimit:
		m.limit, cmd = m.limit.Update(msg)
	case fieldResults:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	if !m.state.Begin() {
		return nil
	}
	req := m.Request()
	m.limit.SetValue(strconv.Itoa(req.Limit))
	m.results.SetLoading(true)
	return func() tea.Msg {
		return SubmitMsg{Request: req}
	}
}

// CoerceLimit reads the leading integer of s the way a lenient number field
// does: surrounding blanks are ignored, trailing garbage is dropped, and
// anything unparsable or negative becomes 0.
func CoerceLimit(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// View renders the view.
func (m Model) View() string {
	label := func(field int, key i18n.Key) string {
		if m.focused && m.field == field {
			return theme.StyleActiveLabel.Render(m.tr.T(key))
		}
		return theme.StyleLabel.Render(m.tr.T(key))
	}

	parts := []string{
		theme.StyleTitle.Render(m.tr.T(i18n.LogsTitle)),
		label(fieldURI, i18n.LogsURI),
		"  " + m.uri.View(),
		label(fieldFormat, i18n.LogsFormat) + "  " + m.formatView(),
		label(fieldLimit, i18n.LogsLimit) + "  " + m.limit.View(),
		"",
		m.state.Button(m.tr.T(i18n.LogsSubmit), m.tr.T(i18n.LogsSubmitting)),
	}
	if line := m.state.View(m.tr); line != "" {
		parts = append(parts, line)
	}
	if m.sql != "" {
		sql := render.SingleLine(m.tr.T(i18n.LogsSQL, m.sql))
		parts = append(parts, theme.StyleMuted.MaxWidth(max(m.width, 20)).Render(sql))
	}
	parts = append(parts,
		theme.StyleMuted.Render(m.tr.T(i18n.FormHint)),
		"",
		m.results.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) formatView() string {
	items := make([]string, 0, len(backend.Formats))
	for _, f := range backend.Formats {
		if f == m.format {
			items = append(items, theme.StyleActiveTab.Render(string(f)))
		} else {
			items = append(items, theme.StyleTab.Render(string(f)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
