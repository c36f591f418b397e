package sqlview

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/ducklogs/internal/app"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/render"
	"github.com/joacominatel/ducklogs/internal/tui/form"
	"github.com/joacominatel/ducklogs/internal/tui/results"
	"github.com/joacominatel/ducklogs/internal/tui/theme"
	"github.com/samber/lo"
)

// SubmitMsg asks the app to run a statement.
type SubmitMsg struct {
	SQL string
}

// SQL keywords for formatting.
var sqlKeywords = map[string]bool{
	"select": true, "from": true, "where": true, "and": true, "or": true,
	"join": true, "inner": true, "outer": true, "left": true, "right": true,
	"cross": true, "on": true, "using": true, "not": true, "in": true,
	"is": true, "null": true, "like": true, "ilike": true, "glob": true,
	"order": true, "by": true, "group": true, "having": true, "qualify": true,
	"limit": true, "offset": true, "as": true, "distinct": true,
	"count": true, "sum": true, "avg": true, "min": true, "max": true,
	"between": true, "exists": true, "case": true, "when": true,
	"then": true, "else": true, "end": true, "with": true, "over": true,
	"partition": true, "union": true, "all": true, "asc": true, "desc": true,
	"true": true, "false": true, "cast": true, "describe": true,
	"read_parquet": true, "read_json_auto": true, "read_csv_auto": true,
}

const editorHeight = 6

// Model is the free-form SQL view: an editor above a result grid.
type Model struct {
	tr       *i18n.Translator
	textarea textarea.Model
	results  results.Model
	state    form.State
	width    int
	height   int
	focused  bool
	onGrid   bool

	// Column-name completion from the last result
	columns     []string
	completing  bool
	completions []string
	compIndex   int
}

// New creates the view with an initial statement.
func New(tr *i18n.Translator, sql string) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = "│ "
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle()
	ta.BlurredStyle.Base = lipgloss.NewStyle()
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.ColorMuted)
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.ColorMuted)
	ta.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(theme.ColorPrimary)
	ta.BlurredStyle.Prompt = lipgloss.NewStyle().Foreground(theme.ColorBorder)
	ta.SetHeight(editorHeight)
	ta.SetValue(sql)

	m := Model{
		textarea: ta,
		results:  results.New(tr),
	}
	m.SetTranslator(tr)
	return m
}

// SetTranslator switches the display language.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
	m.textarea.Placeholder = tr.T(i18n.SQLPlaceholder)
	m.results.SetTranslator(tr)
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.textarea.SetWidth(max(w-2, 10))
	m.results.SetSize(w, max(h-editorHeight-8, 5))
}

// SetFocused focuses the editor or the grid, whichever was last active.
func (m *Model) SetFocused(f bool) {
	m.focused = f
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.textarea.Blur()
	m.results.SetFocused(false)
	if !m.focused {
		return
	}
	if m.onGrid {
		m.results.SetFocused(true)
	} else {
		m.textarea.Focus()
	}
}

// ResultsFocused reports whether the results pane holds the focus.
func (m Model) ResultsFocused() bool {
	return m.focused && m.onGrid
}

// Value returns the current editor content.
func (m Model) Value() string {
	return m.textarea.Value()
}

// SetQuery replaces the editor content.
func (m *Model) SetQuery(sql string) {
	m.textarea.SetValue(sql)
}

// Clear empties the editor.
func (m *Model) Clear() {
	m.textarea.Reset()
	m.cancelCompletion()
}

// State returns the submission state.
func (m Model) State() form.State {
	return m.state
}

// Grid returns the rendered rows of the last successful query.
func (m Model) Grid() render.Grid {
	return m.results.Grid()
}

// SetResult records the outcome of the last submission. A failure keeps the
// previous rows on screen.
func (m *Model) SetResult(res *app.QueryResult, err error) {
	m.results.SetLoading(false)
	if err != nil {
		m.state.Fail(err)
		return
	}
	m.state.Succeed("")
	m.results.SetResult(res.Result, res.Duration)
	if res.Result != nil {
		m.columns = lo.Uniq(res.Result.Columns)
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		key := keyMsg.String()

		switch key {
		case "ctrl+e", "f5":
			m.cancelCompletion()
			cmd := m.submit()
			return m, cmd
		case "shift+tab":
			m.toggleFocus()
			return m, nil
		case "tab":
			if !m.onGrid && m.tryCompletion() {
				return m, nil
			}
			m.cancelCompletion()
			m.toggleFocus()
			return m, nil
		}
	}

	if m.onGrid {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	if isKey {
		key := keyMsg.String()
		switch key {
		case "ctrl+k":
			m.Clear()
			return m, nil
		case "ctrl+l":
			m.formatKeywords()
			return m, nil
		case "esc":
			if m.completing {
				m.cancelCompletion()
				return m, nil
			}
		}
		if m.completing {
			m.cancelCompletion()
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *Model) toggleFocus() {
	m.onGrid = !m.onGrid
	m.applyFocus()
}

// submit sends the editor content as-is. An empty statement still goes to the
// service, which reports its own error.
func (m *Model) submit() tea.Cmd {
	if !m.state.Begin() {
		return nil
	}
	sql := m.textarea.Value()
	m.results.SetLoading(true)
	return func() tea.Msg {
		return SubmitMsg{SQL: sql}
	}
}

// formatKeywords uppercases all SQL keywords in the editor content.
func (m *Model) formatKeywords() {
	val := m.textarea.Value()
	if val == "" {
		return
	}
	m.textarea.SetValue(FormatKeywords(val))
}

// FormatKeywords uppercases SQL keywords outside quoted literals and
// identifiers.
func FormatKeywords(val string) string {
	var result strings.Builder
	word := strings.Builder{}
	inString := false
	quote := rune(0)

	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := word.String()
		if sqlKeywords[strings.ToLower(w)] {
			result.WriteString(strings.ToUpper(w))
		} else {
			result.WriteString(w)
		}
		word.Reset()
	}

	for _, ch := range val {
		if (ch == '\'' || ch == '"') && !inString {
			inString = true
			quote = ch
			flush()
			result.WriteRune(ch)
			continue
		}
		if inString {
			if ch == quote {
				inString = false
			}
			result.WriteRune(ch)
			continue
		}

		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' {
			flush()
			result.WriteRune(ch)
		} else {
			word.WriteRune(ch)
		}
	}
	flush()

	return result.String()
}

// tryCompletion completes the trailing word against the columns of
// the last result. Returns true if a completion was applied.
func (m *Model) tryCompletion() bool {
	if m.completing && len(m.completions) > 0 {
		m.compIndex = (m.compIndex + 1) % len(m.completions)
		m.applyCompletion()
		return true
	}

	if len(m.columns) == 0 {
		return false
	}
	partial := extractLastWord(m.textarea.Value())
	if partial == "" {
		return false
	}

	lower := strings.ToLower(partial)
	matches := lo.Filter(m.columns, func(name string, _ int) bool {
		return strings.HasPrefix(strings.ToLower(name), lower) && name != partial
	})
	if len(matches) == 0 {
		return false
	}

	m.completing = true
	m.completions = matches
	m.compIndex = 0
	m.applyCompletion()
	return true
}

// applyCompletion replaces the last word with the current candidate.
func (m *Model) applyCompletion() {
	val := m.textarea.Value()
	base := strings.TrimSuffix(val, extractLastWord(val))
	m.textarea.SetValue(base + m.completions[m.compIndex])
}

func (m *Model) cancelCompletion() {
	m.completing = false
	m.completions = nil
	m.compIndex = 0
}

// extractLastWord returns the trailing identifier of s, or "" when s ends in
// whitespace or punctuation.
func extractLastWord(s string) string {
	i := len(s)
	for i > 0 && isIdentChar(rune(s[i-1])) {
		i--
	}
	return s[i:]
}

func isIdentChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_'
}

// View renders the view.
func (m Model) View() string {
	titleStyle := theme.StyleTitle
	if m.focused && !m.onGrid {
		titleStyle = theme.StyleActiveLabel
	}

	parts := []string{
		titleStyle.Render(m.tr.T(i18n.SQLTitle)),
		m.textarea.View(),
	}

	if m.completing && len(m.completions) > 1 {
		hint := make([]string, 0, len(m.completions))
		for i, c := range m.completions {
			if i == m.compIndex {
				hint = append(hint, lipgloss.NewStyle().Foreground(theme.ColorHighlight).Bold(true).Render(c))
			} else {
				hint = append(hint, theme.StyleMuted.Render(c))
			}
		}
		parts = append(parts, theme.StyleMuted.Render("Tab: ")+strings.Join(hint, " │ "))
	}

	parts = append(parts, m.state.Button(m.tr.T(i18n.SQLSubmit), m.tr.T(i18n.SQLSubmitting)))
	if line := m.state.View(m.tr); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts,
		theme.StyleMuted.Render(m.tr.T(i18n.SQLHint)),
		"",
		m.results.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
