package sqlview

import (
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/ducklogs/internal/app"
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/tui/form"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "f5":
		return tea.KeyMsg{Type: tea.KeyF5}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newView(lang language.Tag, sql string) Model {
	m := New(i18n.New(lang), sql)
	m.SetSize(100, 40)
	m.SetFocused(true)
	return m
}

func run(t *testing.T, m Model, trigger string) (Model, string) {
	t.Helper()
	m, cmd := m.Update(key(trigger))
	require.NotNil(t, cmd)
	msg, ok := cmd().(SubmitMsg)
	require.True(t, ok)
	return m, msg.SQL
}

func TestSelectOneRendersSingleCell(t *testing.T) {
	m := newView(language.English, "SELECT 1 AS ok")

	m, sql := run(t, m, "ctrl+e")
	assert.Equal(t, "SELECT 1 AS ok", sql)
	assert.True(t, m.State().InFlight())

	m.SetResult(&app.QueryResult{Result: &backend.ResultSet{
		Columns: []string{"ok"},
		Rows:    []backend.Row{{"ok": json.Number("1")}},
	}}, nil)

	g := m.Grid()
	require.Equal(t, 1, g.RowCount())
	assert.Equal(t, []string{"1"}, g.Cells[0])
	assert.Contains(t, m.View(), "1 row(s)")
}

func TestF5SubmitsAndEmptySQLIsSent(t *testing.T) {
	m := newView(language.English, "")

	_, sql := run(t, m, "f5")

	assert.Empty(t, sql)
}

func TestSubmitIgnoredWhileInFlight(t *testing.T) {
	m := newView(language.English, "SELECT 1")
	m, _ = run(t, m, "ctrl+e")

	_, cmd := m.Update(key("ctrl+e"))
	assert.Nil(t, cmd)
}

func TestErrorKeepsRows(t *testing.T) {
	m := newView(language.Japanese, "SELECT 1 AS ok")
	m, _ = run(t, m, "ctrl+e")
	m.SetResult(&app.QueryResult{Result: &backend.ResultSet{
		Columns: []string{"ok"},
		Rows:    []backend.Row{{"ok": json.Number("1")}},
	}}, nil)

	m, _ = run(t, m, "ctrl+e")
	m.SetResult(nil, &backend.RequestFailed{Message: "Parser Error: syntax error"})

	assert.Equal(t, form.StatusError, m.State().Status())
	assert.Contains(t, m.View(), "エラー: Parser Error: syntax error")
	assert.Equal(t, 1, m.Grid().RowCount())
}

func TestFormatKeywords(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"select * from t where a = 1", "SELECT * FROM t WHERE a = 1"},
		{"select 'from where' as x", "SELECT 'from where' AS x"},
		{`select "order" from read_parquet('s3://b/*.parquet')`, `SELECT "order" FROM READ_PARQUET('s3://b/*.parquet')`},
		{"select level1 from t", "SELECT level1 FROM t"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatKeywords(tt.in))
	}
}

func TestEditorShortcuts(t *testing.T) {
	m := newView(language.English, "select 1")

	m, _ = m.Update(key("ctrl+l"))
	assert.Equal(t, "SELECT 1", m.Value())

	m, _ = m.Update(key("ctrl+k"))
	assert.Empty(t, m.Value())
}

func TestTabTogglesFocus(t *testing.T) {
	m := newView(language.English, "SELECT 1")

	m, _ = m.Update(key("tab"))
	assert.True(t, m.ResultsFocused())

	m, _ = m.Update(key("x"))
	assert.Equal(t, "SELECT 1", m.Value(), "keys go to the grid")

	m, _ = m.Update(key("shift+tab"))
	assert.False(t, m.ResultsFocused())
}

func TestColumnCompletion(t *testing.T) {
	m := newView(language.English, "SELECT level")
	m.SetResult(&app.QueryResult{Result: &backend.ResultSet{
		Columns: []string{"level", "level_name", "message"},
	}}, nil)

	m, _ = m.Update(key("tab"))
	assert.Equal(t, "SELECT level_name", m.Value())
	assert.False(t, m.ResultsFocused())

	m.SetQuery("SELECT mes")
	m, _ = m.Update(key("esc"))
	m, _ = m.Update(key("tab"))
	assert.Equal(t, "SELECT message", m.Value())

	m, _ = m.Update(key("esc"))
	m, _ = m.Update(key("tab"))
	assert.True(t, m.ResultsFocused(), "nothing left to complete")
}
