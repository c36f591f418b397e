package connect

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
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

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func newForm(lang language.Tag) Model {
	m := New(i18n.New(lang), "ap-northeast-1", "")
	m.SetSize(100, 30)
	m.SetFocused(true)
	return m
}

func TestSubmitSendsRegionOnly(t *testing.T) {
	m := newForm(language.English)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.Equal(t, SubmitMsg{Config: backend.ConnectionConfig{Region: "ap-northeast-1"}}, cmd())
	assert.True(t, m.State().InFlight())
}

func TestSubmitWithEndpoint(t *testing.T) {
	m := newForm(language.English)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "http://minio:9000")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.Equal(t, backend.ConnectionConfig{Region: "ap-northeast-1", Endpoint: "http://minio:9000"}, cmd().(SubmitMsg).Config)
}

func TestSubmitIgnoredWhileInFlight(t *testing.T) {
	m := newForm(language.English)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Applying…")
}

func TestSuccessMessage(t *testing.T) {
	m := newForm(language.English)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.SetResult(&backend.ConnectResult{OK: true, Message: "httpfs configured"}, nil)

	assert.Equal(t, form.StatusSuccess, m.State().Status())
	assert.Contains(t, m.View(), "OK: httpfs configured")
}

func TestErrorMessageLocalised(t *testing.T) {
	m := newForm(language.Japanese)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.SetResult(nil, &backend.RequestFailed{Message: "set region: boom"})

	view := m.View()
	assert.Contains(t, view, "エラー: set region: boom")
	assert.Contains(t, view, "接続設定")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, m.View(), "set region: boom", "resubmitting clears the previous error")
}

func TestBlurredFormIgnoresInput(t *testing.T) {
	m := newForm(language.English)
	m.SetFocused(false)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, form.StatusIdle, m.State().Status())
}
