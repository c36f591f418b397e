package statusbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestViewShowsBackendAndLanguage(t *testing.T) {
	m := New(i18n.New(language.English), "http://localhost:8080")
	m.SetWidth(160)
	m.SetActiveView("Logs")

	view := m.View()
	assert.Contains(t, view, "Backend: http://localhost:8080 │ Logs")
	assert.Contains(t, view, "F1-F3: View")
	assert.Contains(t, view, "Language: English")
}

func TestMessageReplacesHints(t *testing.T) {
	m := New(i18n.New(language.Japanese), "http://api:9000")
	m.SetWidth(160)
	m.SetMessage("コピーしました: 42")
	m.SetBusy("*")

	view := m.View()
	assert.Contains(t, view, "コピーしました: 42")
	assert.NotContains(t, view, "F1-F3")
	assert.Contains(t, view, "* ● バックエンド: http://api:9000")
	assert.Contains(t, view, "言語: 日本語")
}
