package form

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestLifecycle(t *testing.T) {
	var s State
	assert.Equal(t, StatusIdle, s.Status())

	assert.True(t, s.Begin())
	assert.True(t, s.InFlight())
	assert.False(t, s.Begin(), "second submit while in flight")

	s.Fail(&backend.RequestFailed{Message: "bad uri"})
	assert.Equal(t, StatusError, s.Status())
	assert.Equal(t, "bad uri", s.Message())

	assert.True(t, s.Begin())
	assert.Empty(t, s.Message(), "begin clears the previous error")

	s.Succeed("httpfs configured")
	assert.Equal(t, StatusSuccess, s.Status())
	assert.Equal(t, "httpfs configured", s.Message())
}

func TestFailWithPlainError(t *testing.T) {
	var s State
	s.Begin()
	s.Fail(errors.New("dial tcp: refused"))
	assert.Equal(t, "dial tcp: refused", s.Message())
}

func TestView(t *testing.T) {
	en := i18n.New(language.English)
	ja := i18n.New(language.Japanese)

	var s State
	assert.Empty(t, s.View(en))

	s.Begin()
	s.Succeed("httpfs configured")
	assert.Equal(t, "OK: httpfs configured", s.View(en))

	s.Begin()
	s.Succeed("")
	assert.Empty(t, s.View(en))

	s.Begin()
	s.Fail(&backend.RequestFailed{Message: "bad uri"})
	assert.Equal(t, "Error: bad uri", s.View(en))
	assert.Equal(t, "エラー: bad uri", s.View(ja))
}

func TestButton(t *testing.T) {
	var s State
	assert.Contains(t, s.Button("Apply", "Applying…"), "Apply")
	s.Begin()
	assert.Contains(t, s.Button("Apply", "Applying…"), "Applying…")
}
