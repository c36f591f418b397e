package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestCatalogsComplete(t *testing.T) {
	ja := New(language.Japanese)
	en := New(language.English)

	for key, tr := range translations {
		assert.NotEmpty(t, tr.ja, "ja %s", key)
		assert.NotEmpty(t, tr.en, "en %s", key)
		assert.NotEqual(t, string(key), ja.T(key), "ja %s not in catalog", key)
		assert.NotEqual(t, string(key), en.T(key), "en %s not in catalog", key)
	}
}

func TestT(t *testing.T) {
	ja := New(language.Japanese)
	en := New(language.English)

	assert.Equal(t, "結果がありません", ja.T(NoData))
	assert.Equal(t, "No results", en.T(NoData))
	assert.Equal(t, "Error: bad uri", en.T(Error, "bad uri"))
	assert.Equal(t, "エラー: bad uri", ja.T(Error, "bad uri"))
	assert.Equal(t, "OK: httpfs configured", en.T(Success, "httpfs configured"))
	assert.Equal(t, "ログ一覧", ja.T(NavLogs))
}

func TestToggleAndName(t *testing.T) {
	ja := New(language.Japanese)
	assert.Equal(t, "日本語", ja.Name())

	en := ja.Toggle()
	assert.Equal(t, language.English, en.Tag())
	assert.Equal(t, "English", en.Name())
	assert.Equal(t, language.Japanese, en.Toggle().Tag())
}

func TestMatch(t *testing.T) {
	assert.Equal(t, language.English, Match(language.MustParse("en-US")))
	assert.Equal(t, language.Japanese, Match(language.MustParse("ja-JP")))
	assert.Equal(t, Fallback, Match(language.French))
}

func TestDetect(t *testing.T) {
	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}

	tests := []struct {
		name       string
		preference string
		env        map[string]string
		want       language.Tag
	}{
		{"preference wins", "en", map[string]string{"LANG": "ja_JP.UTF-8"}, language.English},
		{"lc_all before lang", "", map[string]string{"LC_ALL": "en_US.UTF-8", "LANG": "ja_JP.UTF-8"}, language.English},
		{"lang", "", map[string]string{"LANG": "ja_JP.UTF-8"}, language.Japanese},
		{"posix locale skipped", "", map[string]string{"LC_ALL": "C", "LANG": "en_GB.UTF-8"}, language.English},
		{"unsupported preference skipped", "fr", map[string]string{"LANG": "en_US"}, language.English},
		{"nothing set", "", map[string]string{}, Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.preference, env(tt.env)))
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, "ja", Code(language.Japanese))
	assert.Equal(t, "en", Code(New(language.MustParse("en-GB")).Tag()))
}
