package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Fallback is used when no preference matches a supported language.
var Fallback = language.Japanese

// Supported lists the languages with a full catalog.
var Supported = []language.Tag{language.Japanese, language.English}

var (
	matcher = language.NewMatcher(Supported)
	cat     = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Fallback))
	for key, tr := range translations {
		_ = b.SetString(language.Japanese, string(key), tr.ja)
		_ = b.SetString(language.English, string(key), tr.en)
	}
	return b
}

// Translator renders messages in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for tag, matched against the supported languages.
func New(tag language.Tag) *Translator {
	tag = Match(tag)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// T formats the message for key with args.
func (t *Translator) T(key Key, args ...any) string {
	return t.printer.Sprintf(string(key), args...)
}

// Tag returns the active language.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Name returns the active language's own name, e.g. "日本語".
func (t *Translator) Name() string {
	return display.Self.Name(t.tag)
}

// Toggle returns a translator for the next supported language.
func (t *Translator) Toggle() *Translator {
	for i, tag := range Supported {
		if tag == t.tag {
			return New(Supported[(i+1)%len(Supported)])
		}
	}
	return New(Fallback)
}

// Match maps any tag onto a supported language, falling back to Japanese.
func Match(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Fallback
	}
	return Supported[idx]
}

// Parse reads a language preference such as "en", "ja-JP" or "ja_JP.UTF-8".
func Parse(s string) (language.Tag, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, false
	}
	_, _, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return tag, true
}

// Detect picks the display language: the saved preference first, then the
// locale environment variables, then Fallback.
func Detect(preference string, getenv func(string) string) language.Tag {
	candidates := []string{preference}
	if getenv != nil {
		candidates = append(candidates, getenv("LC_ALL"), getenv("LC_MESSAGES"), getenv("LANG"))
	}
	for _, c := range candidates {
		if tag, ok := Parse(c); ok {
			return Match(tag)
		}
	}
	return Fallback
}

// Code returns the short code stored in configuration, e.g. "ja".
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
