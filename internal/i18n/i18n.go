// Package i18n resolves UI strings against per-language tables.
package i18n

import "time"

// Lang identifies a supported interface language.
type Lang string

const (
	English Lang = "en"
	Bangla  Lang = "bn"
)

// Supported lists selectable languages in display order.
var Supported = []Lang{English, Bangla}

// Native is the language's own name, for the language-switch status line.
func (l Lang) Native() string {
	if l == Bangla {
		return "বাংলা"
	}
	return "English"
}

// Lookup resolves key in the table for lang. The second return reports
// whether the table actually carries the key.
func Lookup(lang Lang, key string) (string, bool) {
	table, ok := catalog[lang]
	if !ok {
		return "", false
	}
	s, ok := table[key]
	return s, ok
}

// Localizer holds the active language for a session. String resolution
// falls back to English so surfaces keep their default text when a
// translation is missing.
type Localizer struct {
	lang Lang
}

func New(lang Lang) *Localizer {
	l := &Localizer{lang: English}
	l.SetLanguage(lang)
	return l
}

func (l *Localizer) Lang() Lang { return l.lang }

// SetLanguage switches the active table. Switching to the language that is
// already active is a no-op and returns false so callers skip persisting
// and reformatting.
func (l *Localizer) SetLanguage(lang Lang) bool {
	if _, ok := catalog[lang]; !ok {
		return false
	}
	if lang == l.lang {
		return false
	}
	l.lang = lang
	return true
}

// Toggle cycles to the next supported language and reports the new one.
func (l *Localizer) Toggle() Lang {
	for i, lang := range Supported {
		if lang == l.lang {
			next := Supported[(i+1)%len(Supported)]
			l.SetLanguage(next)
			return next
		}
	}
	return l.lang
}

// T resolves key for the active language, falling back to English, then to
// the key itself so untranslated surfaces stay visible rather than vanishing.
func (l *Localizer) T(key string) string {
	if s, ok := Lookup(l.lang, key); ok {
		return s
	}
	if s, ok := Lookup(English, key); ok {
		return s
	}
	return key
}

// FormatTime renders a timestamp using the active language's date convention.
func (l *Localizer) FormatTime(t time.Time) string {
	if l.lang == Bangla {
		return t.Format("02/01/2006 15:04")
	}
	return t.Format("02 Jan 2006 15:04")
}
