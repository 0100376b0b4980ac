package render

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

var dateMatcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
})

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate formats t as "month d, yyyy" in the closest supported language
// to lang. Spanish months are lower case ("octubre 19, 2026"); anything
// that is not Spanish falls back to English ("October 19, 2026").
func FormatDate(t time.Time, lang language.Tag) string {
	_, idx, conf := dateMatcher.Match(lang)
	if idx == 0 && conf != language.No {
		return fmt.Sprintf("%s %d, %d", spanishMonths[t.Month()-1], t.Day(), t.Year())
	}
	return t.Format("January 2, 2006")
}

// ParseLanguage parses a BCP 47 tag such as "es" or "en-US". Invalid input
// yields language.Spanish.
func ParseLanguage(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Spanish
	}
	return tag
}
