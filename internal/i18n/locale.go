// Package i18n narrows arbitrary client locale input down to the two
// locales the platform serves. Matching is delegated to x/text's language
// matcher so regional variants ("fr-CA", "en-US") and quality-weighted
// Accept-Language headers resolve sensibly instead of string-comparing.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// matcher prefers English when nothing matches; order defines priority.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// Normalize resolves any locale string ("fr", "fr-CA", "en_US", garbage) to
// domain.LocaleEN or domain.LocaleFR.
func Normalize(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return domain.LocaleEN
	}
	return fromTags(tag)
}

// FromRequest resolves the response locale for an HTTP request: an explicit
// ?locale= query parameter wins, then Accept-Language negotiation, then
// English.
func FromRequest(r *http.Request) string {
	if l := r.URL.Query().Get("locale"); l != "" {
		return Normalize(l)
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return domain.LocaleEN
	}
	return fromTags(tags...)
}

func fromTags(tags ...language.Tag) string {
	_, idx, _ := matcher.Match(tags...)
	if idx == 1 {
		return domain.LocaleFR
	}
	return domain.LocaleEN
}
