package recurrence

import (
	"strconv"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// Label tables for the two supported locales. Go has no locale-aware date
// formatter in the standard library and the platform only ships English and
// French, so a pair of lookup tables is the whole i18n surface here.
var (
	todayLabel    = map[string]string{domain.LocaleEN: "Today", domain.LocaleFR: "Aujourd'hui"}
	tomorrowLabel = map[string]string{domain.LocaleEN: "Tomorrow", domain.LocaleFR: "Demain"}

	weekdayNames = map[string][7]string{
		domain.LocaleEN: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		domain.LocaleFR: {"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	}

	shortMonthNames = map[string][12]string{
		domain.LocaleEN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		domain.LocaleFR: {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	}
)

// normLocale narrows an arbitrary locale string to one of the two supported
// tables, defaulting to English.
func normLocale(locale string) string {
	if locale == domain.LocaleFR {
		return domain.LocaleFR
	}
	return domain.LocaleEN
}

// relativeLabel returns the Today/Tomorrow literal when date is within one
// day of today, and "" otherwise.
func relativeLabel(date, today domain.Date, locale string) string {
	switch today.DaysUntil(date) {
	case 0:
		return todayLabel[locale]
	case 1:
		return tomorrowLabel[locale]
	}
	return ""
}

// WeekdayLabel maps an occurrence date to Today / Tomorrow / the full
// weekday name. This is the variant zone cards use for a single projected
// event ("Wednesday" / "mercredi").
func WeekdayLabel(date, today domain.Date, locale string) string {
	locale = normLocale(locale)
	if l := relativeLabel(date, today, locale); l != "" {
		return l
	}
	return weekdayNames[locale][int(date.Weekday())]
}

// ShortLabel maps an occurrence date to Today / Tomorrow / a short
// month-day date. This is the variant "next occurrence" badges use
// ("Jan 17" in English, "17 janv." in French).
func ShortLabel(date, today domain.Date, locale string) string {
	locale = normLocale(locale)
	if l := relativeLabel(date, today, locale); l != "" {
		return l
	}
	month := shortMonthNames[locale][int(date.Month)-1]
	day := strconv.Itoa(date.Day)
	if locale == domain.LocaleFR {
		return day + " " + month
	}
	return month + " " + day
}
