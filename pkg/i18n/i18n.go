package i18n

import (
	"time"
)

// Locale resolves user-facing strings and date formats. Schema rows keep
// canonical names; only workflow labels and value rendering are localized.
type Locale struct {
	code    string
	strings map[string]string
	dateFmt string
	timeFmt string
}

var locales = map[string]*Locale{
	"en": {
		code: "en",
		strings: map[string]string{
			"yes":             "Yes",
			"no":              "No",
			"nofiles":         "No files",
			"status_approved": "Approved",
			"notify_subject":  "Action required on a training log entry",
		},
		dateFmt: "2 January 2006",
		timeFmt: "2 January 2006, 15:04",
	},
	"fr": {
		code: "fr",
		strings: map[string]string{
			"yes":             "Oui",
			"no":              "Non",
			"nofiles":         "Aucun fichier",
			"status_approved": "Validé",
			"notify_subject":  "Action requise sur une fiche d'activité",
		},
		dateFmt: "02/01/2006",
		timeFmt: "02/01/2006 15:04",
	},
}

const DefaultCode = "en"

// Get returns the locale for code, falling back to the default.
func Get(code string) *Locale {
	if loc, ok := locales[code]; ok {
		return loc
	}
	return locales[DefaultCode]
}

func (l *Locale) Code() string { return l.code }

// T returns the translation for key, or the key itself when missing.
func (l *Locale) T(key string) string {
	if s, ok := l.strings[key]; ok {
		return s
	}
	return key
}

// FormatDate renders a unix timestamp as a short date; zero renders empty.
func (l *Locale) FormatDate(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).UTC().Format(l.dateFmt)
}

// FormatDatetime renders a unix timestamp with time of day; zero renders empty.
func (l *Locale) FormatDatetime(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).UTC().Format(l.timeFmt)
}

// FormatTime renders a time.Time with the locale's datetime layout.
func (l *Locale) FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(l.timeFmt)
}
