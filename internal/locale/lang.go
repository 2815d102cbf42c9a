package locale

import "strings"

// Lang is a supported display language.
type Lang string

const (
	UK Lang = "uk"
	RU Lang = "ru"
	EN Lang = "en"
)

const DefaultLang = UK

var supportedLangs = []Lang{UK, RU, EN}

func Langs() []Lang {
	out := make([]Lang, len(supportedLangs))
	copy(out, supportedLangs)
	return out
}

func (l Lang) IsValid() bool {
	for _, s := range supportedLangs {
		if s == l {
			return true
		}
	}
	return false
}

// ParseLang accepts "uk", "ru", "en" (case-insensitive) and the legacy
// "ua" alias. Empty input yields DefaultLang.
func ParseLang(raw string) (Lang, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultLang, true
	}
	if raw == "ua" {
		return UK, true
	}
	l := Lang(raw)
	if !l.IsValid() {
		return "", false
	}
	return l, true
}
