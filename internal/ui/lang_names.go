package ui

import "strings"

// langNames maps ISO 639-1 language codes to their native names.
var langNames = map[string]string{
	"en": "English",
	"fr": "Français",
	"es": "Español",
	"de": "Deutsch",
	"it": "Italiano",
	"pt": "Português",
	"ru": "Русский",
	"ja": "日本語",
	"ko": "한국어",
	"zh": "中文",
	"ar": "العربية",
	"hi": "हिन्दी",
	"tr": "Türkçe",
	"pl": "Polski",
	"nl": "Nederlands",
	"sv": "Svenska",
	"no": "Norsk",
	"da": "Dansk",
	"fi": "Suomi",
	"hu": "Magyar",
	"cs": "Čeština",
	"ro": "Română",
	"el": "Ελληνικά",
	"he": "עברית",
	"th": "ไทย",
	"vi": "Tiếng Việt",
	"id": "Bahasa Indonesia",
	"uk": "Українська",
	"bg": "Български",
	"hr": "Hrvatski",
	"ca": "Català",
}

// LanguageName returns the display name of a language code, or the code itself.
func LanguageName(code string) string {
	if name, ok := langNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}
