package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// supported lists the locales the UI ships strings for. The first entry is
// the fallback when matching fails.
var supported = []language.Tag{
	language.English,
	language.Arabic,
}

var matcher = language.NewMatcher(supported)

// rtlBases are the base languages written right-to-left.
var rtlBases = map[string]bool{
	"ar": true,
	"he": true,
	"fa": true,
	"ur": true,
}

// Locale bundles the resolved language tag with its reading direction.
// RTL is the single source of truth for direction everywhere in the UI:
// anything that would otherwise say "left" or "right" must derive it from
// this flag.
type Locale struct {
	Tag language.Tag
	RTL bool
}

// Resolve matches a BCP 47 code (e.g. "en", "ar", "ar-JO") against the
// supported locales. Unknown or empty codes fall back to English.
func Resolve(code string) Locale {
	if code == "" {
		return Locale{Tag: supported[0]}
	}
	tag, _ := language.MatchStrings(matcher, code)
	base, _ := tag.Base()
	return Locale{Tag: tag, RTL: rtlBases[base.String()]}
}

// Code returns the base language code ("en", "ar").
func (l Locale) Code() string {
	base, _ := l.Tag.Base()
	return base.String()
}

// SelfName returns the locale's name in its own language ("English",
// "العربية"), used for the language toggle.
func (l Locale) SelfName() string {
	return display.Self.Name(l.Tag)
}

// DisplayName chooses between a primary and an Arabic display name for the
// active locale. Falls back to the primary name when no Arabic name exists.
func (l Locale) DisplayName(name, arabicName string) string {
	if l.Code() == "ar" && arabicName != "" {
		return arabicName
	}
	return name
}

// Next cycles to the next supported locale, for the in-app language toggle.
func (l Locale) Next() Locale {
	for i, tag := range supported {
		base, _ := tag.Base()
		if base.String() == l.Code() {
			next := supported[(i+1)%len(supported)]
			return Resolve(next.String())
		}
	}
	return Resolve(supported[0].String())
}

// T looks up a translated UI string. Missing keys fall back to English, then
// to the key itself so a typo is visible rather than invisible.
func (l Locale) T(key string) string {
	if s, ok := translations[l.Code()][key]; ok {
		return s
	}
	if s, ok := translations["en"][key]; ok {
		return s
	}
	return key
}

var translations = map[string]map[string]string{
	"en": {
		"scroll_hint":    "Scroll for more categories",
		"loading":        "Loading...",
		"no_listings":    "No listings in this category yet",
		"categories":     "Categories",
		"listings":       "Listings",
		"all_categories": "All categories",
		"back":           "Back",
		"copy":           "Copy",
		"copied":         "Copied!",
	},
	"ar": {
		"scroll_hint":    "مرر لعرض المزيد من الفئات",
		"loading":        "جار التحميل...",
		"no_listings":    "لا توجد إعلانات في هذه الفئة بعد",
		"categories":     "الفئات",
		"listings":       "الإعلانات",
		"all_categories": "كل الفئات",
		"back":           "رجوع",
		"copy":           "نسخ",
		"copied":         "تم النسخ!",
	},
}
