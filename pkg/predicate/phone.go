package predicate

import (
	"regexp"
	"slices"
	"strings"
)

// AnyLocale matches a phone number of any supported locale or E.164.
const AnyLocale = "any"

var mobilePhoneRegexes = map[string]*regexp.Regexp{
	"ar-DZ": regexp.MustCompile(`^(?:\+?213|0)[567]\d{8}$`),
	"ar-SA": regexp.MustCompile(`^(?:\+?966|0)?5\d{8}$`),
	"ar-SY": regexp.MustCompile(`^(?:\+?963|0)?9\d{8}$`),
	"cs-CZ": regexp.MustCompile(`^(?:\+?420)? ?[1-9][0-9]{2} ?[0-9]{3} ?[0-9]{3}$`),
	"da-DK": regexp.MustCompile(`^(?:\+?45)?\d{8}$`),
	"de-DE": regexp.MustCompile(`^(?:\+?49|0)1[5-7]\d{8,9}$`),
	"el-GR": regexp.MustCompile(`^(?:\+?30)?69\d{8}$`),
	"en-AU": regexp.MustCompile(`^(?:\+?61|0)4\d{8}$`),
	"en-GB": regexp.MustCompile(`^(?:\+?44|0)7\d{9}$`),
	"en-HK": regexp.MustCompile(`^(?:\+?852-?)?[569]\d{3}-?\d{4}$`),
	"en-IN": regexp.MustCompile(`^(?:\+?91|0)?[789]\d{9}$`),
	"en-NZ": regexp.MustCompile(`^(?:\+?64|0)2\d{7,9}$`),
	"en-US": regexp.MustCompile(`^(?:\+?1)?[2-9]\d{2}[2-9]\d{6}$`),
	"en-ZA": regexp.MustCompile(`^(?:\+?27|0)\d{9}$`),
	"es-ES": regexp.MustCompile(`^(?:\+?34)?(?:6\d|7[1234])\d{7}$`),
	"fi-FI": regexp.MustCompile(`^(?:\+?358|0)\s?(?:4[01245]?|50)\s?(?:\d\s?){4,8}\d$`),
	"fr-FR": regexp.MustCompile(`^(?:\+?33|0)[67]\d{8}$`),
	"hu-HU": regexp.MustCompile(`^\+?36(?:20|30|70)\d{7}$`),
	"it-IT": regexp.MustCompile(`^(?:\+?39)?\s?3\d{2} ?\d{6,7}$`),
	"ja-JP": regexp.MustCompile(`^(?:\+?81|0)[789]0[ -]?\d{4}[ -]?\d{4}$`),
	"nb-NO": regexp.MustCompile(`^(?:\+?47)?[49]\d{7}$`),
	"nl-BE": regexp.MustCompile(`^(?:\+?32|0)4?\d{8}$`),
	"nn-NO": regexp.MustCompile(`^(?:\+?47)?[49]\d{7}$`),
	"pl-PL": regexp.MustCompile(`^(?:\+?48)? ?[5-8]\d ?\d{3} ?\d{2} ?\d{2}$`),
	"pt-BR": regexp.MustCompile(`^(?:\+?55|0)-?[1-9]{2}-?[2-9]\d{3,4}-?\d{4}$`),
	"pt-PT": regexp.MustCompile(`^(?:\+?351)?9[1236]\d{7}$`),
	"ru-RU": regexp.MustCompile(`^(?:\+?7|8)?9\d{9}$`),
	"tr-TR": regexp.MustCompile(`^(?:\+?90|0)?5\d{9}$`),
	"zh-CN": regexp.MustCompile(`^(?:\+?0?86-?)?1[345789]\d{9}$`),
	"zh-TW": regexp.MustCompile(`^(?:\+?886-?|0)?9\d{8}$`),
}

// MobilePhoneLocales lists the locales IsMobilePhone understands, sorted.
func MobilePhoneLocales() []string {
	locales := make([]string, 0, len(mobilePhoneRegexes))
	for locale := range mobilePhoneRegexes {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales
}

// IsMobilePhone reports whether s is a mobile phone number for locale.
// AnyLocale (or an empty locale) accepts any supported locale as well as any
// E.164 number. Unknown locales never match.
func IsMobilePhone(s, locale string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	if locale == "" || locale == AnyLocale {
		if matchesTag(s, "e164") {
			return true
		}
		for _, re := range mobilePhoneRegexes {
			if re.MatchString(s) {
				return true
			}
		}
		return false
	}

	re, ok := mobilePhoneRegexes[locale]
	if !ok {
		return false
	}
	return re.MatchString(s)
}

// IsSupportedLocale reports whether IsMobilePhone has a pattern for locale.
func IsSupportedLocale(locale string) bool {
	if locale == "" || locale == AnyLocale {
		return true
	}
	_, ok := mobilePhoneRegexes[locale]
	return ok
}
