package langcode

import (
	"strings"

	"golang.org/x/text/language"
)

// BrowserLanguage is the setting value meaning "no fixed language, follow
// the browser's Accept-Language header".
const BrowserLanguage = "Browser Language"

// Normalize maps a language name or tag to the canonical short code used
// throughout the console, like "en" or "de". An empty value and the
// BrowserLanguage sentinel normalize to "", deferring the choice to the
// request. Values that do not parse as a BCP 47 tag fall back to their
// lowercased two-letter prefix, which keeps legacy settings like "en_US"
// working.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == BrowserLanguage {
		return ""
	}

	if tag, err := language.Parse(raw); err == nil {
		if base, conf := tag.Base(); conf > language.No {
			return base.String()
		}
	}

	if len(raw) > 2 {
		raw = raw[:2]
	}
	return strings.ToLower(raw)
}

// FromAcceptLanguage picks the most preferred parseable tag of an
// Accept-Language header and returns its short code, or "" when the header
// yields nothing usable.
func FromAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}

	if base, conf := tags[0].Base(); conf > language.No {
		return base.String()
	}
	return ""
}
