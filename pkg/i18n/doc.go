// Package i18n negotiates the visitor locale from an Accept-Language header.
//
// ParseAcceptLanguage follows RFC 7231 quality weighting: entries are sorted
// by descending q value, equal values keep the order in which the browser
// sent them, and tags are normalized to the underscore form (en_US) that utm
// parameters carry. Tags are validated as BCP 47 through
// golang.org/x/text/language.
//
// # Usage
//
//	import "github.com/dmitrymomot/gatrack/pkg/i18n"
//
//	locale, ok := i18n.PreferredLocale(r.Header.Get("Accept-Language"))
//	if ok {
//	    visitor.Locale = locale
//	}
//
// # Error Handling
//
// Negotiation is best-effort. Malformed entries are skipped and
// PreferredLocale reports false when nothing usable remains, so a broken
// header never blocks tracking.
package i18n
