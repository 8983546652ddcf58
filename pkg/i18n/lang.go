package i18n

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// Locale is a language tag from an Accept-Language header with its quality value.
// Tag is normalized to the underscore form used by utm parameters (en_US).
type Locale struct {
	Tag     string
	Quality float64
}

// ParseAcceptLanguage parses an Accept-Language header into locales ordered
// by descending quality. Entries with equal quality keep their header order.
//
// Tags must be well-formed BCP 47 language tags starting with a language
// subtag; the wildcard, private-use tags (x-...) and malformed tags are
// skipped. Entries with q=0 mean "not acceptable" and are skipped, as are
// entries with a malformed or out-of-range q value. An absent or empty q
// value counts as 1.
func ParseAcceptLanguage(header string) []Locale {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var locales []Locale

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, params, _ := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if !isLanguageTag(tag) {
			continue
		}

		q, ok := parseQuality(params)
		if !ok {
			continue
		}

		locales = append(locales, Locale{Tag: NormalizeLocale(tag), Quality: q})
	}

	// Stable sort keeps header order for equal qualities.
	slices.SortStableFunc(locales, func(a, b Locale) int {
		return cmp.Compare(b.Quality, a.Quality)
	})

	return locales
}

// PreferredLocale returns the highest quality locale of the header.
// The boolean is false when the header is empty or none of its entries parse.
func PreferredLocale(header string) (string, bool) {
	locales := ParseAcceptLanguage(header)
	if len(locales) == 0 {
		return "", false
	}
	return locales[0].Tag, true
}

// NormalizeLocale converts a language tag to underscore form: en-US becomes en_US.
// Casing is preserved.
func NormalizeLocale(tag string) string {
	return strings.ReplaceAll(tag, "-", "_")
}

// isLanguageTag accepts well-formed tags, including ones whose subtags are
// unknown to the CLDR registry. Private-use tags name no language.
func isLanguageTag(tag string) bool {
	if tag == "" || tag == "*" {
		return false
	}
	if primary, _, _ := strings.Cut(tag, "-"); strings.EqualFold(primary, "x") {
		return false
	}
	_, err := language.Parse(tag)
	if err == nil {
		return true
	}
	var unknown language.ValueError
	return errors.As(err, &unknown)
}

// parseQuality extracts q from the parameter list following a tag. It
// reports false for entries that must be dropped.
func parseQuality(params string) (float64, bool) {
	for param := range strings.SplitSeq(params, ";") {
		name, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(name), "q") {
			continue
		}

		value = strings.TrimSpace(value)
		if value == "" {
			return 1, true
		}

		q, err := strconv.ParseFloat(value, 64)
		if err != nil || q <= 0 || q > 1 {
			return 0, false
		}
		return q, true
	}
	return 1, true
}
