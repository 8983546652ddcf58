package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatrack/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		header   string
		expected []i18n.Locale
	}{
		{
			name:     "empty header",
			header:   "",
			expected: nil,
		},
		{
			name:   "quality values order the result",
			header: "en-US;q=0.8,fr;q=0.9,de",
			expected: []i18n.Locale{
				{Tag: "de", Quality: 1},
				{Tag: "fr", Quality: 0.9},
				{Tag: "en_US", Quality: 0.8},
			},
		},
		{
			name:   "equal quality keeps header order",
			header: "en;q=0.5,fr;q=0.5",
			expected: []i18n.Locale{
				{Tag: "en", Quality: 0.5},
				{Tag: "fr", Quality: 0.5},
			},
		},
		{
			name:   "missing quality defaults to one and keeps order",
			header: "pt-BR,pt,en;q=0.3",
			expected: []i18n.Locale{
				{Tag: "pt_BR", Quality: 1},
				{Tag: "pt", Quality: 1},
				{Tag: "en", Quality: 0.3},
			},
		},
		{
			name:   "empty quality defaults to one",
			header: "fr;q=0.4,de;q=",
			expected: []i18n.Locale{
				{Tag: "de", Quality: 1},
				{Tag: "fr", Quality: 0.4},
			},
		},
		{
			name:   "casing is preserved",
			header: "zh-Hant-TW",
			expected: []i18n.Locale{
				{Tag: "zh_Hant_TW", Quality: 1},
			},
		},
		{
			name:   "whitespace handling",
			header: "  en-GB ; q=0.7 ,  fr  ",
			expected: []i18n.Locale{
				{Tag: "fr", Quality: 1},
				{Tag: "en_GB", Quality: 0.7},
			},
		},
		{
			name:   "wildcard and malformed tags skipped",
			header: "*,en-,!!,de;q=0.2",
			expected: []i18n.Locale{
				{Tag: "de", Quality: 0.2},
			},
		},
		{
			name:   "malformed quality drops the entry",
			header: "en;q=abc,fr;q=1.5,de;q=-1,it;q=0.1",
			expected: []i18n.Locale{
				{Tag: "it", Quality: 0.1},
			},
		},
		{
			name:   "zero quality means not acceptable",
			header: "fr;q=0,en;q=0.000,de;q=0.001",
			expected: []i18n.Locale{
				{Tag: "de", Quality: 0.001},
			},
		},
		{
			name:   "private use tags skipped",
			header: "x-klingon,X-Private;q=0.9,en-x-custom;q=0.5",
			expected: []i18n.Locale{
				{Tag: "en_x_custom", Quality: 0.5},
			},
		},
		{
			name:     "nothing parses",
			header:   ",,;q=0.5",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.ParseAcceptLanguage(tt.header))
		})
	}
}

func TestParseAcceptLanguageOversizedHeader(t *testing.T) {
	t.Parallel()

	// 10 + 454*9 bytes fill the 4096 byte limit exactly.
	header := "de;q=0.95," + strings.Repeat("en;q=0.1,", 1000)
	locales := i18n.ParseAcceptLanguage(header)
	require.Len(t, locales, 455)
	assert.Equal(t, "de", locales[0].Tag)
}

func TestPreferredLocale(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		header   string
		expected string
		ok       bool
	}{
		{"highest quality wins", "en-US;q=0.8,fr;q=0.9,de", "de", true},
		{"stable tie break", "en;q=0.5,fr;q=0.5", "en", true},
		{"region normalized", "en-US,en;q=0.9", "en_US", true},
		{"empty header", "", "", false},
		{"no entry parses", "*;q=0.5", "", false},
		{"only rejected language", "fr;q=0", "", false},
		{"only private use", "x-klingon", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			locale, ok := i18n.PreferredLocale(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, locale)
		})
	}
}

func TestNormalizeLocale(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "en_US", i18n.NormalizeLocale("en-US"))
	assert.Equal(t, "en_US", i18n.NormalizeLocale("en_US"))
	assert.Equal(t, "fr", i18n.NormalizeLocale("fr"))
}
