package langcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scanweb/console/pkg/langcode"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"browser language sentinel", langcode.BrowserLanguage, ""},
		{"short code", "en", "en"},
		{"region tag", "en-US", "en"},
		{"underscore legacy tag", "en_US", "en"},
		{"german region", "de-DE", "de"},
		{"chinese traditional", "zh-TW", "zh"},
		{"uppercase", "EN", "en"},
		{"whitespace", "  fr  ", "fr"},
		{"unparseable falls back to prefix", "x!", "x!"},
		{"long unparseable", "klingon!", "kl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, langcode.Normalize(tt.raw))
		})
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"single tag", "de-DE", "de"},
		{"quality ordering", "en;q=0.5, fr;q=0.9", "fr"},
		{"wildcard only", "*", ""},
		{"garbage", ";;;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, langcode.FromAcceptLanguage(tt.header))
		})
	}
}
