package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxUserAgentLength bounds stored user agents, in bytes.
const MaxUserAgentLength = 512

// CleanUserAgent replaces invalid UTF-8 sequences and truncates ua to at
// most MaxUserAgentLength bytes without splitting a rune.
func CleanUserAgent(ua string) string {
	ua = strings.ToValidUTF8(ua, "�")
	if len(ua) <= MaxUserAgentLength {
		return ua
	}

	cut := MaxUserAgentLength
	for cut > 0 && !utf8.RuneStart(ua[cut]) {
		cut--
	}
	return ua[:cut]
}
