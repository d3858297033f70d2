package candidate

import (
	"regexp"
	"strings"
)

const maxInputLength = 500

var blockedChars = regexp.MustCompile(`[<>"'%;()&+]`)

// SanitizeInput strips markup-prone characters, truncates to 500 characters
// and trims whitespace. This is presentation hygiene for transcripts, not a
// security boundary.
func SanitizeInput(text string) string {
	cleaned := blockedChars.ReplaceAllString(text, "")
	runes := []rune(cleaned)
	if len(runes) > maxInputLength {
		cleaned = string(runes[:maxInputLength])
	}
	return strings.TrimSpace(cleaned)
}
