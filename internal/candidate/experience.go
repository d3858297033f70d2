package candidate

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns are tried in order; the first capture wins.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:year|yr)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`),
}

var standaloneNumber = regexp.MustCompile(`\b(\d+)\b`)

// ExtractYearsOfExperience pulls a years-of-experience figure out of free
// text. It first looks for a number with a year unit ("5 years", "3 yrs",
// "10+ years"), then falls back to the first standalone integer in [0,50].
// The second return is false when no numeral is found at all.
func ExtractYearsOfExperience(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range experiencePatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			return m[1], true
		}
	}

	for _, m := range standaloneNumber.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n >= 0 && n <= 50 {
			return m[1], true
		}
	}

	return "", false
}
