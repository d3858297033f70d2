// Package candidate holds stateless text-analysis helpers operating on
// candidate input: field validation, years-of-experience extraction, tech
// stack categorization and question difficulty classification.
package candidate

import "regexp"

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// ValidateEmail reports whether s has a local@domain.tld shape. This is a
// structural check, not a deliverability check.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePhone strips all non-digit characters and accepts 10 to 15 digits,
// covering national and international formats.
func ValidatePhone(s string) bool {
	digits := nonDigitPattern.ReplaceAllString(s, "")
	return len(digits) >= 10 && len(digits) <= 15
}
