package utils

import (
	"regexp"
	"strings"
)

// Format validation lives here as a pure collaborator: no I/O, no state.
// The reservation engine calls these but never defines its own format rules.

var (
	phoneCharsRe = regexp.MustCompile(`^\+?\d+$`)
	phoneStripRe = regexp.MustCompile(`[\s\-\(\)]`)
	nonDigitRe   = regexp.MustCompile(`\D`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// IsValidPhone checks the format of a phone number: digits with an optional
// leading +, separators allowed, 10 to 15 digits in total.
func IsValidPhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return false
	}
	clean := phoneStripRe.ReplaceAllString(phone, "")
	if !phoneCharsRe.MatchString(clean) {
		return false
	}
	digits := nonDigitRe.ReplaceAllString(clean, "")
	return len(digits) >= minPhoneDigits && len(digits) <= maxPhoneDigits
}

// NormalizePhone produces the lookup key used for guest identity. The key is
// the trimmed input: once a guest record exists under a key, the key never
// changes.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// IsValidEmail checks a basic email shape. Empty email is handled by the
// caller; an empty string is not a valid address here.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}
