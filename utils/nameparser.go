package utils

import "strings"

// ParseFullName splits "Surname FirstName MiddleName" into its parts.
// Partial input is fine: one token is just a surname, two tokens surname and
// first name. Extra tokens beyond the third are ignored, empty input yields
// empty parts.
func ParseFullName(fullName string) (surname, firstName, middleName string) {
	parts := strings.Fields(fullName)
	if len(parts) > 0 {
		surname = parts[0]
	}
	if len(parts) > 1 {
		firstName = parts[1]
	}
	if len(parts) > 2 {
		middleName = parts[2]
	}
	return surname, firstName, middleName
}

// ComposeFullName joins the non-empty parts with single spaces, in
// surname / first name / middle name order. Inverse of ParseFullName for any
// name of up to three tokens.
func ComposeFullName(surname, firstName, middleName string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{surname, firstName, middleName} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
