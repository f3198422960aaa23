package chat

import "regexp"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate reports whether s matches the strict YYYY-MM-DD format.
// It checks shape only, not calendar validity.
func IsValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// IsValidPhone reports whether s contains exactly 10 digits once every
// non-digit character is stripped.
func IsValidPhone(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == 10
}
