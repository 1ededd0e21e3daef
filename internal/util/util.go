package util

import "unicode"

// IsAlphanumeric returns true if s is non-empty and only contains letters and digits
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
