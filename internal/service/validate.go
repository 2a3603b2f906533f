package service

import "regexp"

var (
	// local@domain.tld shape, nothing close to full RFC 5322.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits, spaces, +, - and parentheses. No length or region checks.
	phonePattern = regexp.MustCompile(`^[\d\s+()-]+$`)
)

// ValidEmail reports whether v looks like an email address.
func ValidEmail(v string) bool {
	return emailPattern.MatchString(v)
}

// ValidPhone reports whether v is made of phone-number characters.
func ValidPhone(v string) bool {
	return phonePattern.MatchString(v)
}
