package utils

import (
	"regexp"
	"strings"
)

// Printed QR codes carry exactly 5 alphanumeric characters. The legacy
// lookup endpoints tolerate 4-6 characters for shop-level codes.
var (
	shortIDPattern      = regexp.MustCompile(`^[A-Za-z0-9]{5}$`)
	looseShortIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{4,6}$`)
)

// IsShortID reports whether identifier denotes a short id rather than a slug.
func IsShortID(identifier string) bool {
	return shortIDPattern.MatchString(identifier)
}

// IsLooseShortID matches the relaxed 4-6 character shop-code form.
func IsLooseShortID(identifier string) bool {
	return looseShortIDPattern.MatchString(identifier)
}

// NormalizeShortID upper-cases a short id for lookup (codes are stored upper-case).
func NormalizeShortID(identifier string) string {
	return strings.ToUpper(identifier)
}
