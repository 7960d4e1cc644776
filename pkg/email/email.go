// Package email checks the contact addresses recorded with exam results.
package email

import (
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize trims the address and lowercases its domain. The local part is
// kept as typed.
func Normalize(addr string) string {
	addr = strings.TrimSpace(addr)
	at := strings.LastIndexByte(addr, '@')
	if at < 0 {
		return addr
	}
	return addr[:at+1] + strings.ToLower(addr[at+1:])
}

// IsValid reports whether addr looks like a deliverable address: one @, no
// whitespace, and a dotted domain.
func IsValid(addr string) bool {
	return pattern.MatchString(addr)
}
