package validators

import (
	"net"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmailFormatValid(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsEmailDomainValid resolves the domain's MX (or A/AAAA) records. It does
// network I/O and is only called when domain validation is enabled.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
