package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the domain part of an address resolves,
// MX first with A/AAAA as a fallback. It vouches for the domain existing,
// not for the mailbox being deliverable.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	host := email[at+1:]

	if records, err := net.LookupMX(host); err == nil && len(records) > 0 {
		return true
	}

	ips, err := net.LookupIP(host)
	return err == nil && len(ips) > 0
}
