package utils

import "strings"

// HostMatches reports whether host equals domain or is one of its subdomains.
func HostMatches(host, domain string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	domain = strings.ToLower(strings.TrimPrefix(strings.TrimSuffix(domain, "."), "."))
	if domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// DomainAllowed applies the blacklist first, then the whitelist when it is
// not empty.
func DomainAllowed(host string, whitelist, blacklist []string) bool {
	for _, d := range blacklist {
		if HostMatches(host, d) {
			return false
		}
	}
	if len(whitelist) == 0 {
		return true
	}
	for _, d := range whitelist {
		if HostMatches(host, d) {
			return true
		}
	}
	return false
}
