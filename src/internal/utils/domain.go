package utils

import "regexp"

var exclusionDomainRegexp = regexp.MustCompile(`^(www\d{0,3}[.]|https?)`)

// IsValidExclusionDomain reports whether domain is acceptable as an exclusion
// entry. Bare domains like "hulu.com" are accepted; empty strings, "www."
// prefixes and URL schemes are rejected so that exclusion patterns stay
// suffix-shaped.
func IsValidExclusionDomain(domain string) bool {
	if domain == "" {
		return false
	}
	return !exclusionDomainRegexp.MatchString(domain)
}
