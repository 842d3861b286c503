package merge

import (
	"regexp"
	"strings"
)

// ruleRegexp matches a data line: optional leading whitespace, an IPv4 quad,
// whitespace, a hostname, and optional trailing text.
var ruleRegexp = regexp.MustCompile(`^[ \t]*(\d+\.\d+\.\d+\.\d+)\s+([\w.-]+)(.*)`)

var tabRunRegexp = regexp.MustCompile(`\t+`)

// ParsedRule is a data line reduced to its components.
type ParsedRule struct {
	// IP is the address as it appeared in the source line.
	IP string
	// Hostname is the lowercased, trimmed hostname.
	Hostname string
	// Suffix is the trailing text after the hostname, "" if none.
	Suffix string
}

// ParseRule extracts the (IP, hostname, suffix) triple from a rule line.
// Returns nil when the line does not match the rule pattern.
func ParseRule(line string) *ParsedRule {
	m := ruleRegexp.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	return &ParsedRule{
		IP:       m[1],
		Hostname: strings.ToLower(strings.TrimSpace(m[2])),
		Suffix:   m[3],
	}
}

// StripRule reduces a rule line to its first two whitespace-separated tokens
// (IP and hostname candidate). Comments and extra tokens are discarded.
// Returns "" when the line has fewer than two tokens.
func StripRule(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	return fields[0] + " " + fields[1]
}

// NormalizeLineText prepares a raw source line for the pipeline: tab runs
// become single spaces, line terminators and trailing space/period runs are
// trimmed.
func NormalizeLineText(raw string) string {
	line := strings.TrimRight(raw, "\r\n")
	line = tabRunRegexp.ReplaceAllString(line, " ")
	return strings.TrimRight(line, " .")
}

// IsPassThrough reports whether line is a comment or blank line that must be
// copied to the output verbatim.
func IsPassThrough(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	return line[0] == '#'
}
