package merge

import (
	"fmt"
	"strings"
)

// Normalize converts a parsed rule into its canonical output line. The
// hostname is lowercased and trimmed; the suffix is preserved as a comment
// only when keepComments is set. Pure function, no side effects.
func Normalize(rule *ParsedRule, targetIP string, keepComments bool) (hostname string, outputLine string) {
	hostname = strings.ToLower(strings.TrimSpace(rule.Hostname))

	if rule.Suffix != "" && keepComments {
		// the suffix becomes a comment on the same record, never a separate host
		outputLine = fmt.Sprintf("%s %s #%s\n", targetIP, hostname, rule.Suffix)
	} else {
		outputLine = fmt.Sprintf("%s %s\n", targetIP, hostname)
	}

	return hostname, outputLine
}
