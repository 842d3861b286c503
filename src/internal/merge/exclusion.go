package merge

import (
	"regexp"
	"strings"
)

// exclusionPattern prefixes every compiled domain so that any chain of
// subdomain labels matches as well ("hulu.com" also excludes
// "ads.hulu.com" and "a.b.hulu.com").
const exclusionPattern = `([a-zA-Z0-9-]+\.){0,}`

// ExclusionSet decides whether a rule line must be dropped. It holds two
// kinds of entries with deliberately different matching semantics:
//
//   - literal substrings (whitelist entries), tested against the raw full
//     line, so a whitelisted name still matches inside a trailing comment;
//   - compiled domain-suffix patterns (user exclusions), tested against the
//     hostname token of the stripped rule before normalization.
//
// The set is built once per run and is immutable during the merge pass.
type ExclusionSet struct {
	literals []string
	patterns []*regexp.Regexp
}

// NewExclusionSet creates an empty exclusion set.
func NewExclusionSet() *ExclusionSet {
	return &ExclusionSet{}
}

// AddLiteral registers a literal whitelist substring.
func (s *ExclusionSet) AddLiteral(entry string) {
	s.literals = append(s.literals, entry)
}

// AddDomain compiles domain into a subdomain-aware suffix pattern and
// registers it.
func (s *ExclusionSet) AddDomain(domain string) error {
	re, err := regexp.Compile(exclusionPattern + regexp.QuoteMeta(domain))
	if err != nil {
		return err
	}
	s.patterns = append(s.patterns, re)
	return nil
}

// LiteralCount returns the number of registered literal entries.
func (s *ExclusionSet) LiteralCount() int {
	return len(s.literals)
}

// DomainCount returns the number of registered domain patterns.
func (s *ExclusionSet) DomainCount() int {
	return len(s.patterns)
}

// Excluded reports whether the line must be dropped. strippedRule is the
// two-token form of the line, fullLine the raw line text.
func (s *ExclusionSet) Excluded(strippedRule, fullLine string) bool {
	// Domain patterns run against the extracted hostname only.
	if fields := strings.Fields(strippedRule); len(fields) >= 2 {
		hostname := fields[1]
		for _, re := range s.patterns {
			if re.MatchString(hostname) {
				return true
			}
		}
	}

	// Literal whitelist entries match anywhere in the raw line.
	for _, literal := range s.literals {
		if strings.Contains(fullLine, literal) {
			return true
		}
	}

	return false
}

// BuildExclusionSet assembles an ExclusionSet from whitelist lines (literal
// substrings) and exclusion domains (suffix patterns).
func BuildExclusionSet(whitelistLines []string, domains []string) (*ExclusionSet, error) {
	set := NewExclusionSet()
	for _, line := range whitelistLines {
		set.AddLiteral(line)
	}
	for _, domain := range domains {
		if err := set.AddDomain(domain); err != nil {
			return nil, err
		}
	}
	return set, nil
}
