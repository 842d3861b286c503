package merge

import (
	"strings"

	"github.com/hostsmith/hostsmith/src/internal/log"
)

// seedHostnames occupy the dedupe set from the start: the static footer owns
// these records, so no source may claim them.
var seedHostnames = []string{"localhost", "localhost.localdomain", "local", "broadcasthost"}

// Options carries the per-run settings of the merge pass.
type Options struct {
	// TargetIP replaces the source IP on every accepted record. Treated as
	// an opaque string; validation happens at the config boundary.
	TargetIP string
	// KeepDomainComments preserves trailing rule text as output comments.
	KeepDomainComments bool
}

// Merger is the streaming merge/dedupe driver: a single-pass stateful fold
// over the concatenated source lines. Input order decides which duplicate
// wins (first occurrence), so lines must be fed in source-priority order.
type Merger struct {
	exclusions  *ExclusionSet
	opts        Options
	seen        map[string]struct{}
	hostnames   map[string]struct{}
	body        []string
	uniqueCount int
	skipped     int
}

// NewMerger creates a Merger with an empty body and the seeded dedupe set.
func NewMerger(exclusions *ExclusionSet, opts Options) *Merger {
	if exclusions == nil {
		exclusions = NewExclusionSet()
	}

	seen := make(map[string]struct{}, len(seedHostnames))
	for _, h := range seedHostnames {
		seen[h] = struct{}{}
	}

	return &Merger{
		exclusions: exclusions,
		opts:       opts,
		seen:       seen,
		hostnames:  make(map[string]struct{}),
	}
}

// ProcessLine runs one raw source line through the pipeline. Per-line
// failures never abort the pass; a bad line is logged and skipped. The
// error return exists to satisfy line-iteration callbacks and is always nil.
func (m *Merger) ProcessLine(raw string) error {
	line := NormalizeLineText(raw)

	// comment and blank lines go through verbatim and are never counted
	if IsPassThrough(line) {
		m.body = append(m.body, line+"\n")
		return nil
	}

	if strings.Contains(line, "::1") {
		return nil
	}

	strippedRule := StripRule(line)
	if strippedRule == "" {
		return nil
	}

	if m.exclusions.Excluded(strippedRule, line) {
		return nil
	}

	rule := ParseRule(line)
	if rule == nil {
		log.Warnf("Skipping unparseable rule line: ==>%s<==", line)
		m.skipped++
		return nil
	}

	hostname, outputLine := Normalize(rule, m.opts.TargetIP, m.opts.KeepDomainComments)

	// first write wins, later duplicates are silently discarded
	if _, dup := m.seen[hostname]; dup {
		return nil
	}

	m.body = append(m.body, outputLine)
	m.seen[hostname] = struct{}{}
	m.hostnames[hostname] = struct{}{}
	m.uniqueCount++
	return nil
}

// Body returns the deduplicated output lines in emission order.
func (m *Merger) Body() []string {
	return m.body
}

// UniqueCount returns the number of distinct hostnames written to the body.
func (m *Merger) UniqueCount() int {
	return m.uniqueCount
}

// SkippedCount returns the number of lines dropped as unparseable.
func (m *Merger) SkippedCount() int {
	return m.skipped
}

// Hostnames returns the set of hostnames accepted into the body. The map is
// owned by the Merger; callers must not mutate it.
func (m *Merger) Hostnames() map[string]struct{} {
	return m.hostnames
}
