// Package merge implements the hosts aggregation pipeline for hostsmith.
//
// The pipeline turns the concatenated text of many hosts source files into
// one deduplicated, normalized body plus a generated header. It is a strict
// sequential fold: lines are processed in source-concatenation order, and
// the first occurrence of a hostname wins.
//
// # Components
//
//   - Rule parsing: classify a line (comment/blank/data) and extract the
//     (IP, hostname, suffix) triple via pattern matching
//   - ExclusionSet: literal whitelist substrings plus compiled
//     domain-suffix patterns
//   - Normalize: canonical "<targetIP> <hostname>" output form
//   - Merger: the streaming merge/dedupe driver
//   - HeaderMeta: banner and static-entry rendering (fasttemplate)
//
// # Example Usage
//
//	excl, _ := merge.BuildExclusionSet(whitelistLines, []string{"hulu.com"})
//	m := merge.NewMerger(excl, merge.Options{TargetIP: "0.0.0.0"})
//
//	_ = src.IterateLines(m.ProcessLine)
//
//	meta := merge.HeaderMeta{Date: time.Now(), UniqueCount: m.UniqueCount()}
//	artifact := meta.Render(m.Body())
//
// The package performs no I/O and never prompts; all inputs arrive as
// pre-resolved values and per-line failures translate into skipped lines,
// never into pipeline errors.
package merge
