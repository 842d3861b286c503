// Package sources locates and streams the hosts source files that feed a
// merge pass: base data sources, configured extensions, the optional local
// blacklist, plus the whitelist and preamble inputs.
package sources
