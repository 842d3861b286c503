// Package builder orchestrates the merge pipeline end to end: source
// collection, exclusion set construction, merging and deduplication, header
// rendering, and artifact writing with change detection.
package builder
