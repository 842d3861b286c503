package api

import "github.com/hostsmith/hostsmith/src/internal/builder"

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// ArtifactInfo describes the hosts artifact currently on disk.
type ArtifactInfo struct {
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	Size     int64  `json:"size,omitempty"`
	Modified string `json:"modified,omitempty"` // RFC3339
}

// StatusResponse returns server status information.
type StatusResponse struct {
	Version   VersionInfo     `json:"version"`
	Artifact  ArtifactInfo    `json:"artifact"`
	LastBuild *builder.Result `json:"last_build,omitempty"`
}

// SourcesResponse lists the source files the next build would merge.
type SourcesResponse struct {
	SourceFiles    []string `json:"source_files"`
	WhitelistCount int      `json:"whitelist_count"`
	Exclusions     []string `json:"exclusions,omitempty"`
}

// BuildResponse returns the result of a build run.
type BuildResponse struct {
	Result *builder.Result `json:"result"`
}
