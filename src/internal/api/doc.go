// Package api implements the HTTP API: artifact retrieval, build status,
// source listing, and on-demand rebuilds.
package api
