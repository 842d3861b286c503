package api

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/hostsmith/hostsmith/src/internal/builder"
	"github.com/hostsmith/hostsmith/src/internal/config"
	"github.com/hostsmith/hostsmith/src/internal/log"
	"github.com/hostsmith/hostsmith/src/internal/sources"
)

var (
	// Version information set via ldflags at build time
	Version = "dev"
	Date    = "n/a"
	Commit  = "n/a"
)

// Handler serves the hostsmith HTTP API.
type Handler struct {
	cfg     *config.Config
	builder *builder.Builder

	// onBuild is invoked after every successful API-triggered build.
	onBuild func(*builder.Result)

	// buildMu serializes build runs; concurrent builds would interleave
	// writes to the same artifact and checksum sidecar.
	buildMu sync.Mutex

	mu        sync.Mutex
	lastBuild *builder.Result
}

// NewHandler creates an API handler. onBuild may be nil.
func NewHandler(cfg *config.Config, b *builder.Builder, onBuild func(*builder.Result)) *Handler {
	return &Handler{cfg: cfg, builder: b, onBuild: onBuild}
}

// GetHosts serves the current hosts artifact verbatim.
// GET /api/v1/hosts
func (h *Handler) GetHosts(w http.ResponseWriter, r *http.Request) {
	path := h.cfg.GetHostsFilePath()
	if _, err := os.Stat(path); err != nil {
		WriteNotFound(w, "hosts artifact")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	http.ServeFile(w, r, path)
}

// GetStatus returns server and artifact status.
// GET /api/v1/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	artifact := ArtifactInfo{Path: h.cfg.GetHostsFilePath()}
	if info, err := os.Stat(artifact.Path); err == nil {
		artifact.Exists = true
		artifact.Size = info.Size()
		artifact.Modified = info.ModTime().UTC().Format(time.RFC3339)
	}

	h.mu.Lock()
	lastBuild := h.lastBuild
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, StatusResponse{
		Version:   VersionInfo{Version: Version, Date: Date, Commit: Commit},
		Artifact:  artifact,
		LastBuild: lastBuild,
	})
}

// GetSources lists the source files the next build would merge.
// GET /api/v1/sources
func (h *Handler) GetSources(w http.ResponseWriter, r *http.Request) {
	collector := sources.NewCollector(h.cfg)

	writeJSON(w, http.StatusOK, SourcesResponse{
		SourceFiles:    collector.CollectSourceFiles(),
		WhitelistCount: len(collector.ReadWhitelist()),
		Exclusions:     h.cfg.General.Exclusions,
	})
}

// Build runs one merge pass and returns its result.
// POST /api/v1/build
func (h *Handler) Build(w http.ResponseWriter, r *http.Request) {
	h.buildMu.Lock()
	defer h.buildMu.Unlock()

	result, err := h.builder.Build()
	if err != nil {
		log.Errorf("API-triggered build failed: %v", err)
		WriteBuildError(w, err.Error())
		return
	}

	h.mu.Lock()
	h.lastBuild = result
	h.mu.Unlock()

	if h.onBuild != nil {
		h.onBuild(result)
	}

	writeJSON(w, http.StatusOK, BuildResponse{Result: result})
}

// CheckHealth is a trivial liveness endpoint.
// GET /health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// SetLastBuild records a build that happened outside an API request (for
// example the initial build of a serve run).
func (h *Handler) SetLastBuild(result *builder.Result) {
	h.mu.Lock()
	h.lastBuild = result
	h.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(DataResponse{Data: payload}); err != nil {
		log.Warnf("Failed to encode API response: %v", err)
	}
}
