package builder

import (
	"os"
	"runtime"
	"time"

	"github.com/hostsmith/hostsmith/src/internal/config"
	"github.com/hostsmith/hostsmith/src/internal/errors"
	"github.com/hostsmith/hostsmith/src/internal/log"
	"github.com/hostsmith/hostsmith/src/internal/merge"
	"github.com/hostsmith/hostsmith/src/internal/sources"
)

// Result describes one completed build of the hosts artifact.
type Result struct {
	// OutputPath is the absolute path of the generated artifact.
	OutputPath string `json:"output_path"`
	// UniqueCount is the number of unique blocked hostnames in the artifact.
	UniqueCount int `json:"unique_count"`
	// SkippedCount is the number of unparseable rule lines that were dropped.
	SkippedCount int `json:"skipped_count"`
	// SourceFiles lists the source files merged, in merge order.
	SourceFiles []string `json:"source_files"`
	// Changed reports whether the artifact on disk was rewritten.
	Changed bool `json:"changed"`
	// BuiltAt is the generation timestamp stamped into the artifact banner.
	BuiltAt time.Time `json:"built_at"`
	// Duration is how long the build took.
	Duration time.Duration `json:"duration_ns"`

	hostnames map[string]struct{}
}

// Hostnames returns the set of unique blocked hostnames of this build.
func (r *Result) Hostnames() map[string]struct{} {
	return r.hostnames
}

// Builder runs the full merge pipeline: collect sources, merge and dedupe,
// render the header, write the artifact.
type Builder struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build runs one merge pass and writes the artifact. The artifact file is
// left untouched when its content would be identical to the previous build.
func (b *Builder) Build() (*Result, error) {
	started := time.Now()
	collector := sources.NewCollector(b.cfg)

	exclusions, err := merge.BuildExclusionSet(collector.ReadWhitelist(), b.cfg.General.Exclusions)
	if err != nil {
		return nil, errors.NewMergeError("failed to build exclusion set", err)
	}
	log.Debugf("Exclusion set ready: %d literal entries, %d domain patterns",
		exclusions.LiteralCount(), exclusions.DomainCount())

	sourceFiles := collector.CollectSourceFiles()
	if len(sourceFiles) == 0 {
		log.Warnf("No hosts source files found under %s", b.cfg.GetAbsDataDir())
	} else {
		log.Infof("Merging %d source files", len(sourceFiles))
	}

	merger := merge.NewMerger(exclusions, merge.Options{
		TargetIP:           b.cfg.General.TargetIP,
		KeepDomainComments: b.cfg.General.KeepDomainComments,
	})
	if err := collector.IterateLines(merger.ProcessLine); err != nil {
		return nil, errors.NewMergeError("failed to merge source files", err)
	}

	if skipped := merger.SkippedCount(); skipped > 0 {
		log.Warnf("Skipped %d unparseable rule lines", skipped)
	}

	meta := merge.HeaderMeta{
		Date:            started,
		Extensions:      b.cfg.General.Extensions,
		UniqueCount:     merger.UniqueCount(),
		OutputSubfolder: b.cfg.General.OutputDir,
		SkipStaticHosts: b.cfg.General.SkipStaticHosts,
		IsLinuxHost:     runtime.GOOS == "linux",
		LocalHostname:   localHostname(),
		Preamble:        collector.ReadPreamble(),
	}

	outputPath := b.cfg.GetHostsFilePath()
	changed, err := writeArtifact(outputPath, meta.Render(merger.Body()))
	if err != nil {
		return nil, err
	}

	return &Result{
		OutputPath:   outputPath,
		UniqueCount:  merger.UniqueCount(),
		SkippedCount: merger.SkippedCount(),
		SourceFiles:  sourceFiles,
		Changed:      changed,
		BuiltAt:      started,
		Duration:     time.Since(started),
		hostnames:    merger.Hostnames(),
	}, nil
}

func localHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		log.Warnf("Failed to resolve machine hostname: %v", err)
		return "localhost"
	}
	return hostname
}
