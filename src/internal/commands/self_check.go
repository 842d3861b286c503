package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/hostsmith/hostsmith/src/internal/config"
	"github.com/hostsmith/hostsmith/src/internal/log"
	"github.com/hostsmith/hostsmith/src/internal/merge"
	"github.com/hostsmith/hostsmith/src/internal/sources"
)

func CreateSelfCheckCommand() *SelfCheckCommand {
	gc := &SelfCheckCommand{
		fs: flag.NewFlagSet("self-check", flag.ExitOnError),
	}
	return gc
}

// SelfCheckCommand validates the configuration and reports what a build
// would consume, without writing anything.
type SelfCheckCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *SelfCheckCommand) Name() string {
	return g.fs.Name()
}

func (g *SelfCheckCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *SelfCheckCommand) Run() error {
	log.Infof("Running self-check...")
	log.Infof("---------------- Configuration START -----------------")

	if cfg, err := g.cfg.SerializeConfig(); err != nil {
		log.Errorf("Failed to serialize config: %v", err)
		return err
	} else {
		if _, err := os.Stdout.Write(cfg.Bytes()); err != nil {
			log.Errorf("Failed to output config: %v", err)
			return err
		}
	}

	log.Infof("---------------- Configuration END -------------------")

	if err := g.cfg.ValidateSourcesPresent(); err != nil {
		return err
	}

	collector := sources.NewCollector(g.cfg)

	sourceFiles := collector.CollectSourceFiles()
	log.Infof("Source files that would be merged (%d):", len(sourceFiles))
	for _, path := range sourceFiles {
		fmt.Printf("  %s\n", path)
	}

	whitelist := collector.ReadWhitelist()
	exclusions, err := merge.BuildExclusionSet(whitelist, g.cfg.General.Exclusions)
	if err != nil {
		return err
	}
	log.Infof("Exclusions: %d whitelist entries, %d domain patterns",
		exclusions.LiteralCount(), exclusions.DomainCount())

	log.Infof("Target IP: %s", g.cfg.General.TargetIP)
	log.Infof("Output artifact: %s", g.cfg.GetHostsFilePath())

	log.Successf("Self-check passed")
	return nil
}
