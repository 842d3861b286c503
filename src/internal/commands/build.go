package commands

import (
	"flag"

	"github.com/hostsmith/hostsmith/src/internal/builder"
	"github.com/hostsmith/hostsmith/src/internal/config"
	"github.com/hostsmith/hostsmith/src/internal/log"
	"github.com/hostsmith/hostsmith/src/internal/utils"
)

func CreateBuildCommand() *BuildCommand {
	gc := &BuildCommand{
		fs: flag.NewFlagSet("build", flag.ExitOnError),
	}
	return gc
}

// BuildCommand runs one merge pass and writes the hosts artifact.
type BuildCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *BuildCommand) Name() string {
	return g.fs.Name()
}

func (g *BuildCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return g.cfg.ValidateSourcesPresent()
}

func (g *BuildCommand) Run() error {
	result, err := builder.New(g.cfg).Build()
	if err != nil {
		return err
	}

	if result.Changed {
		log.Successf("Generated %s with %s unique domains (%d sources, %v)",
			result.OutputPath, utils.FormatThousands(result.UniqueCount), len(result.SourceFiles), result.Duration.Round(timeRounding))
	} else {
		log.Successf("Hosts file %s already up to date (%s unique domains)",
			result.OutputPath, utils.FormatThousands(result.UniqueCount))
	}

	return nil
}
