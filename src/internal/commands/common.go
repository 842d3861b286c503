package commands

import (
	"time"

	"github.com/hostsmith/hostsmith/src/internal/config"
	"github.com/hostsmith/hostsmith/src/internal/errors"
)

// timeRounding is the precision used for durations in final report lines.
const timeRounding = time.Millisecond

// Runner is a CLI subcommand.
type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

// AppContext carries global flags shared by every subcommand.
type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, errors.NewConfigError("configuration validation failed", err)
	}

	return cfg, nil
}
