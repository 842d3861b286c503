package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hostsmith/hostsmith/src/internal/log"
)

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Errorf("Configuration file not found: %s", configFile)
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Data directory: %s", config.GetAbsDataDir())
	log.Debugf("Output hosts file: %s", config.GetHostsFilePath())

	return &config, nil
}

// applyDefaults fills absent optional fields with their documented defaults.
func (c *Config) applyDefaults() {
	if c.General == nil {
		return
	}

	if c.General.TargetIP == "" {
		c.General.TargetIP = "0.0.0.0"
	}
	if c.General.ExtensionsDir == "" {
		c.General.ExtensionsDir = "extensions"
	}
	if c.General.WhitelistFile == "" {
		c.General.WhitelistFile = "whitelist"
	}
	if c.General.BlacklistFile == "" {
		c.General.BlacklistFile = "blacklist"
	}
	if c.General.PreambleFile == "" {
		c.General.PreambleFile = "myhosts"
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644); err != nil {
		return err
	}
	return nil
}
