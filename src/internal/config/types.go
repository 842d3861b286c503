package config

import (
	"path/filepath"

	"github.com/hostsmith/hostsmith/src/internal/utils"
)

// HostsFilename is the fixed name of the generated artifact.
const HostsFilename = "hosts"

type Config struct {
	// ConfigVersion is the configuration file version.
	ConfigVersion uint8 `toml:"config_version" json:"config_version"`
	// General holds the merge pipeline configuration.
	General *GeneralConfig `toml:"general"`
	// API holds the HTTP API server configuration.
	API *APIConfig `toml:"api,omitempty" json:"api,omitempty"`
	// DNS holds the DNS sinkhole server configuration.
	DNS *DNSConfig `toml:"dns,omitempty" json:"dns,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// DataDir is the directory tree holding base hosts source files.
	DataDir string `toml:"data_dir" json:"data_dir" validate:"required"`
	// ExtensionsDir is the directory tree holding extension hosts source files.
	ExtensionsDir string `toml:"extensions_dir" json:"extensions_dir"`
	// OutputDir is the subfolder the generated hosts file is written into ("" = config directory).
	OutputDir string `toml:"output_dir" json:"output_dir"`
	// TargetIP is the IP every blocked hostname is mapped to (default: 0.0.0.0).
	TargetIP string `toml:"target_ip" json:"target_ip" validate:"required,target_ip"`
	// KeepDomainComments preserves trailing rule comments in the output.
	KeepDomainComments bool `toml:"keep_domain_comments" json:"keep_domain_comments"`
	// SkipStaticHosts omits the static localhost entries from the output.
	SkipStaticHosts bool `toml:"skip_static_hosts" json:"skip_static_hosts"`
	// Extensions lists the extension names to merge, in priority order.
	Extensions []string `toml:"extensions,omitempty" json:"extensions,omitempty"`
	// Exclusions lists domains excluded together with all their subdomains.
	Exclusions []string `toml:"exclusions,omitempty" json:"exclusions,omitempty" validate:"dive,exclusion_domain"`
	// WhitelistFile is the path of the literal-substring whitelist (missing file = empty whitelist).
	WhitelistFile string `toml:"whitelist_file" json:"whitelist_file"`
	// BlacklistFile is the path of the local blacklist appended after all other sources.
	BlacklistFile string `toml:"blacklist_file" json:"blacklist_file"`
	// PreambleFile is the path of an optional file copied verbatim between header and body.
	PreambleFile string `toml:"preamble_file" json:"preamble_file"`
}

type APIConfig struct {
	// Enable enables the HTTP API server (default: false).
	Enable bool `toml:"enable" json:"enable"`
	// Listen is the API listen address (default: 127.0.0.1:8787).
	Listen string `toml:"listen" json:"listen" validate:"hostport_or_empty"`
}

type DNSConfig struct {
	// Enable enables the DNS sinkhole server (default: false).
	Enable bool `toml:"enable" json:"enable"`
	// ListenAddr is the DNS listen address (default: 127.0.0.1).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"ip_or_empty"`
	// ListenPort is the DNS listen port (default: 5353).
	ListenPort uint16 `toml:"listen_port" json:"listen_port"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsDataDir returns the absolute path of the base sources directory.
func (c *Config) GetAbsDataDir() string {
	return utils.GetAbsolutePath(c.General.DataDir, c.GetConfigDir())
}

// GetAbsExtensionsDir returns the absolute path of the extensions directory.
func (c *Config) GetAbsExtensionsDir() string {
	return utils.GetAbsolutePath(c.General.ExtensionsDir, c.GetConfigDir())
}

// GetAbsOutputDir returns the absolute path of the output directory.
func (c *Config) GetAbsOutputDir() string {
	if c.General.OutputDir == "" {
		return c.GetConfigDir()
	}
	return utils.GetAbsolutePath(c.General.OutputDir, c.GetConfigDir())
}

// GetHostsFilePath returns the absolute path of the generated hosts artifact.
func (c *Config) GetHostsFilePath() string {
	return filepath.Join(c.GetAbsOutputDir(), HostsFilename)
}

// GetAbsWhitelistPath returns the absolute whitelist file path, or "" when unset.
func (c *Config) GetAbsWhitelistPath() string {
	if c.General.WhitelistFile == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.General.WhitelistFile, c.GetConfigDir())
}

// GetAbsBlacklistPath returns the absolute blacklist file path, or "" when unset.
func (c *Config) GetAbsBlacklistPath() string {
	if c.General.BlacklistFile == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.General.BlacklistFile, c.GetConfigDir())
}

// GetAbsPreamblePath returns the absolute preamble file path, or "" when unset.
func (c *Config) GetAbsPreamblePath() string {
	if c.General.PreambleFile == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.General.PreambleFile, c.GetConfigDir())
}

// GetAPIListen returns the API listen address with the default applied.
func (c *Config) GetAPIListen() string {
	if c.API == nil || c.API.Listen == "" {
		return "127.0.0.1:8787"
	}
	return c.API.Listen
}

// GetDNSListenAddr returns the DNS listen address with the default applied.
func (c *Config) GetDNSListenAddr() string {
	if c.DNS == nil || c.DNS.ListenAddr == "" {
		return "127.0.0.1"
	}
	return c.DNS.ListenAddr
}

// GetDNSListenPort returns the DNS listen port with the default applied.
func (c *Config) GetDNSListenPort() uint16 {
	if c.DNS == nil || c.DNS.ListenPort == 0 {
		return 5353
	}
	return c.DNS.ListenPort
}
