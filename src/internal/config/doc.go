// Package config handles configuration management for hostsmith.
//
// Configuration lives in a single TOML file and is decoded with
// pelletier/go-toml. All decisions the merge pipeline needs arrive through
// this package as pre-resolved values: the core never prompts and holds no
// ambient state.
//
// # Sections
//
//   - [general]: source directories, target IP, exclusions, formatting flags
//   - [api]: optional HTTP API server
//   - [dns]: optional DNS sinkhole server
//
// # Validation
//
// Structural validation uses go-playground/validator with custom tags
// (target_ip, exclusion_domain, ip_or_empty, hostport_or_empty) and
// collects every problem into a ValidationErrors value instead of stopping
// at the first. The merge core itself treats target_ip as an opaque string;
// this package is the only place it is checked.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/hostsmith/hostsmith.conf")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//
// Relative paths in the configuration are resolved against the directory
// containing the configuration file.
package config
