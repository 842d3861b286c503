package config

import (
	"strings"
	"testing"
)

func TestValidateConfig_MissingGeneralSection(t *testing.T) {
	cfg := &Config{}

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for missing general section")
	}
	if !strings.Contains(err.Error(), "general") {
		t.Errorf("Expected error mentioning 'general', got: %v", err)
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	cfg := &Config{
		General: &GeneralConfig{
			DataDir:    "data",
			TargetIP:   "0.0.0.0",
			Extensions: []string{"gambling", "porn"},
			Exclusions: []string{"hulu.com"},
		},
	}

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestValidateConfig_InvalidTargetIP(t *testing.T) {
	cfg := &Config{
		General: &GeneralConfig{
			DataDir:  "data",
			TargetIP: "not-an-ip",
		},
	}

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for invalid target IP")
	}
	if !strings.Contains(err.Error(), "target_ip") {
		t.Errorf("Expected error mentioning 'target_ip', got: %v", err)
	}
}

func TestValidateConfig_IPv6TargetIP(t *testing.T) {
	cfg := &Config{
		General: &GeneralConfig{
			DataDir:  "data",
			TargetIP: "::",
		},
	}

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected IPv6 target IP to be accepted, got: %v", err)
	}
}

func TestValidateConfig_InvalidExclusion(t *testing.T) {
	tests := []struct {
		name      string
		exclusion string
	}{
		{"www prefix", "www.facebook.com"},
		{"http scheme", "http://ads.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				General: &GeneralConfig{
					DataDir:    "data",
					TargetIP:   "0.0.0.0",
					Exclusions: []string{tt.exclusion},
				},
			}

			if err := cfg.ValidateConfig(); err == nil {
				t.Errorf("Expected error for exclusion %q", tt.exclusion)
			}
		})
	}
}

func TestValidateConfig_DuplicateExtension(t *testing.T) {
	cfg := &Config{
		General: &GeneralConfig{
			DataDir:    "data",
			TargetIP:   "0.0.0.0",
			Extensions: []string{"gambling", "gambling"},
		},
	}

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for duplicate extension")
	}
	if !strings.Contains(err.Error(), "duplicate extension") {
		t.Errorf("Expected duplicate extension message, got: %v", err)
	}
}

func TestValidateConfig_ExtensionWithPathSeparator(t *testing.T) {
	cfg := &Config{
		General: &GeneralConfig{
			DataDir:    "data",
			TargetIP:   "0.0.0.0",
			Extensions: []string{"../evil"},
		},
	}

	if err := cfg.ValidateConfig(); err == nil {
		t.Error("Expected error for extension containing path separator")
	}
}

func TestValidateConfig_InvalidAPIListen(t *testing.T) {
	cfg := &Config{
		General: &GeneralConfig{
			DataDir:  "data",
			TargetIP: "0.0.0.0",
		},
		API: &APIConfig{
			Enable: true,
			Listen: "not a hostport",
		},
	}

	if err := cfg.ValidateConfig(); err == nil {
		t.Error("Expected error for invalid api.listen")
	}
}

func TestValidateConfig_EnabledDNSWithoutPortUsesDefault(t *testing.T) {
	cfg := &Config{
		General: &GeneralConfig{
			DataDir:  "data",
			TargetIP: "0.0.0.0",
		},
		DNS: &DNSConfig{
			Enable: true,
		},
	}

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected enabled DNS without a port to validate, got: %v", err)
	}
	if port := cfg.GetDNSListenPort(); port != 5353 {
		t.Errorf("Expected default DNS port 5353, got %d", port)
	}
}

func TestValidateConfig_InvalidDNSListenAddr(t *testing.T) {
	cfg := &Config{
		General: &GeneralConfig{
			DataDir:  "data",
			TargetIP: "0.0.0.0",
		},
		DNS: &DNSConfig{
			Enable:     true,
			ListenAddr: "::1", // IPv6 must be in square brackets
			ListenPort: 5353,
		},
	}

	if err := cfg.ValidateConfig(); err == nil {
		t.Error("Expected error for unbracketed IPv6 listen address")
	}
}
