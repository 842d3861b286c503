package builder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hostsmith/hostsmith/src/internal/config"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func loadTestConfig(t *testing.T, dir string, extra string) *config.Config {
	t.Helper()
	content := `config_version = 1

[general]
data_dir = "data"
` + extra
	configPath := filepath.Join(dir, "hostsmith.toml")
	writeFile(t, configPath, content)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func TestBuild_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "data", "adware", "hosts"), `# adware source
127.0.0.1 ads.example.com
127.0.0.1 tracker.example.net
`)
	writeFile(t, filepath.Join(dir, "blacklist"), "0.0.0.0 local-bad.example.org\n")

	cfg := loadTestConfig(t, dir, "")

	result, err := New(cfg).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if result.UniqueCount != 3 {
		t.Errorf("expected 3 unique hostnames, got %d", result.UniqueCount)
	}
	if !result.Changed {
		t.Error("expected first build to report the artifact as changed")
	}
	if result.OutputPath != filepath.Join(dir, "hosts") {
		t.Errorf("expected artifact at %s, got %s", filepath.Join(dir, "hosts"), result.OutputPath)
	}

	content, err := os.ReadFile(result.OutputPath)
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	artifact := string(content)

	for _, want := range []string{
		"0.0.0.0 ads.example.com\n",
		"0.0.0.0 tracker.example.net\n",
		"0.0.0.0 local-bad.example.org\n",
		"# Number of unique domains: 3\n",
		"127.0.0.1 localhost\n",
	} {
		if !strings.Contains(artifact, want) {
			t.Errorf("expected artifact to contain %q", want)
		}
	}

	if _, ok := result.Hostnames()["ads.example.com"]; !ok {
		t.Error("expected ads.example.com in the result hostname set")
	}
}

func TestBuild_SecondBuildIsUnchanged(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "data", "hosts"), "0.0.0.0 ads.example.com\n")

	cfg := loadTestConfig(t, dir, "")
	b := New(cfg)

	if _, err := b.Build(); err != nil {
		t.Fatalf("first build failed: %v", err)
	}

	result, err := b.Build()
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	if result.Changed {
		t.Error("expected identical rebuild to leave the artifact untouched")
	}

	writeFile(t, filepath.Join(dir, "data", "hosts"), "0.0.0.0 ads.example.com\n0.0.0.0 new.example.com\n")

	result, err = b.Build()
	if err != nil {
		t.Fatalf("third build failed: %v", err)
	}
	if !result.Changed {
		t.Error("expected build after source change to rewrite the artifact")
	}
	if result.UniqueCount != 2 {
		t.Errorf("expected 2 unique hostnames, got %d", result.UniqueCount)
	}
}

func TestBuild_WhitelistAndExclusionsApplied(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "data", "hosts"), `0.0.0.0 keep.example.com
0.0.0.0 literal-skip.example.com
0.0.0.0 sub.excluded.example.net
`)
	writeFile(t, filepath.Join(dir, "whitelist"), "literal-skip.example.com\n")

	cfg := loadTestConfig(t, dir, `exclusions = ["excluded.example.net"]
`)

	result, err := New(cfg).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if result.UniqueCount != 1 {
		t.Errorf("expected only 1 hostname to survive exclusion, got %d", result.UniqueCount)
	}
	if _, ok := result.Hostnames()["keep.example.com"]; !ok {
		t.Error("expected keep.example.com to survive")
	}
}

func TestBuild_ExtensionsAndPreamble(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "data", "hosts"), "0.0.0.0 base.example.com\n")
	writeFile(t, filepath.Join(dir, "extensions", "gambling", "hosts"), "0.0.0.0 bets.example.com\n")
	writeFile(t, filepath.Join(dir, "myhosts"), "# my local rules\n0.0.0.0 mine.example.com\n")

	cfg := loadTestConfig(t, dir, `extensions = ["gambling"]
`)

	result, err := New(cfg).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	content, err := os.ReadFile(result.OutputPath)
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	artifact := string(content)

	if !strings.Contains(artifact, "# Extensions added to this file: gambling\n") {
		t.Error("expected extensions line in the banner")
	}
	if !strings.Contains(artifact, "0.0.0.0 bets.example.com\n") {
		t.Error("expected extension entries in the artifact")
	}
	preambleIdx := strings.Index(artifact, "# my local rules")
	bodyIdx := strings.Index(artifact, "0.0.0.0 base.example.com")
	if preambleIdx == -1 || bodyIdx == -1 || preambleIdx > bodyIdx {
		t.Error("expected preamble to appear before the merged body")
	}
}

func TestBuild_EmptySources(t *testing.T) {
	dir := t.TempDir()
	cfg := loadTestConfig(t, dir, "")

	result, err := New(cfg).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if result.UniqueCount != 0 {
		t.Errorf("expected 0 unique hostnames, got %d", result.UniqueCount)
	}
	if !strings.HasSuffix(result.OutputPath, config.HostsFilename) {
		t.Errorf("unexpected output path %s", result.OutputPath)
	}
	if _, err := os.Stat(result.OutputPath); err != nil {
		t.Errorf("expected artifact to be written even with no sources: %v", err)
	}
}
