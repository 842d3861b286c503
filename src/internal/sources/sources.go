package sources

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hostsmith/hostsmith/src/internal/config"
	"github.com/hostsmith/hostsmith/src/internal/log"
	"github.com/hostsmith/hostsmith/src/internal/utils"
)

// Collector gathers the ordered hosts source files for one merge pass.
//
// Ordering is fixed and deterministic: base data sources first (lexical walk
// order), then each configured extension in its configured order, then the
// optional local blacklist. The merge driver's first-occurrence-wins dedupe
// depends on this ordering.
type Collector struct {
	cfg *config.Config
}

// NewCollector creates a Collector bound to the given configuration.
func NewCollector(cfg *config.Config) *Collector {
	return &Collector{cfg: cfg}
}

// CollectSourceFiles returns the ordered list of source file paths. Missing
// directories and files contribute nothing; they never fail the run.
func (c *Collector) CollectSourceFiles() []string {
	var files []string

	files = append(files, findHostsFiles(c.cfg.GetAbsDataDir())...)

	for _, ext := range c.cfg.General.Extensions {
		extDir := filepath.Join(c.cfg.GetAbsExtensionsDir(), ext)
		extFiles := findHostsFiles(extDir)
		if len(extFiles) == 0 {
			log.Warnf("Extension \"%s\" has no hosts files under %s", ext, extDir)
		}
		files = append(files, extFiles...)
	}

	if blacklist := c.cfg.GetAbsBlacklistPath(); blacklist != "" {
		if _, err := os.Stat(blacklist); err == nil {
			files = append(files, blacklist)
		} else {
			log.Debugf("No blacklist file at %s", blacklist)
		}
	}

	return files
}

// IterateLines streams every line of every collected source file, in order,
// into fn. An unreadable source is skipped with a warning; fn errors abort
// the iteration.
func (c *Collector) IterateLines(fn func(line string) error) error {
	for _, path := range c.CollectSourceFiles() {
		if err := iterateFileLines(path, fn); err != nil {
			return err
		}
	}
	return nil
}

// ReadWhitelist returns the trimmed, non-comment, non-blank lines of the
// whitelist file. A missing whitelist is an empty exclusion list, not an
// error.
func (c *Collector) ReadWhitelist() []string {
	path := c.cfg.GetAbsWhitelistPath()
	if path == "" {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		log.Debugf("No whitelist file at %s, no literal exclusions will be applied", path)
		return nil
	}
	defer utils.CloseOrWarn(file)

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		log.Warnf("Failed to read whitelist file '%s': %v", path, err)
	}

	return entries
}

// ReadPreamble returns the verbatim content of the optional preamble file,
// or "" when it does not exist.
func (c *Collector) ReadPreamble() string {
	path := c.cfg.GetAbsPreamblePath()
	if path == "" {
		return ""
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("No preamble file at %s", path)
		return ""
	}
	return string(content)
}

// findHostsFiles walks root and collects every file named like the hosts
// artifact, in lexical walk order. Walk errors are logged and skipped.
func findHostsFiles(root string) []string {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warnf("Skipping unreadable source path '%s': %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() == config.HostsFilename {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		log.Warnf("Failed to walk source directory '%s': %v", root, err)
	}

	return files
}

// iterateFileLines feeds every line of the file at path into fn. Open and
// scan failures are non-fatal: the source's contribution is empty.
func iterateFileLines(path string, fn func(line string) error) error {
	file, err := os.Open(path)
	if err != nil {
		log.Warnf("Failed to read source file '%s', skipping: %v", path, err)
		return nil
	}
	defer utils.CloseOrWarn(file)

	log.Debugf("Reading source file %s", path)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warnf("Failed to scan source file '%s': %v", path, err)
	}

	return nil
}
