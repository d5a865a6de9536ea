package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLabels()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if value, ok := os.LookupEnv("ALCFG_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}

	paths := make([]string, 0, len(c.Paths.SearchPaths))
	seen := make(map[string]struct{}, len(c.Paths.SearchPaths))
	for _, dir := range c.Paths.SearchPaths {
		trimmed := strings.TrimSpace(dir)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "~") {
			if trimmed, err = expandPath(trimmed); err != nil {
				return fmt.Errorf("paths.search_paths: %w", err)
			}
		}
		trimmed = filepath.Clean(trimmed)
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		paths = append(paths, trimmed)
	}
	if len(paths) == 0 {
		paths = defaultSearchPaths()
	}
	c.Paths.SearchPaths = paths
	c.Paths.PreferredSubstring = strings.TrimSpace(c.Paths.PreferredSubstring)
	return nil
}

func (c *Config) normalizeLabels() {
	c.Labels.UnknownTitle = fallback(c.Labels.UnknownTitle, defaultUnknownTitle)
	c.Labels.Ungrouped = fallback(c.Labels.Ungrouped, defaultUngrouped)
	c.Labels.UnknownGroup = fallback(c.Labels.UnknownGroup, defaultUnknownGroup)
	c.Labels.UnknownSkin = fallback(c.Labels.UnknownSkin, defaultUnknownSkin)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
