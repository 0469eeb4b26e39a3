package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// toolManifest is an optional addcheck.toml discovered by walking up from
// the working directory. It supplies defaults for flags the user did not
// set explicitly.
type toolManifest struct {
	Path   string
	Root   string
	Config toolConfig
}

type toolConfig struct {
	Output outputConfig `toml:"output"`
	Check  checkConfig  `toml:"check"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type checkConfig struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
	Jobs           int `toml:"jobs"`
}

func findAddcheckToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "addcheck.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadToolManifest(startDir string) (*toolManifest, bool, error) {
	manifestPath, ok, err := findAddcheckToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadToolConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &toolManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadToolConfig(path string) (toolConfig, error) {
	var cfg toolConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return toolConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	switch cfg.Output.Format {
	case "", "pretty", "json":
	default:
		return toolConfig{}, fmt.Errorf("%s: output.format must be pretty or json, got %q", path, cfg.Output.Format)
	}
	switch cfg.Output.Color {
	case "", "auto", "on", "off":
	default:
		return toolConfig{}, fmt.Errorf("%s: output.color must be auto, on or off, got %q", path, cfg.Output.Color)
	}
	if cfg.Check.MaxDiagnostics < 0 {
		return toolConfig{}, fmt.Errorf("%s: check.max_diagnostics must not be negative", path)
	}
	return cfg, nil
}

// applyManifestDefaults copies manifest values into flags the user left at
// their defaults. Explicit flags always win.
func applyManifestDefaults(cmd *cobra.Command, manifest *toolManifest) {
	if manifest == nil {
		return
	}
	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if manifest.Config.Output.Format != "" && !flags.Changed("format") {
		_ = flags.Set("format", manifest.Config.Output.Format)
	}
	if manifest.Config.Output.Color != "" && !root.Changed("color") {
		_ = root.Set("color", manifest.Config.Output.Color)
	}
	if manifest.Config.Check.MaxDiagnostics > 0 && !root.Changed("max-diagnostics") {
		_ = root.Set("max-diagnostics", fmt.Sprint(manifest.Config.Check.MaxDiagnostics))
	}
	if manifest.Config.Check.Jobs > 0 && flags.Lookup("jobs") != nil && !flags.Changed("jobs") {
		_ = flags.Set("jobs", fmt.Sprint(manifest.Config.Check.Jobs))
	}
}
