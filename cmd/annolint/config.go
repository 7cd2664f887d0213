package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".annolint.yaml"

// Config is the optional .annolint.yaml file at the project root
type Config struct {
	Format    string   `yaml:"format"`    // Report format: text, json or sarif
	Enable    []string `yaml:"enable"`    // Diagnostic IDs opted into
	Disable   []string `yaml:"disable"`   // Diagnostic IDs opted out of
	FailOn    string   `yaml:"failOn"`    // Minimum severity that fails the run
	Jobs      int      `yaml:"jobs"`      // Parallel symbol evaluations
	SkipTests bool     `yaml:"skipTests"` // Skip test sources when building the graph
}

// loadConfig reads the config file, an explicit path when given, otherwise
// the project root default. A missing default file yields an empty config.
func loadConfig(ctx context.Context, path, root string) (*Config, error) {
	fs := afs.New()
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, defaultConfigFile)
		if ok, _ := fs.Exists(ctx, path); !ok {
			return &Config{}, nil
		}
	}
	content, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// enabledOverrides folds the enable and disable lists into per-ID overrides
func (c *Config) enabledOverrides(enable []string) map[string]bool {
	overrides := make(map[string]bool)
	for _, id := range c.Enable {
		overrides[id] = true
	}
	for _, id := range c.Disable {
		overrides[id] = false
	}
	for _, id := range enable {
		overrides[id] = true
	}
	return overrides
}
