package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type SourceType string

const (
	SourceDefault SourceType = "default"
	SourceYAML    SourceType = "yaml"
	SourceEnv     SourceType = "env"
	SourceCLI     SourceType = "cli"
)

func (s SourceType) String() string {
	return string(s)
}

// Source is one configuration layer.
type Source interface {
	Load() (map[string]any, error)
	Type() SourceType
}

// yamlProvider reads a YAML configuration file.
type yamlProvider struct {
	fs   afero.Fs
	path string
}

// NewYAMLProvider reads path from fs. A nil fs means the OS filesystem.
func NewYAMLProvider(fs afero.Fs, path string) Source {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &yamlProvider{fs: fs, path: path}
}

// Load returns an empty map when the file does not exist.
func (p *yamlProvider) Load() (map[string]any, error) {
	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}
	config := make(map[string]any)
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", p.path, err)
	}
	return config, nil
}

func (p *yamlProvider) Type() SourceType {
	return SourceYAML
}

// cliProvider implements Source for CLI flags keyed by dotted config paths.
type cliProvider struct {
	flags map[string]any
}

func NewCLIProvider(flags map[string]any) Source {
	return &cliProvider{flags: flags}
}

func (c *cliProvider) Load() (map[string]any, error) {
	config := make(map[string]any)
	for key, value := range c.flags {
		if err := setNested(config, key, value); err != nil {
			return nil, fmt.Errorf("failed to set CLI flag %s: %w", key, err)
		}
	}
	return config, nil
}

func (c *cliProvider) Type() SourceType {
	return SourceCLI
}

// setNested sets a value in a nested map using dot notation.
func setNested(m map[string]any, path string, value any) error {
	parts := strings.Split(path, ".")
	current := m
	for i, part := range parts {
		if part == "" {
			return fmt.Errorf("empty segment in path %q", path)
		}
		if i == len(parts)-1 {
			current[part] = value
			return nil
		}
		next, ok := current[part]
		if !ok {
			child := make(map[string]any)
			current[part] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("path conflict at %q", part)
		}
		current = child
	}
	return nil
}
