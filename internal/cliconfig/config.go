// Package cliconfig loads the CLI's optional project configuration file,
// hedl.yaml: a theme name, the default strict/lenient reference-resolution
// mode, and limit overrides layered on top of internal/limits.Default(),
// the same "walk up the directory tree, defaults if nothing found" shape
// the teacher's internal/config package used for spectr.yaml.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hedl-lang/hedl/internal/limits"
	"github.com/hedl-lang/hedl/internal/theme"
)

// ConfigFileName is the name of the project configuration file.
const ConfigFileName = "hedl.yaml"

// Config holds the CLI's project-level configuration.
type Config struct {
	// Theme selects the diagnostic color palette (default, dark, light).
	Theme string `yaml:"theme"`
	// StrictRefs sets the default reference-resolution mode. A nil value
	// means "unset"; Strict() treats that as true, matching hedl.Parse's
	// default.
	StrictRefs *bool `yaml:"strict_refs"`
	// Limits overrides individual internal/limits.Default() fields.
	Limits LimitOverrides `yaml:"limits"`

	// ProjectRoot is the directory hedl.yaml was found in, or the starting
	// path if no file was found.
	ProjectRoot string `yaml:"-"`
}

// LimitOverrides is the subset of internal/limits.Limits a project may
// override via hedl.yaml. Fields left nil keep the package default.
type LimitOverrides struct {
	MaxFileSize    *int64 `yaml:"max_file_size"`
	MaxIndentDepth *int   `yaml:"max_indent_depth"`
	MaxNestDepth   *int   `yaml:"max_nest_depth"`
	MaxNodes       *int   `yaml:"max_nodes"`
	MaxTotalKeys   *int   `yaml:"max_total_keys"`
	MaxObjectKeys  *int   `yaml:"max_object_keys"`
	MaxAliases     *int   `yaml:"max_aliases"`
}

// Strict reports the configured default reference-resolution mode.
func (c *Config) Strict() bool {
	if c.StrictRefs == nil {
		return true
	}
	return *c.StrictRefs
}

// ApplyTo returns l with every set override applied.
func (o LimitOverrides) ApplyTo(l limits.Limits) limits.Limits {
	if o.MaxFileSize != nil {
		l.MaxFileSize = *o.MaxFileSize
	}
	if o.MaxIndentDepth != nil {
		l.MaxIndentDepth = *o.MaxIndentDepth
	}
	if o.MaxNestDepth != nil {
		l.MaxNestDepth = *o.MaxNestDepth
	}
	if o.MaxNodes != nil {
		l.MaxNodes = *o.MaxNodes
	}
	if o.MaxTotalKeys != nil {
		l.MaxTotalKeys = *o.MaxTotalKeys
	}
	if o.MaxObjectKeys != nil {
		l.MaxObjectKeys = *o.MaxObjectKeys
	}
	if o.MaxAliases != nil {
		l.MaxAliases = *o.MaxAliases
	}
	return l
}

// Load searches for hedl.yaml starting from the current working directory,
// walking up the directory tree.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadFromPath(cwd)
}

// LoadFromPath searches for hedl.yaml starting from startPath, walking up
// the directory tree. If none is found, it returns default configuration
// with startPath as ProjectRoot.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %q: %w", startPath, err)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := parseConfigFile(configPath)
			if err != nil {
				return nil, err
			}
			cfg.ProjectRoot = currentPath
			if err := cfg.validate(); err != nil {
				return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
			}
			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return &Config{Theme: "default", ProjectRoot: absPath}, nil
}

func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", yamlErr.Errors)
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := theme.Get(c.Theme); err != nil {
		available := theme.Available()
		return fmt.Errorf("invalid theme %q, available themes: %v", c.Theme, available)
	}
	return nil
}
