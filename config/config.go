// Package config loads levelspec settings: the case mode and the context
// used to resolve relative levelspecs.
package config

import (
	"fmt"
	"os"

	"github.com/dhamidi/levelspec/levelspec"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".levelspec.yaml"

// Environment variables that override the config file.
const (
	EnvCase     = "LEVELSPEC_CASE"
	EnvShow     = "LEVELSPEC_SHOW"
	EnvSequence = "LEVELSPEC_SEQUENCE"
	EnvShot     = "LEVELSPEC_SHOT"
)

var log = commonlog.GetLogger("levelspec.config")

// Config holds levelspec settings.
type Config struct {
	Case    levelspec.CaseMode `yaml:"case"`
	Context Context            `yaml:"context"`
}

// Context is the show, sequence and shot a relative levelspec is resolved
// against. Empty fields have no value.
type Context struct {
	Show     string `yaml:"show,omitempty"`
	Sequence string `yaml:"sequence,omitempty"`
	Shot     string `yaml:"shot,omitempty"`
}

// Default returns a strict config with an empty context.
func Default() *Config {
	return &Config{Case: levelspec.Strict}
}

// Load reads the YAML file at path and applies environment overrides. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Debugf("no config at %s, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		log.Debugf("loaded config from %s", path)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings with the LEVELSPEC_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCase); ok && v != "" {
		mode, err := levelspec.ParseCaseMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCase, err)
		}
		c.Case = mode
	}
	if v, ok := lookup(EnvShow); ok && v != "" {
		c.Context.Show = v
	}
	if v, ok := lookup(EnvSequence); ok && v != "" {
		c.Context.Sequence = v
	}
	if v, ok := lookup(EnvShot); ok && v != "" {
		c.Context.Shot = v
	}
	return nil
}

// Options returns the parse options selected by c.
func (c *Config) Options() []levelspec.Option {
	return []levelspec.Option{levelspec.WithCaseMode(c.Case)}
}

// Resolver returns a resolver that answers from c's context.
func (c *Config) Resolver() levelspec.Resolver {
	return c.Context
}

// Resolve implements levelspec.Resolver.
func (ctx Context) Resolve(name levelspec.LevelName) (string, bool) {
	var value string
	switch name {
	case levelspec.Show:
		value = ctx.Show
	case levelspec.Sequence:
		value = ctx.Sequence
	case levelspec.Shot:
		value = ctx.Shot
	}
	return value, value != ""
}

// Merge returns a context with the non-empty fields of override taking
// precedence over ctx.
func (ctx Context) Merge(override Context) Context {
	if override.Show != "" {
		ctx.Show = override.Show
	}
	if override.Sequence != "" {
		ctx.Sequence = override.Sequence
	}
	if override.Shot != "" {
		ctx.Shot = override.Shot
	}
	return ctx
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
