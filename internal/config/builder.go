package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Load assembles the configuration from, in order of precedence, the
// overrides (CLI flags), the environment, the JSON file at path (skipped when
// path is empty) and the defaults. A field set by a higher layer is never
// replaced by a lower one.
func Load(path string, overrides *Config) (*Config, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON(path).
		build()
}

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	cfg := new(Config)
	for _, c := range b.configs {
		if err := mergo.Merge(cfg, c); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := mergo.Merge(cfg, Defaults(cfg.Storage.Driver)); err != nil {
		return nil, fmt.Errorf("error merging defaults: %w", err)
	}

	return cfg, cfg.Validate()
}

func (b *configBuilder) withOverrides(overrides *Config) *configBuilder {
	if overrides != nil {
		b.configs = append(b.configs, overrides)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withJSON(path string) *configBuilder {
	if path == "" {
		return b
	}

	jsonCfg, err := LoadConfig(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}
