// Package config loads the duration admission settings.
//
// Configuration is YAML:
//
//	version: "1.0"
//	default_duration: short
//	on_invalid: reject
//	audit_log: /var/log/bella/audit.blog
//	presets:
//	  error: long
//	  info: 1000
//
// Every tier-valued key decodes through duration.Tier, so a file naming an
// unsanctioned magnitude fails to load.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bella-notify/bella-go/pkg/duration"
	"github.com/bella-notify/bella-go/pkg/version"
)

// Config holds the admission settings.
type Config struct {
	// Version is the duration contract version the file was written for.
	Version string `yaml:"version"`

	// DefaultDuration is the fallback tier used under PolicyFallback.
	DefaultDuration duration.Tier `yaml:"default_duration"`

	// OnInvalid selects what happens to unsanctioned magnitudes.
	OnInvalid Policy `yaml:"on_invalid"`

	// AuditLog is an optional path for the CBOR admission audit file.
	AuditLog string `yaml:"audit_log,omitempty"`

	// Presets maps notification kinds to tiers.
	Presets map[string]duration.Tier `yaml:"presets,omitempty"`
}

// Default returns the built-in configuration: reject invalid values, short
// default, no audit file, no presets.
func Default() *Config {
	return &Config{
		Version:         version.Current,
		DefaultDuration: duration.Short,
		OnInvalid:       PolicyReject,
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses configuration YAML on top of Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks version compatibility and that every tier is sanctioned.
func (c *Config) Validate() error {
	if err := version.CheckCompatible(c.Version); err != nil {
		return err
	}
	if !c.DefaultDuration.Valid() {
		return fmt.Errorf("default_duration: %w", duration.ErrInvalidDuration)
	}
	if c.OnInvalid != PolicyReject && c.OnInvalid != PolicyFallback {
		return fmt.Errorf("on_invalid: unknown policy %d", c.OnInvalid)
	}

	var errs []error
	for name, tier := range c.Presets {
		if name == "" {
			errs = append(errs, errors.New("presets: empty preset name"))
		}
		if !tier.Valid() {
			errs = append(errs, fmt.Errorf("presets.%s: %w", name, duration.ErrInvalidDuration))
		}
	}
	return errors.Join(errs...)
}

// Preset returns the tier configured for name.
func (c *Config) Preset(name string) (duration.Tier, bool) {
	t, ok := c.Presets[name]
	return t, ok
}
