/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for barespec.
package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/barespec/specifier"
)

// Defaults applied to fields the config file leaves out.
const (
	DefaultCacheSize   = 512
	DefaultConcurrency = 8
)

// Config represents the barespec project configuration.
type Config struct {
	// Builtins are extra reserved module names, added to the Node.js set
	// (e.g. "electron" or "bun").
	Builtins []string `yaml:"builtins" json:"builtins"`

	// Ignore lists doublestar globs; matching specifiers are never resolved.
	Ignore []string `yaml:"ignore" json:"ignore"`

	// CacheSize bounds the lookup cache. Zero disables caching.
	CacheSize int `yaml:"cacheSize" json:"cacheSize"`

	// Concurrency bounds parallel resolutions.
	Concurrency int `yaml:"concurrency" json:"concurrency"`

	// CDN names the CDN used for URLs (unpkg, esm.sh, jsdelivr).
	CDN string `yaml:"cdn" json:"cdn"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Builtins:    nil,
		Ignore:      nil,
		CacheSize:   DefaultCacheSize,
		Concurrency: DefaultConcurrency,
		CDN:         string(specifier.CDNUnpkg),
	}
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("invalid ignore pattern %q", pattern))
		}
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("cacheSize must not be negative, got %d", c.CacheSize))
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if _, err := specifier.ParseCDN(c.CDN); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// BuiltinSet returns the Node.js built-ins plus the configured extras.
func (c *Config) BuiltinSet() specifier.BuiltinSet {
	if len(c.Builtins) == 0 {
		return specifier.NodeBuiltins
	}
	return specifier.NodeBuiltins.With(c.Builtins...)
}

// CDNName returns the configured CDN, falling back to unpkg when invalid.
func (c *Config) CDNName() specifier.CDN {
	cdn, err := specifier.ParseCDN(c.CDN)
	if err != nil {
		return specifier.CDNUnpkg
	}
	return cdn
}
