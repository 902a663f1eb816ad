/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project holds the state shared by barespec subcommands: the
// merged configuration and the output format.
package project

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/viper"

	"bennypowers.dev/barespec/config"
	"bennypowers.dev/barespec/fs"
	"bennypowers.dev/barespec/internal/logger"
)

// Viper keys bound to persistent flags in cmd/root.go.
const (
	KeyRoot        = "root"
	KeyFormat      = "format"
	KeyLogLevel    = "log-level"
	KeyCacheSize   = "cache-size"
	KeyConcurrency = "concurrency"
	KeyCDN         = "cdn"
)

// Format returns the requested output format (text or json).
func Format() string {
	return viper.GetString(KeyFormat)
}

// Root returns the project root used for config lookup.
func Root() string {
	return viper.GetString(KeyRoot)
}

// Config loads the project config from Root and applies flag and
// environment overrides on top.
func Config(filesystem fs.FileSystem) (*config.Config, error) {
	cfg, err := config.Load(filesystem, Root())
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		logger.Debug("no config file found", "root", Root())
		cfg = config.Default()
	} else {
		logger.Info("loaded config", "path", config.Path(filesystem, Root()))
	}

	if viper.IsSet(KeyCacheSize) {
		cfg.CacheSize = viper.GetInt(KeyCacheSize)
	}
	if viper.IsSet(KeyConcurrency) {
		cfg.Concurrency = viper.GetInt(KeyConcurrency)
	}
	if viper.IsSet(KeyCDN) {
		cfg.CDN = viper.GetString(KeyCDN)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// WriteTable renders rows under headers as a bordered table.
func WriteTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
