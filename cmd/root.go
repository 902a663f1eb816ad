/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for barespec.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/barespec/cmd/check"
	"bennypowers.dev/barespec/cmd/internal/project"
	"bennypowers.dev/barespec/cmd/locate"
	"bennypowers.dev/barespec/cmd/parse"
	"bennypowers.dev/barespec/cmd/resolve"
	"bennypowers.dev/barespec/cmd/version"
	"bennypowers.dev/barespec/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "barespec",
	Short: "Resolve bare npm import specifiers",
	Long: `barespec decides whether an import specifier names an npm package,
splits it into name, version and sub-path, and finds the installed package
by walking up through node_modules directories.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.SetLevel(viper.GetString(project.KeyLogLevel))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(project.KeyRoot, ".", "Project root containing .config/barespec.yaml")
	flags.StringP(project.KeyFormat, "f", "text", "Output format (text, json)")
	flags.String(project.KeyLogLevel, "warn", "Log level (debug, info, warn, error)")
	flags.Int(project.KeyCacheSize, 0, "Lookup cache size, 0 disables the cache (overrides config)")
	flags.Int(project.KeyConcurrency, 0, "Parallel resolutions (overrides config)")
	flags.String(project.KeyCDN, "", "CDN for URLs: unpkg, esm.sh, jsdelivr (overrides config)")

	for _, key := range []string{
		project.KeyRoot,
		project.KeyFormat,
		project.KeyLogLevel,
		project.KeyCacheSize,
		project.KeyConcurrency,
		project.KeyCDN,
	} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	viper.SetEnvPrefix("BARESPEC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(locate.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
