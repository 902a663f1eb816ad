/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for barespec.
package parse

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/barespec/cmd/internal/project"
	"bennypowers.dev/barespec/fs"
	"bennypowers.dev/barespec/specifier"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse <specifier>...",
	Short: "Split specifiers into package name, version and sub-path",
	Long: `Parse decomposes each specifier into its package name, inline version and
sub-path, and prints the CDN URL serving it. The package-name gate is not
applied, so scoped and versioned specifiers are accepted here.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

type parseResult struct {
	Specifier string `json:"specifier"`
	specifier.PackageInfo
	URL string `json:"url,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := project.Config(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	cdn := cfg.CDNName()

	var results []parseResult
	failed := 0
	for _, spec := range args {
		info, err := specifier.GetPackageInfo(spec)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error parsing %s: %v\n", spec, err)
			failed++
			continue
		}
		url, _ := specifier.CDNURL(info, cdn)
		results = append(results, parseResult{Specifier: spec, PackageInfo: info, URL: url})
	}

	out := cmd.OutOrStdout()
	switch project.Format() {
	case "json":
		if err := project.WriteJSON(out, results); err != nil {
			return err
		}
	case "text":
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{r.Specifier, r.Name, r.Version, r.Pathname, r.URL})
		}
		if err := project.WriteTable(out, []string{"SPECIFIER", "NAME", "VERSION", "PATHNAME", "URL"}, rows); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", project.Format())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d specifiers are malformed", failed, len(args))
	}
	return nil
}
