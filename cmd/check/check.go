/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for barespec.
package check

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bennypowers.dev/barespec/cmd/internal/project"
	"bennypowers.dev/barespec/fs"
	"bennypowers.dev/barespec/specifier"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check <specifier>...",
	Short: "Report whether specifiers are candidates for package resolution",
	Long: `Check runs each specifier through the package-name gate and reports the
first rule that rejected it. Rejected specifiers are not errors: a bundler
would resolve them some other way.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

type checkResult struct {
	Specifier string `json:"specifier"`
	Valid     bool   `json:"valid"`
	Rule      string `json:"rule,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := project.Config(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	gate := specifier.NewGate(cfg.BuiltinSet())

	results := make([]checkResult, 0, len(args))
	for _, spec := range args {
		ok, rule := gate.Explain(spec)
		results = append(results, checkResult{Specifier: spec, Valid: ok, Rule: rule})
	}

	out := cmd.OutOrStdout()
	switch project.Format() {
	case "json":
		return project.WriteJSON(out, results)
	case "text":
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{r.Specifier, strconv.FormatBool(r.Valid), r.Rule})
		}
		return project.WriteTable(out, []string{"SPECIFIER", "VALID", "RULE"}, rows)
	default:
		return fmt.Errorf("unknown format %q", project.Format())
	}
}
