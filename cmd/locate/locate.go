/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package locate provides the locate command for barespec.
package locate

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/barespec/cmd/internal/project"
	"bennypowers.dev/barespec/fs"
	"bennypowers.dev/barespec/internal/logger"
	"bennypowers.dev/barespec/locator"
)

// ErrNotFound is returned when the package is not installed anywhere above --from.
var ErrNotFound = errors.New("package not found")

// Cmd is the locate cobra command.
var Cmd = &cobra.Command{
	Use:   "locate <package-name>",
	Short: "Find the installed directory of a package",
	Long: `Locate walks from --from towards the filesystem root and prints the first
node_modules/<package-name> directory it finds.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("from", ".", "Directory to start the search from")
	Cmd.Flags().Bool("explain", false, "List every directory that would be probed")
}

type locateResult struct {
	Name       string   `json:"name"`
	From       string   `json:"from"`
	Dir        string   `json:"dir,omitempty"`
	Found      bool     `json:"found"`
	Candidates []string `json:"candidates,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	explain, _ := cmd.Flags().GetBool("explain")
	name := args[0]

	from, err := filepath.Abs(from)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", from, err)
	}

	l := locator.New(fs.NewOSFileSystem(), locator.WithProbeErrorHandler(func(path string, err error) {
		logger.Warn("probe failed", "path", path, "error", err)
	}))

	dir, found := l.Find(cmd.Context(), from, name)
	result := locateResult{Name: name, From: from, Dir: dir, Found: found}
	if explain {
		result.Candidates = l.Candidates(from, name)
	}

	out := cmd.OutOrStdout()
	switch project.Format() {
	case "json":
		if err := project.WriteJSON(out, result); err != nil {
			return err
		}
	case "text":
		for _, candidate := range result.Candidates {
			marker := " "
			if candidate == dir {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, candidate)
		}
		if found {
			fmt.Fprintln(out, dir)
		}
	default:
		return fmt.Errorf("unknown format %q", project.Format())
	}

	if !found {
		return fmt.Errorf("%w: %s (looked in node_modules starting from %s)", ErrNotFound, name, from)
	}
	return nil
}
