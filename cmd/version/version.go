/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for barespec.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/barespec/cmd/internal/project"
	"bennypowers.dev/barespec/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for barespec.`,
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	info := version.Read()
	out := cmd.OutOrStdout()
	switch project.Format() {
	case "json":
		return project.WriteJSON(out, info)
	case "text", "":
		_, err := fmt.Fprintln(out, info.String())
		return err
	default:
		return fmt.Errorf("unknown format %q", project.Format())
	}
}
