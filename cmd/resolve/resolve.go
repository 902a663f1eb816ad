/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for barespec.
package resolve

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/barespec/cache"
	"bennypowers.dev/barespec/cmd/internal/project"
	"bennypowers.dev/barespec/config"
	"bennypowers.dev/barespec/fs"
	"bennypowers.dev/barespec/internal/logger"
	"bennypowers.dev/barespec/locator"
	resolvelib "bennypowers.dev/barespec/resolve"
	"bennypowers.dev/barespec/specifier"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <specifier>...",
	Short: "Resolve bare specifiers to installed file paths",
	Long: `Resolve runs each specifier through the package-name gate and parser, then
finds the installed package above --from. Specifiers the gate rejects or the
config ignores are reported but do not fail the command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("from", ".", "Directory of the importing file")
}

type resolveOutput struct {
	Specifier string `json:"specifier"`
	Path      string `json:"path,omitempty"`
	Error     string `json:"error,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")

	filesystem := fs.NewOSFileSystem()
	cfg, err := project.Config(filesystem)
	if err != nil {
		return err
	}

	finder, err := newFinder(filesystem, cfg)
	if err != nil {
		return err
	}

	r := resolvelib.New(finder,
		resolvelib.WithGate(specifier.NewGate(cfg.BuiltinSet())),
		resolvelib.WithIgnore(cfg.Ignore...),
		resolvelib.WithConcurrency(cfg.Concurrency),
	)

	results, err := r.ResolveAll(cmd.Context(), from, args)
	if err != nil {
		return err
	}

	outputs := make([]resolveOutput, 0, len(results))
	failed := 0
	for _, res := range results {
		o := resolveOutput{Specifier: res.Specifier}
		switch {
		case res.Err == nil:
			o.Path = res.Resolution.Path
		case errors.Is(res.Err, resolvelib.ErrNotPackage), errors.Is(res.Err, resolvelib.ErrIgnored):
			o.Error = res.Err.Error()
		default:
			o.Error = res.Err.Error()
			failed++
		}
		outputs = append(outputs, o)
	}

	out := cmd.OutOrStdout()
	switch project.Format() {
	case "json":
		if err := project.WriteJSON(out, outputs); err != nil {
			return err
		}
	case "text":
		rows := make([][]string, 0, len(outputs))
		for _, o := range outputs {
			rows = append(rows, []string{o.Specifier, o.Path, o.Error})
		}
		if err := project.WriteTable(out, []string{"SPECIFIER", "PATH", "ERROR"}, rows); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", project.Format())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d specifiers failed to resolve", failed, len(args))
	}
	return nil
}

func newFinder(filesystem fs.FileSystem, cfg *config.Config) (locator.Finder, error) {
	base := locator.New(filesystem, locator.WithProbeErrorHandler(func(path string, err error) {
		logger.Warn("probe failed", "path", path, "error", err)
	}))
	if cfg.CacheSize == 0 {
		return base, nil
	}
	cached, err := cache.New(base, cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return cached, nil
}
