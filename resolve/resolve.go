/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve turns bare import specifiers into installed file paths by
// composing the specifier gate, the specifier parser and a package locator.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"bennypowers.dev/barespec/internal/logger"
	"bennypowers.dev/barespec/locator"
	"bennypowers.dev/barespec/specifier"
)

var (
	// ErrNotPackage means the gate rejected the specifier; callers should
	// try another resolution strategy (relative import, URL, ...).
	ErrNotPackage = errors.New("not a package specifier")

	// ErrIgnored means the specifier matched a configured ignore pattern.
	ErrIgnored = errors.New("specifier ignored")

	// ErrNotInstalled means no node_modules directory holds the package.
	ErrNotInstalled = errors.New("package not installed")

	// ErrPathTraversal means the sub-path escapes the package directory.
	ErrPathTraversal = errors.New("path traversal in specifier")
)

// Resolution is a successfully resolved specifier.
type Resolution struct {
	// Specifier is the original import string.
	Specifier string `json:"specifier"`

	// Info is the parsed specifier.
	Info specifier.PackageInfo `json:"info"`

	// Dir is the installed package directory.
	Dir string `json:"dir"`

	// Path is Dir joined with the specifier's pathname.
	Path string `json:"path"`
}

// Result pairs a specifier with its resolution or failure.
type Result struct {
	Specifier  string      `json:"specifier"`
	Resolution *Resolution `json:"resolution,omitempty"`
	Err        error       `json:"-"`
}

// Resolver composes gate, parser and locator.
type Resolver struct {
	gate        *specifier.Gate
	finder      locator.Finder
	ignore      []string
	concurrency int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithGate replaces specifier.DefaultGate.
func WithGate(gate *specifier.Gate) Option {
	return func(r *Resolver) {
		r.gate = gate
	}
}

// WithIgnore skips specifiers matching any of the doublestar patterns.
func WithIgnore(patterns ...string) Option {
	return func(r *Resolver) {
		r.ignore = append(r.ignore, patterns...)
	}
}

// WithConcurrency bounds ResolveAll. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// New creates a Resolver that locates packages through finder.
func New(finder locator.Finder, opts ...Option) *Resolver {
	r := &Resolver{
		gate:        specifier.DefaultGate,
		finder:      finder,
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve resolves spec as imported from a file in importerDir.
func (r *Resolver) Resolve(ctx context.Context, importerDir, spec string) (*Resolution, error) {
	if r.isIgnored(spec) {
		return nil, fmt.Errorf("%w: %s", ErrIgnored, spec)
	}

	if ok, rule := r.gate.Explain(spec); !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotPackage, spec, rule)
	}

	info, err := specifier.GetPackageInfo(spec)
	if err != nil {
		return nil, err
	}

	root := importerDir
	if !filepath.IsAbs(root) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", root, err)
		}
		root = abs
	}

	dir, ok := r.finder.Find(ctx, root, info.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s (looked in node_modules starting from %s)", ErrNotInstalled, info.Name, root)
	}

	path := dir
	if info.Pathname != "" {
		path = filepath.Join(dir, filepath.FromSlash(info.Pathname))
		if !isInsideDir(path, dir) {
			return nil, fmt.Errorf("%w: %s", ErrPathTraversal, spec)
		}
	}

	logger.Debug("resolved", "specifier", spec, "path", path)

	return &Resolution{
		Specifier: spec,
		Info:      info,
		Dir:       dir,
		Path:      path,
	}, nil
}

// ResolveAll resolves every spec concurrently. Results keep input order and
// carry per-spec failures; the returned error is only set when ctx ends
// before all specifiers were attempted.
func (r *Resolver) ResolveAll(ctx context.Context, importerDir string, specs []string) ([]Result, error) {
	results := make([]Result, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, spec := range specs {
		results[i].Specifier = spec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			res, err := r.Resolve(gctx, importerDir, spec)
			if err != nil && gctx.Err() != nil {
				// A canceled walk looks like not-installed; report the cancellation.
				err = gctx.Err()
			}
			results[i].Resolution, results[i].Err = res, err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Resolver) isIgnored(spec string) bool {
	for _, pattern := range r.ignore {
		if matched, _ := doublestar.Match(pattern, spec); matched {
			return true
		}
	}
	return false
}

// isInsideDir reports whether path is dir or lies beneath it.
func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
