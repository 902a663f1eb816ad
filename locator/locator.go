/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package locator finds installed packages by walking up the directory
// tree from an importer and probing each node_modules along the way.
package locator

import (
	"context"
	"path/filepath"

	"bennypowers.dev/barespec/internal/logger"
)

// DirChecker reports whether a path exists and is a directory.
// Missing paths and non-directories are (false, nil).
type DirChecker interface {
	IsDirectory(ctx context.Context, path string) (bool, error)
}

// Finder locates the directory of an installed package.
type Finder interface {
	Find(ctx context.Context, root, name string) (string, bool)
}

// ProbeErrorHandler receives the error that ended a walk.
type ProbeErrorHandler func(path string, err error)

// Locator walks from a root directory towards the filesystem root.
// A Locator holds no per-call state and is safe for concurrent use.
type Locator struct {
	checker DirChecker
	onError ProbeErrorHandler
}

// Option configures a Locator.
type Option func(*Locator)

// WithProbeErrorHandler installs a side channel for probe errors. The
// walk still ends with a not-found result.
func WithProbeErrorHandler(h ProbeErrorHandler) Option {
	return func(l *Locator) {
		l.onError = h
	}
}

// New creates a Locator probing directories through checker.
func New(checker DirChecker, opts ...Option) *Locator {
	l := &Locator{checker: checker}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FindInstalledPackage returns root/node_modules/name for the closest
// ancestor of root (root included) where it is a directory.
// Returns ("", false) once the filesystem root has been probed, when a
// probe fails, or when ctx is done between probes.
func FindInstalledPackage(ctx context.Context, checker DirChecker, root, name string) (string, bool) {
	return New(checker).Find(ctx, root, name)
}

// Find implements Finder.
func (l *Locator) Find(ctx context.Context, root, name string) (string, bool) {
	dir := root
	for {
		if err := ctx.Err(); err != nil {
			l.probeFailed(dir, err)
			return "", false
		}

		candidate := filepath.Join(dir, "node_modules", name)
		ok, err := l.checker.IsDirectory(ctx, candidate)
		if err != nil {
			l.probeFailed(candidate, err)
			return "", false
		}
		if ok {
			logger.Debug("found package", "name", name, "dir", candidate)
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			logger.Debug("package not installed", "name", name, "root", root)
			return "", false
		}
		dir = parent
	}
}

// Candidates lists the paths Find would probe for name, closest first.
func (l *Locator) Candidates(root, name string) []string {
	var paths []string
	dir := root
	for {
		paths = append(paths, filepath.Join(dir, "node_modules", name))
		parent := filepath.Dir(dir)
		if parent == dir {
			return paths
		}
		dir = parent
	}
}

func (l *Locator) probeFailed(path string, err error) {
	logger.Debug("probe failed", "path", path, "error", err)
	if l.onError != nil {
		l.onError(path, err)
	}
}
