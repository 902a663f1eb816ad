/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for barespec.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/barespec/internal/mapfs"
)

// NewTreeFS returns a MapFileSystem containing the given directories
// (and, implicitly, all of their parents).
func NewTreeFS(t *testing.T, dirs ...string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	for _, dir := range dirs {
		mfs.AddDir(dir, 0755)
	}
	return mfs
}

// NewOSTree creates the given directories, relative to a fresh temporary
// directory, and returns that directory's path.
func NewOSTree(t *testing.T, dirs ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return root
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	possiblePaths := []string{
		filepath.Join("testdata", fixturePath),
		filepath.Join("..", "testdata", fixturePath),
	}

	for _, path := range possiblePaths {
		content, err := os.ReadFile(path)
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}
