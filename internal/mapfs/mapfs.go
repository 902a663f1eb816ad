/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements barespec's FileSystem over an fstest.MapFS.
// It records every IsDirectory probe and can be told to fail on chosen
// paths, so directory walks can be observed and faulted in tests.
type MapFileSystem struct {
	mu      sync.RWMutex
	mapFS   fstest.MapFS
	modTime time.Time
	faults  map[string]error
	probes  []string
}

// New creates a new in-memory filesystem for testing.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:   make(fstest.MapFS),
		modTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		faults:  make(map[string]error),
	}
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mapFS[cleanPath(p)] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// AddDir adds a directory, and implicitly all its parents.
func (mfs *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mapFS[cleanPath(p)] = &fstest.MapFile{
		Mode:    fs.ModeDir | mode.Perm(),
		ModTime: mfs.modTime,
	}
}

// FailOn makes IsDirectory return err for p.
func (mfs *MapFileSystem) FailOn(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.faults[cleanPath(p)] = err
}

// Probes returns the paths passed to IsDirectory, in call order.
func (mfs *MapFileSystem) Probes() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return append([]string(nil), mfs.probes...)
}

// ReadFile implements FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadFile(mfs.mapFS, cleanPath(name))
}

// Stat implements FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.Stat(mfs.mapFS, cleanPath(name))
}

// Exists implements FileSystem.
func (mfs *MapFileSystem) Exists(p string) bool {
	_, err := mfs.Stat(p)
	return err == nil
}

// IsDirectory implements FileSystem.
func (mfs *MapFileSystem) IsDirectory(ctx context.Context, p string) (bool, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.probes = append(mfs.probes, p)

	if err := ctx.Err(); err != nil {
		return false, err
	}

	name := cleanPath(p)
	if err, ok := mfs.faults[name]; ok {
		return false, &fs.PathError{Op: "stat", Path: p, Err: err}
	}

	info, err := fs.Stat(mfs.mapFS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// cleanPath maps an absolute slash path onto an fs.FS name.
func cleanPath(p string) string {
	cleaned := path.Clean("/" + p)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
