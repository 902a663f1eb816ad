/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/barespec/internal/mapfs"
	"bennypowers.dev/barespec/specifier"
	"bennypowers.dev/barespec/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/barespec.yaml", string(testutil.LoadFixtureFile(t, "barespec.yaml")), 0644)

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"electron", "bun"}, cfg.Builtins)
	assert.Equal(t, []string{"lit/**", "*-internal"}, cfg.Ignore)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, specifier.CDNEsmSh, cfg.CDNName())
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/barespec.json", string(testutil.LoadFixtureFile(t, "barespec.json")), 0644)

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"electron"}, cfg.Builtins)
	assert.Equal(t, specifier.CDNJSDelivr, cfg.CDNName())
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize, "missing fields keep defaults")
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency, "missing fields keep defaults")
}

func TestLoad_YAMLTakesPriority(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/barespec.yml", "cacheSize: 1\n", 0644)
	mfs.AddFile("/project/.config/barespec.json", `{"cacheSize": 2}`, 0644)

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.CacheSize)
	assert.Equal(t, "/project/.config/barespec.yml", Path(mfs, "/project"))
}

func TestLoad_NotFound(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/project", 0755)

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/barespec.yaml", string(testutil.LoadFixtureFile(t, "invalid.yaml")), 0644)

	_, err := Load(mfs, "/project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")
	assert.Contains(t, err.Error(), "concurrency must be at least 1")
	assert.Contains(t, err.Error(), "unknown CDN")
}

func TestLoad_MalformedYAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/barespec.yaml", "cacheSize: [1\n", 0644)

	_, err := Load(mfs, "/project")
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/barespec.yaml", "cacheSize: [1\n", 0644)

	cfg := LoadOrDefault(mfs, "/project")
	assert.Equal(t, Default(), cfg)
}

func TestConfig_BuiltinSet(t *testing.T) {
	cfg := Default()
	assert.Equal(t, specifier.NodeBuiltins.Len(), cfg.BuiltinSet().Len())

	cfg.Builtins = []string{"electron"}
	set := cfg.BuiltinSet()
	assert.True(t, set.Has("electron"))
	assert.True(t, set.Has("fs"))
	assert.False(t, specifier.NodeBuiltins.Has("electron"))
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
