/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/barespec/cmd/internal/project"
	"bennypowers.dev/barespec/testutil"
)

func TestResolve_JSON(t *testing.T) {
	root := testutil.NewOSTree(t,
		".config",
		"node_modules/preact/hooks",
		"packages/app/src",
	)
	config := "ignore:\n  - \"lit/**\"\ncacheSize: 8\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".config", "barespec.yaml"), []byte(config), 0644))

	viper.Set(project.KeyRoot, root)
	viper.Set(project.KeyFormat, "json")
	t.Cleanup(viper.Reset)

	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs([]string{
		"--from", filepath.Join(root, "packages", "app", "src"),
		"preact/hooks", "./local.js", "lit/decorators.js",
	})
	require.NoError(t, Cmd.Execute(), "rejected and ignored specifiers must not fail the command")

	var outputs []resolveOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &outputs))
	require.Len(t, outputs, 3)

	assert.Equal(t, filepath.Join(root, "node_modules", "preact", "hooks"), outputs[0].Path)
	assert.Contains(t, outputs[1].Error, "not a package specifier")
	assert.Contains(t, outputs[2].Error, "specifier ignored")
}

func TestResolve_NotInstalled(t *testing.T) {
	root := testutil.NewOSTree(t, "src")

	viper.Set(project.KeyRoot, root)
	viper.Set(project.KeyFormat, "text")
	t.Cleanup(viper.Reset)

	Cmd.SetOut(&bytes.Buffer{})
	Cmd.SetArgs([]string{"--from", filepath.Join(root, "src"), "definitely-not-installed-pkg"})
	err := Cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 specifiers failed to resolve")
}
