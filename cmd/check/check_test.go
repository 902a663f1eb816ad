/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package check

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
	"bennypowers.dev/barespec/specifier"
)

func TestCheck_JSON(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".config", "barespec.yaml"), []byte("builtins: [electron]\n"), 0644))

	viper.Set(project.KeyRoot, root)
	viper.Set(project.KeyFormat, "json")
	t.Cleanup(viper.Reset)

	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs([]string{"preact", "./local.js", "electron", "@scope/pkg"})
	require.NoError(t, Cmd.Execute())

	var results []checkResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))

	assert.Equal(t, []checkResult{
		{Specifier: "preact", Valid: true},
		{Specifier: "./local.js", Valid: false, Rule: specifier.RuleLeadingChar},
		{Specifier: "electron", Valid: false, Rule: specifier.RuleBuiltin},
		{Specifier: "@scope/pkg", Valid: false, Rule: specifier.RuleSpecialChars},
	}, results)
}

func TestCheck_UnknownFormat(t *testing.T) {
	viper.Set(project.KeyRoot, t.TempDir())
	viper.Set(project.KeyFormat, "xml")
	t.Cleanup(viper.Reset)

	Cmd.SetOut(&bytes.Buffer{})
	Cmd.SetArgs([]string{"preact"})
	assert.Error(t, Cmd.Execute())
}
