/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parse

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/barespec/cmd/internal/project"
)

func TestParse_JSON(t *testing.T) {
	viper.Set(project.KeyRoot, t.TempDir())
	viper.Set(project.KeyFormat, "json")
	viper.Set(project.KeyCDN, "esm.sh")
	t.Cleanup(viper.Reset)

	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs([]string{"@foo/bar@1.2.3/bob.css", "foo"})
	require.NoError(t, Cmd.Execute())

	var results []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 2)

	assert.Equal(t, "@foo/bar", results[0]["name"])
	assert.Equal(t, "1.2.3", results[0]["version"])
	assert.Equal(t, "bob.css", results[0]["pathname"])
	assert.Equal(t, "https://esm.sh/@foo/bar@1.2.3/bob.css", results[0]["url"])
	assert.Equal(t, "foo", results[1]["name"])
}

func TestParse_Malformed(t *testing.T) {
	viper.Set(project.KeyRoot, t.TempDir())
	viper.Set(project.KeyFormat, "text")
	t.Cleanup(viper.Reset)

	var buf, errBuf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetErr(&errBuf)
	Cmd.SetArgs([]string{"foo/bar.css", "@"})
	err := Cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 specifiers are malformed")
	assert.True(t, strings.Contains(buf.String(), "bar.css"), "valid specifiers are still printed")
	assert.Contains(t, errBuf.String(), `Error parsing @: unable to extract package meta information from "@"`)
	assert.NotContains(t, buf.String(), "Error parsing", "parse errors belong on the error writer")
}
