/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPackageInfo(t *testing.T) {
	tests := []struct {
		spec     string
		name     string
		version  string
		pathname string
	}{
		{"foo", "foo", "", ""},
		{"foo/bar.css", "foo", "", "bar.css"},
		{"foo@1.2.3-rc.1/bar.css", "foo", "1.2.3-rc.1", "bar.css"},
		{"@foo/bar.css", "@foo/bar.css", "", ""},
		{"@foo/bar/bob.css", "@foo/bar", "", "bob.css"},
		{"@foo/bar@1.2.3/bob.css", "@foo/bar", "1.2.3", "bob.css"},
		{"foo@latest", "foo", "latest", ""},
		{"foo/a/b/c.js", "foo", "", "a/b/c.js"},
		{"@scope/pkg@^2.0.0/dist/index.js", "@scope/pkg", "^2.0.0", "dist/index.js"},
		{"foo/", "foo", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			info, err := GetPackageInfo(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if info.Name != tt.name {
				t.Errorf("Name = %q, want %q", info.Name, tt.name)
			}
			if info.Version != tt.version {
				t.Errorf("Version = %q, want %q", info.Version, tt.version)
			}
			if info.Pathname != tt.pathname {
				t.Errorf("Pathname = %q, want %q", info.Pathname, tt.pathname)
			}
		})
	}
}

func TestGetPackageInfo_Malformed(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"empty", ""},
		{"single character", "a"},
		{"bare scope", "@foo"},
		{"scope without package", "@foo/"},
		{"leading at sign only", "@"},
		{"empty version", "foo@/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetPackageInfo(tt.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedSpecifier), "error should match ErrMalformedSpecifier")

			var malformed *MalformedSpecifierError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.spec, malformed.Specifier)
		})
	}
}

func TestPackageInfo_RoundTrip(t *testing.T) {
	specs := []string{
		"foo",
		"foo/bar.css",
		"foo@1.2.3-rc.1/bar.css",
		"@foo/bar.css",
		"@foo/bar/bob.css",
		"@foo/bar@1.2.3/bob.css",
		"foo/",
		"lit-html/directives/repeat.js",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			first := MustGetPackageInfo(spec)
			second, err := GetPackageInfo(first.String())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestPackageInfo_Scope(t *testing.T) {
	scoped := MustGetPackageInfo("@rhds/tokens/json/rhds.tokens.json")
	assert.True(t, scoped.IsScoped())
	assert.Equal(t, "@rhds", scoped.Scope())

	plain := MustGetPackageInfo("lodash/fp")
	assert.False(t, plain.IsScoped())
	assert.Empty(t, plain.Scope())
}

func TestMustGetPackageInfo_Panics(t *testing.T) {
	assert.Panics(t, func() { MustGetPackageInfo("") })
}
