/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier recognizes and decomposes bare npm import specifiers
// such as "@scope/pkg@1.2.3/sub/path.css".
package specifier

import (
	"regexp"
	"strings"
)

// PackageInfo is the decomposition of a bare specifier.
type PackageInfo struct {
	// Name is the package name, including the scope prefix (e.g., "@scope/pkg" or "pkg").
	Name string `json:"name" yaml:"name"`

	// Version is the inline version or tag, or empty when none was given.
	// It is captured verbatim and never validated.
	Version string `json:"version" yaml:"version"`

	// Pathname is the sub-path within the package, or empty for the package root.
	Pathname string `json:"pathname" yaml:"pathname"`
}

// infoPattern matches @scope/pkg or pkg, then an optional @version and an
// optional /pathname. The scoped branch only splits on the second slash,
// so "@foo/bar.css" is a package name on its own.
var infoPattern = regexp.MustCompile(`^(@[^/]+/[^/@]+|[^@][^/@]+)(?:@([^/]+))?(?:/(.*))?$`)

// GetPackageInfo decomposes id into name, version and pathname.
//
//	foo                     -> {foo, "", ""}
//	foo/bar.css             -> {foo, "", bar.css}
//	foo@1.2.3-rc.1/bar.css  -> {foo, 1.2.3-rc.1, bar.css}
//	@foo/bar.css            -> {@foo/bar.css, "", ""}
//	@foo/bar/bob.css        -> {@foo/bar, "", bob.css}
//	@foo/bar@1.2.3/bob.css  -> {@foo/bar, 1.2.3, bob.css}
//
// The returned error matches ErrMalformedSpecifier.
func GetPackageInfo(id string) (PackageInfo, error) {
	matches := infoPattern.FindStringSubmatch(id)
	if matches == nil {
		return PackageInfo{}, &MalformedSpecifierError{Specifier: id}
	}
	return PackageInfo{
		Name:     matches[1],
		Version:  matches[2],
		Pathname: matches[3],
	}, nil
}

// MustGetPackageInfo is like GetPackageInfo but panics on malformed input.
func MustGetPackageInfo(id string) PackageInfo {
	info, err := GetPackageInfo(id)
	if err != nil {
		panic(err)
	}
	return info
}

// String reassembles the specifier as name[@version][/pathname].
func (p PackageInfo) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Version != "" {
		b.WriteString("@")
		b.WriteString(p.Version)
	}
	if p.Pathname != "" {
		b.WriteString("/")
		b.WriteString(p.Pathname)
	}
	return b.String()
}

// IsScoped returns true for @scope/pkg names.
func (p PackageInfo) IsScoped() bool {
	return strings.HasPrefix(p.Name, "@")
}

// Scope returns the "@scope" part of a scoped name, or "".
func (p PackageInfo) Scope() string {
	if !p.IsScoped() {
		return ""
	}
	scope, _, _ := strings.Cut(p.Name, "/")
	return scope
}
