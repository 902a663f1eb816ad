/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "fmt"

// CDN identifies a public npm CDN.
type CDN string

const (
	// CDNUnpkg is unpkg.com. The zero CDN value means unpkg.
	CDNUnpkg CDN = "unpkg"
	// CDNEsmSh is esm.sh.
	CDNEsmSh CDN = "esm.sh"
	// CDNJSDelivr is cdn.jsdelivr.net.
	CDNJSDelivr CDN = "jsdelivr"
)

var cdnBaseURLs = map[CDN]string{
	CDNUnpkg:    "https://unpkg.com/",
	CDNEsmSh:    "https://esm.sh/",
	CDNJSDelivr: "https://cdn.jsdelivr.net/npm/",
}

// ValidCDNs returns the supported CDN names.
func ValidCDNs() []string {
	return []string{string(CDNUnpkg), string(CDNEsmSh), string(CDNJSDelivr)}
}

// ParseCDN converts a CDN name to a CDN. The empty string yields CDNUnpkg.
func ParseCDN(s string) (CDN, error) {
	if s == "" {
		return CDNUnpkg, nil
	}
	cdn := CDN(s)
	if _, ok := cdnBaseURLs[cdn]; !ok {
		return "", fmt.Errorf("unknown CDN %q (valid: %v)", s, ValidCDNs())
	}
	return cdn, nil
}

// CDNURL returns the URL serving the parsed specifier from cdn.
// Returns ("", false) for an unknown CDN or a PackageInfo without a name.
func CDNURL(info PackageInfo, cdn CDN) (string, bool) {
	if cdn == "" {
		cdn = CDNUnpkg
	}
	base, ok := cdnBaseURLs[cdn]
	if !ok || info.Name == "" {
		return "", false
	}
	return base + info.String(), true
}
