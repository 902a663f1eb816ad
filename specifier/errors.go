/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"fmt"
)

// ErrMalformedSpecifier is matched by every error GetPackageInfo returns.
var ErrMalformedSpecifier = errors.New("malformed specifier")

// MalformedSpecifierError reports a specifier that matches no recognized shape.
type MalformedSpecifierError struct {
	Specifier string
}

func (e *MalformedSpecifierError) Error() string {
	return fmt.Sprintf("unable to extract package meta information from %q", e.Specifier)
}

// Is lets errors.Is match ErrMalformedSpecifier.
func (e *MalformedSpecifierError) Is(target error) bool {
	return target == ErrMalformedSpecifier
}
