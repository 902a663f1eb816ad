/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule names reported by Gate.Explain.
const (
	RuleLeadingChar  = "leading-char"
	RuleDenyList     = "deny-list"
	RuleBuiltin      = "builtin"
	RuleInvalidUTF8  = "invalid-utf8"
	RuleLowercase    = "lowercase"
	RuleSpecialChars = "special-chars"
)

var (
	// leadingCharPattern matches relative, absolute and hidden-looking ids.
	leadingCharPattern = regexp.MustCompile(`^[._/]`)

	denyListPattern = regexp.MustCompile(`node_modules|favicon\.ico`)

	// specialCharsPattern rejects every `@`, so scoped and versioned
	// specifiers never pass the gate.
	specialCharsPattern = regexp.MustCompile(`[~'!()*;,?:@&=+$]`)
)

// Gate decides whether an import specifier is a candidate for
// package-manager resolution.
type Gate struct {
	builtins BuiltinSet
}

// NewGate creates a gate that rejects the given built-in module names.
func NewGate(builtins BuiltinSet) *Gate {
	return &Gate{builtins: builtins}
}

// DefaultGate rejects the Node.js built-in modules.
var DefaultGate = NewGate(NodeBuiltins)

// IsValidPackageName reports whether id may be resolved from node_modules,
// using DefaultGate.
func IsValidPackageName(id string) bool {
	return DefaultGate.IsValidPackageName(id)
}

// Builtins returns the built-in set the gate rejects.
func (g *Gate) Builtins() BuiltinSet {
	return g.builtins
}

// IsValidPackageName reports whether id may be resolved from node_modules.
// A false result is not an error: callers fall back to another strategy.
func (g *Gate) IsValidPackageName(id string) bool {
	ok, _ := g.Explain(id)
	return ok
}

// Explain is IsValidPackageName with the name of the first failing rule.
// The rule is empty when id is accepted.
func (g *Gate) Explain(id string) (bool, string) {
	switch {
	case leadingCharPattern.MatchString(id):
		return false, RuleLeadingChar
	case denyListPattern.MatchString(id):
		return false, RuleDenyList
	case g.builtins.Has(id):
		return false, RuleBuiltin
	case !utf8.ValidString(id):
		// ToLower would rewrite the bad bytes as U+FFFD, so the lowercase
		// rule rejects these too; this only names the cause.
		return false, RuleInvalidUTF8
	case strings.ToLower(id) != id:
		return false, RuleLowercase
	case specialCharsPattern.MatchString(id):
		return false, RuleSpecialChars
	}

	// A scoped id should carry a second segment, but the clause is OR'ed
	// with true and never rejects anything. Kept so accepted ids do not change.
	scoped := len(id) > 0 && id[0] == '@' && strings.Index(id, "/") > 0
	return scoped || true, ""
}
