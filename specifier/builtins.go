/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "sort"

// BuiltinSet is a read-only set of module names reserved by the host runtime.
// The zero value is an empty set. A BuiltinSet is never mutated after
// construction, so it is safe to share between goroutines.
type BuiltinSet struct {
	names map[string]struct{}
}

// NewBuiltinSet creates a set holding the given names.
func NewBuiltinSet(names ...string) BuiltinSet {
	set := BuiltinSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		set.names[name] = struct{}{}
	}
	return set
}

// Has reports whether name is an exact, case-sensitive member of the set.
func (s BuiltinSet) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of names in the set.
func (s BuiltinSet) Len() int {
	return len(s.names)
}

// Names returns the members in sorted order.
func (s BuiltinSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a new set containing the members of s plus extra.
// The receiver is left untouched.
func (s BuiltinSet) With(extra ...string) BuiltinSet {
	return NewBuiltinSet(append(s.Names(), extra...)...)
}

// NodeBuiltins mirrors Node.js module.builtinModules (v24.x), including
// private underscore modules and sub-path entries such as "fs/promises",
// since membership is checked by exact match.
var NodeBuiltins = NewBuiltinSet(
	"_http_agent",
	"_http_client",
	"_http_common",
	"_http_incoming",
	"_http_outgoing",
	"_http_server",
	"_stream_duplex",
	"_stream_passthrough",
	"_stream_readable",
	"_stream_transform",
	"_stream_wrap",
	"_stream_writable",
	"_tls_common",
	"_tls_wrap",
	"assert",
	"assert/strict",
	"async_hooks",
	"buffer",
	"child_process",
	"cluster",
	"console",
	"constants",
	"crypto",
	"dgram",
	"diagnostics_channel",
	"dns",
	"dns/promises",
	"domain",
	"events",
	"fs",
	"fs/promises",
	"http",
	"http2",
	"https",
	"inspector",
	"inspector/promises",
	"module",
	"net",
	"os",
	"path",
	"path/posix",
	"path/win32",
	"perf_hooks",
	"process",
	"punycode",
	"querystring",
	"readline",
	"readline/promises",
	"repl",
	"stream",
	"stream/consumers",
	"stream/promises",
	"stream/web",
	"string_decoder",
	"sys",
	"timers",
	"timers/promises",
	"tls",
	"trace_events",
	"tty",
	"url",
	"util",
	"util/types",
	"v8",
	"vm",
	"wasi",
	"worker_threads",
	"zlib",
)
