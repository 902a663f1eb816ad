/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cache memoizes package lookups for callers that resolve many
// specifiers against the same tree. Only found directories are cached, so
// a package installed after a miss is picked up on the next lookup.
package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"

	"bennypowers.dev/barespec/locator"
)

type key struct {
	root string
	name string
}

// Locator is a locator.Finder backed by an LRU cache.
type Locator struct {
	next    locator.Finder
	entries *lru.Cache[key, string]
	hits    prometheus.Counter
	misses  prometheus.Counter
}

// Option configures a caching Locator.
type Option func(*options)

type options struct {
	registerer prometheus.Registerer
}

// WithRegisterer registers the hit and miss counters on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// New wraps next with a cache holding up to size entries.
func New(next locator.Finder, size int, opts ...Option) (*Locator, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	entries, err := lru.New[key, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache of size %d: %w", size, err)
	}

	l := &Locator{
		next:    next,
		entries: entries,
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "barespec",
			Name:      "locate_cache_hits_total",
			Help:      "Package lookups answered from the cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "barespec",
			Name:      "locate_cache_misses_total",
			Help:      "Package lookups that walked the filesystem.",
		}),
	}

	if o.registerer != nil {
		for _, c := range []prometheus.Collector{l.hits, l.misses} {
			if err := o.registerer.Register(c); err != nil {
				return nil, fmt.Errorf("failed to register cache metrics: %w", err)
			}
		}
	}

	return l, nil
}

// Find implements locator.Finder.
func (l *Locator) Find(ctx context.Context, root, name string) (string, bool) {
	k := key{root: root, name: name}
	if dir, ok := l.entries.Get(k); ok {
		l.hits.Inc()
		return dir, true
	}

	l.misses.Inc()
	dir, ok := l.next.Find(ctx, root, name)
	if ok {
		l.entries.Add(k, dir)
	}
	return dir, ok
}

// Len returns the number of cached lookups.
func (l *Locator) Len() int {
	return l.entries.Len()
}

// Purge drops every cached lookup, e.g. after an install.
func (l *Locator) Purge() {
	l.entries.Purge()
}
