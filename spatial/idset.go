// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

package spatial

import (
	"maps"
	"slices"
)

// IDSet is a set of entity ids.
type IDSet map[string]struct{}

// NewIDSet returns a set holding ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set holds nothing.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids.
func (s IDSet) Len() int {
	return len(s)
}

// Add inserts id.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Union adds every id of o to s.
func (s IDSet) Union(o IDSet) {
	for id := range o {
		s[id] = struct{}{}
	}
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
