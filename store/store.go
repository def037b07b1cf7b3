/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package store provides the default in-process blackboard used when an
// embedding host does not bring its own apis.Store. The blackboard is
// the cross-subsystem integration point: mixenv keeps its configuration
// list and transformer slot in it, other subsystems keep theirs, and no
// party caches what it reads.
package store

import (
	"sync"

	"dirpx.dev/mixenv/apis"
)

// New constructs an empty blackboard.
func New() apis.Store {
	return &blackboard{m: make(map[string]any)}
}

// blackboard is a mutex-guarded string -> any map. Individual Get/Put
// calls are atomic; read-modify-write sequences (such as appending to a
// stored list) require external discipline, which mixenv provides by
// serializing its own mutations.
type blackboard struct {
	mu sync.RWMutex
	m  map[string]any
}

// Ensure blackboard implements apis.Store.
var _ apis.Store = (*blackboard)(nil)

// Get returns the value stored under key, if present.
func (b *blackboard) Get(key string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.m[key]
	return v, ok
}

// Put stores value under key, replacing any previous value.
func (b *blackboard) Put(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.m[key] = value
}
