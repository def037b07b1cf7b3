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

package provider

import (
	"errors"
	"sync"

	"dirpx.dev/mixenv/apis"
)

var (
	// ErrNilProvider is returned when a nil provider is registered.
	ErrNilProvider = errors.New("mixenv(provider): nil provider provided")
	// ErrEmptyName is returned when a provider reports an empty name.
	ErrEmptyName = errors.New("mixenv(provider): empty provider name")
)

// NewRegistry constructs an empty ProviderRegistry.
func NewRegistry() apis.ProviderRegistry {
	return &registry{m: make(map[string]apis.Provider)}
}

// registry is a mutex-guarded name -> provider map. Registration replaces
// silently: a host re-registering its hook is a normal event during
// relaunch, not a conflict.
type registry struct {
	mu sync.RWMutex
	m  map[string]apis.Provider
}

// Ensure registry implements apis.ProviderRegistry.
var _ apis.ProviderRegistry = (*registry)(nil)

// Register adds or replaces p under its own Name.
func (r *registry) Register(p apis.Provider) error {
	if p == nil {
		return ErrNilProvider
	}
	name := p.Name()
	if name == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[name] = p
	return nil
}

// Lookup returns the provider registered under name, if any.
func (r *registry) Lookup(name string) (apis.Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.m[name]
	return p, ok
}

// Names returns a snapshot of registered names (order is unspecified).
func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.m))
	for name := range r.m {
		out = append(out, name)
	}
	return out
}

// Reset removes all registered providers.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]apis.Provider)
}
