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

package mixenv

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/mixenv/apis"
	"dirpx.dev/mixenv/config"
	"dirpx.dev/mixenv/option"
	"dirpx.dev/mixenv/provider"
	"dirpx.dev/mixenv/side"
	"dirpx.dev/mixenv/store"
)

// init wires the canonical process-wide collaborators. The canonical
// store stays unprepared until Bootstrap runs; constructing the current
// environment before that fails by design.
func init() {
	canonicalStore = store.New()
	canonicalProviders = provider.NewRegistry()
}

var (
	// buildMu serializes construction and reconfiguration of the current
	// environment so we never publish a partially-built instance.
	buildMu sync.Mutex

	// cur is the current (process-wide) environment. Nil until the first
	// successful Current call.
	cur atomic.Pointer[Environment]

	// canonicalStore is the process-wide blackboard used when no store is
	// injected through Configure.
	canonicalStore apis.Store

	// canonicalProviders is the process-wide provider registry host
	// frameworks register their side hooks in.
	canonicalProviders apis.ProviderRegistry

	// pending holds options applied to the next construction.
	pending []config.Option
)

// Store returns the canonical process-wide blackboard.
func Store() apis.Store {
	return canonicalStore
}

// Providers returns the canonical provider registry. Host frameworks
// register their side-signal hooks here before the first Current call
// resolves a side.
func Providers() apis.ProviderRegistry {
	return canonicalProviders
}

// Bootstrap prepares the canonical store. The hosting runtime calls this
// exactly once during startup, before any subsystem touches Current.
func Bootstrap() error {
	return Prepare(canonicalStore)
}

// Configure stores options applied when the current environment is next
// constructed. It has no effect on an already-constructed environment;
// call it before the first Current (or after Reset, in tests).
func Configure(opts ...config.Option) {
	buildMu.Lock()
	defer buildMu.Unlock()
	pending = append(pending, opts...)
}

// Current returns the process-wide environment, constructing it on first
// call. Construction failure is returned to every caller and nothing is
// memoized, so a later call succeeds once the host completes bootstrap.
func Current() (*Environment, error) {
	if e := cur.Load(); e != nil {
		return e, nil
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Re-check under lock in case another goroutine constructed meanwhile.
	if e := cur.Load(); e != nil {
		return e, nil
	}

	opts := append([]config.Option{
		config.WithStore(canonicalStore),
		config.WithProviders(canonicalProviders),
	}, pending...)

	e, err := New(config.NewConfig(opts...))
	if err != nil {
		return nil, err
	}
	cur.Store(e)
	return e, nil
}

// MustCurrent is Current for call sites that treat a misconfigured host
// as unrecoverable. It panics on construction failure, mirroring the
// fatal construction contract.
func MustCurrent() *Environment {
	e, err := Current()
	if err != nil {
		panic(err)
	}
	return e
}

// Side returns the current environment's side.
// This is a convenience wrapper around the current environment.
func Side() side.Side {
	return MustCurrent().Side()
}

// SetSide proposes a side on the current environment.
// This is a convenience wrapper around the current environment.
func SetSide(s side.Side) {
	MustCurrent().SetSide(s)
}

// Option returns the resolved value of o on the current environment.
// This is a convenience wrapper around the current environment.
func Option(o option.Option) bool {
	return MustCurrent().Option(o)
}

// SetOption overwrites the resolved value of o on the current environment.
// This is a convenience wrapper around the current environment.
func SetOption(o option.Option, value bool) {
	MustCurrent().SetOption(o, value)
}

// AddConfiguration registers a configuration-resource name on the
// current environment.
// This is a convenience wrapper around the current environment.
func AddConfiguration(name string) *Environment {
	return MustCurrent().AddConfiguration(name)
}

// Configurations returns the registered configuration-resource names.
// This is a convenience wrapper around the current environment.
func Configurations() []string {
	return MustCurrent().Configurations()
}

// ActiveTransformer returns the active transformer handle, if set.
// This is a convenience wrapper around the current environment.
func ActiveTransformer() (any, bool) {
	return MustCurrent().ActiveTransformer()
}

// SetActiveTransformer installs the active transformer handle.
// This is a convenience wrapper around the current environment.
func SetActiveTransformer(ref any) {
	MustCurrent().SetActiveTransformer(ref)
}

// Reset discards the current environment, pending options, canonical
// store contents, and registered providers. The process-wide environment
// is never reset in production; this exists so tests can exercise
// construction repeatedly.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()
	cur.Store(nil)
	pending = nil
	canonicalStore = store.New()
	canonicalProviders.Reset()
}
