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

package apis

// Provider is a side-signal capability provider contributed by a hosting
// framework. Providers are looked up by symbolic name at probe time, never
// referenced at compile time, so an absent host framework simply means an
// absent provider.
type Provider interface {
	// Name returns the symbolic name the provider registers under.
	Name() string

	// TrySideName returns the host's side signal (e.g. "CLIENT", "SERVER",
	// "DEDICATEDSERVER") and true when the provider can answer. A provider
	// that cannot currently answer returns ("", false); it must not panic.
	TrySideName() (signal string, ok bool)
}

// ProviderRegistry is a process-wide named registry of Providers. Lookups
// are by symbolic name; registration order is irrelevant, probe order is
// decided by the caller (Config.Providers).
// Implementations must be safe for concurrent use.
type ProviderRegistry interface {
	// Register adds or replaces the provider under its own Name.
	Register(p Provider) error
	// Lookup returns the provider registered under name, if any.
	Lookup(name string) (Provider, bool)
	// Names returns a snapshot of registered names (order is unspecified).
	Names() []string
	// Reset removes all registered providers.
	Reset()
}
