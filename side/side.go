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

package side

import (
	"github.com/rs/zerolog"

	"dirpx.dev/mixenv/apis"
)

// Side is the logical role a process plays in a split client/server
// architecture. The zero value is Unknown.
type Side int

const (
	// Unknown means no host framework produced a conclusive signal.
	// Unknown is never detected, only ever a default.
	Unknown Side = iota
	// Client is the client-side role.
	Client
	// Server is the (dedicated) server-side role.
	Server
)

// sides is the fixed detection order. The first side whose tokens match
// the probed signal wins; Unknown carries no tokens so it never matches.
var sides = [...]struct {
	side   Side
	name   string
	tokens []string
}{
	{Unknown, "UNKNOWN", nil},
	{Client, "CLIENT", []string{"CLIENT"}},
	{Server, "SERVER", []string{"SERVER", "DEDICATEDSERVER"}},
}

// String returns the symbolic name of the side.
func (s Side) String() string {
	if s < Unknown || s > Server {
		return "UNKNOWN"
	}
	return sides[s].name
}

// matches reports whether signal is one of the side's detection tokens.
func (s Side) matches(signal string) bool {
	for _, tok := range sides[s].tokens {
		if tok == signal {
			return true
		}
	}
	return false
}

// UnknownSignal is the signal used when every provider is inconclusive.
// It matches no side's token set.
const UnknownSignal = "UNKNOWN"

// Resolver probes an ordered list of named side-signal providers and maps
// the first conclusive signal onto a Side. A Resolver holds no mutable
// state; memoization of a resolved side belongs to the caller.
type Resolver struct {
	reg   apis.ProviderRegistry
	order []string
	log   zerolog.Logger
}

// NewResolver constructs a Resolver that probes the named providers in
// order against reg. Names absent from reg are skipped at probe time.
func NewResolver(reg apis.ProviderRegistry, order []string, log zerolog.Logger) *Resolver {
	return &Resolver{reg: reg, order: order, log: log}
}

// Resolve probes the providers once and returns the first side, in
// declaration order, whose tokens match the signal. If no provider is
// conclusive, or the signal matches no side, it returns Unknown.
// Resolve never fails: provider absence or panic degrades to Unknown.
func (r *Resolver) Resolve() Side {
	signal := r.signal()
	for _, s := range sides {
		if s.side.matches(signal) {
			r.log.Debug().Str("signal", signal).Str("side", s.name).Msg("side detected")
			return s.side
		}
	}
	return Unknown
}

// signal probes providers in priority order and returns the first
// conclusive side signal, or UnknownSignal if there is none.
func (r *Resolver) signal() string {
	if r.reg == nil {
		return UnknownSignal
	}
	for _, name := range r.order {
		p, ok := r.reg.Lookup(name)
		if !ok {
			continue
		}
		if signal, ok := probe(p, r.log); ok {
			return signal
		}
	}
	return UnknownSignal
}

// probe invokes a single provider, converting any panic into an
// inconclusive result. Host-contributed probes must never abort detection.
func probe(p apis.Provider, log zerolog.Logger) (signal string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Debug().Str("provider", p.Name()).Any("panic", rec).Msg("provider probe failed")
			signal, ok = "", false
		}
	}()
	return p.TrySideName()
}
