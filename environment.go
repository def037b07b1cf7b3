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
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"dirpx.dev/mixenv/apis"
	"dirpx.dev/mixenv/option"
	"dirpx.dev/mixenv/props"
	"dirpx.dev/mixenv/side"
)

// Version is the environment version token. Prepare writes it under
// InitKey; construction refuses any store carrying a different token.
const Version = "0.1.0"

const (
	// InitKey is the blackboard slot holding the bootstrap marker.
	InitKey = "mixin.initialised"
	// ConfigsKey is the blackboard slot holding the ordered list of
	// registered configuration-resource names ([]string).
	ConfigsKey = "mixin.configs"
	// TransformerKey is the blackboard slot holding the active
	// transformer handle (opaque).
	TransformerKey = "mixin.transformer"
	// ownerKey is the blackboard slot holding the owner sentinel used
	// by the construction-context check.
	ownerKey = "mixin.owner"
)

var (
	// ErrNilStore is returned when construction is attempted without a store.
	ErrNilStore = errors.New("mixenv: nil store provided")
	// ErrNotBootstrapped is returned when the bootstrap marker is absent:
	// Prepare (or the host's own bootstrap step) has not run for this store.
	ErrNotBootstrapped = errors.New("mixenv: store not bootstrapped")
	// ErrVersionConflict is returned when the bootstrap marker carries a
	// version token other than Version.
	ErrVersionConflict = errors.New("mixenv: environment version conflict")
	// ErrWrongContext is returned when the store was prepared by a
	// different instance of this package: two copies of mixenv are loaded
	// in the process (e.g. across plugin boundaries) and are about to
	// fight over one blackboard.
	ErrWrongContext = errors.New("mixenv: environment constructed in wrong context")
)

// ownerToken is this package instance's identity. Prepare stamps it into
// the store; construction requires the stamp to be this exact pointer.
var ownerToken = &struct{ pkg string }{"dirpx.dev/mixenv"}

// Prepare bootstraps a store for use by an Environment: it writes the
// version token under InitKey and stamps the owner sentinel. Prepare is
// idempotent and is ordinarily run once by the hosting runtime before
// any Environment is constructed.
func Prepare(s apis.Store) error {
	if s == nil {
		return ErrNilStore
	}
	s.Put(InitKey, Version)
	s.Put(ownerKey, ownerToken)
	return nil
}

// Environment is the process-wide execution-environment registry. It
// memoizes the detected side, freezes the resolved option table at
// construction, and delegates the configuration list and transformer
// slot to the shared blackboard on every call.
//
// An Environment is intended to be constructed once per process (see
// Current); independent instances exist only so tests and embedding
// hosts can inject their own collaborators. Side and option state is
// guarded by an internal mutex; blackboard read-modify-write sequences
// are serialized by the same mutex, which is sufficient as long as the
// configuration list and transformer slots are mutated through a single
// Environment, per the bootstrap discipline documented in the package
// comment.
type Environment struct {
	cfg     apis.Config
	id      uuid.UUID
	version string
	res     *side.Resolver

	mu   sync.Mutex
	side side.Side // Unknown until first conclusive detection
	opts option.Table
}

// New constructs an Environment from cfg. It fails when the store is
// missing its bootstrap marker, carries a mismatched version token, or
// was prepared by a different loaded copy of this package. The option
// table is resolved eagerly; side detection is deferred to the first
// Side call.
func New(cfg apis.Config) (*Environment, error) {
	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	// Sanity check: the hosting runtime must have completed bootstrap.
	marker, ok := cfg.Store.Get(InitKey)
	if !ok {
		return nil, ErrNotBootstrapped
	}
	token, ok := marker.(string)
	if !ok || token != Version {
		return nil, fmt.Errorf("%w: store has %v, this package is %s", ErrVersionConflict, marker, Version)
	}

	// Also sanity check: refuse a store prepared by another copy of this
	// package loaded elsewhere in the process.
	if owner, ok := cfg.Store.Get(ownerKey); !ok || owner != any(ownerToken) {
		return nil, ErrWrongContext
	}

	if cfg.Props == nil {
		cfg.Props = props.Map(nil)
	}

	e := &Environment{
		cfg:     cfg,
		id:      uuid.New(),
		version: token,
		res:     side.NewResolver(cfg.Providers, cfg.ProviderOrder, cfg.Logger),
		opts:    option.Resolve(cfg.Props),
	}
	cfg.Logger.Debug().
		Str("env", e.id.String()).
		Str("version", token).
		Msg("environment constructed")
	return e, nil
}

// ID returns the unique identity of this Environment instance.
func (e *Environment) ID() uuid.UUID {
	return e.id
}

// Version returns the version token validated at construction.
func (e *Environment) Version() string {
	return e.version
}

// Side returns the detected side, resolving and memoizing it on first
// success. While no provider is conclusive it returns side.Unknown and
// keeps retrying on subsequent calls, so a host framework that becomes
// probeable later is still picked up.
func (e *Environment) Side() side.Side {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sideLocked()
}

// SetSide proposes a side. It applies only when the current side is
// still Unknown after a detection pass and the proposed side is not
// Unknown; otherwise it is a no-op. First non-Unknown side wins for the
// life of the process.
func (e *Environment) SetSide(s side.Side) *Environment {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sideLocked() == side.Unknown && s != side.Unknown {
		e.side = s
		e.cfg.Logger.Debug().Str("env", e.id.String()).Stringer("side", s).Msg("side overridden")
	}
	return e
}

func (e *Environment) sideLocked() side.Side {
	if e.side == side.Unknown {
		e.side = e.res.Resolve()
	}
	return e.side
}

// Option returns the resolved value of o.
func (e *Environment) Option(o option.Option) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts.Get(o)
}

// SetOption overwrites the resolved value of o. The change does not
// cascade: children resolved at construction keep their values even when
// a parent is flipped here.
func (e *Environment) SetOption(o option.Option, value bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.Set(o, value)
}

// Configurations returns the ordered list of registered
// configuration-resource names from the blackboard, creating and storing
// an empty list if the slot is absent. The returned slice aliases the
// stored one; treat it as read-only and register through
// AddConfiguration.
func (e *Environment) Configurations() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.configurationsLocked()
}

func (e *Environment) configurationsLocked() []string {
	if v, ok := e.cfg.Store.Get(ConfigsKey); ok {
		if configs, ok := v.([]string); ok {
			return configs
		}
	}
	configs := []string{}
	e.cfg.Store.Put(ConfigsKey, configs)
	return configs
}

// AddConfiguration registers a configuration-resource name. Names are
// kept in insertion order; re-adding a known name is silently ignored.
func (e *Environment) AddConfiguration(name string) *Environment {
	e.mu.Lock()
	defer e.mu.Unlock()
	configs := e.configurationsLocked()
	for _, existing := range configs {
		if existing == name {
			return e
		}
	}
	e.cfg.Store.Put(ConfigsKey, append(configs, name))
	e.cfg.Logger.Debug().Str("env", e.id.String()).Str("config", name).Msg("configuration registered")
	return e
}

// ActiveTransformer returns the active transformer handle, if one is set.
// The handle is opaque to mixenv.
func (e *Environment) ActiveTransformer() (any, bool) {
	v, ok := e.cfg.Store.Get(TransformerKey)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SetActiveTransformer installs ref as the active transformer handle.
// Last write wins; the previous handle, if any, is silently replaced.
func (e *Environment) SetActiveTransformer(ref any) {
	e.cfg.Store.Put(TransformerKey, ref)
	e.cfg.Logger.Debug().Str("env", e.id.String()).Msg("active transformer replaced")
}
