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

package config

import (
	"github.com/rs/zerolog"

	"dirpx.dev/mixenv/apis"
	"dirpx.dev/mixenv/props"
	"dirpx.dev/mixenv/provider"
	"dirpx.dev/mixenv/store"
)

// DefaultProviderOrder is the canonical probe order: the forge launch
// handler, its legacy namespace, then the liteloader hook. The first
// conclusive provider wins.
var DefaultProviderOrder = []string{
	"launchwrapper.fml",
	"launchwrapper.fml.legacy",
	"liteloader",
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure probe order is never nil.
	if cfg.ProviderOrder == nil {
		cfg.ProviderOrder = DefaultProviderOrder
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided:
// a fresh in-process blackboard, environment-variable properties, an
// empty provider registry, the canonical probe order, and no logging.
// Each call builds fresh collaborators; the process-wide canonical set
// lives in the root mixenv package.
func DefaultConfig() apis.Config {
	return apis.Config{
		Store:         store.New(),
		Props:         props.System(),
		Providers:     provider.NewRegistry(),
		ProviderOrder: DefaultProviderOrder,
		Logger:        zerolog.Nop(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStore sets the shared blackboard. A nil store is ignored.
func WithStore(s apis.Store) Option {
	return func(c *apis.Config) {
		if s != nil {
			c.Store = s
		}
	}
}

// WithProps sets the process-configuration source. A nil source is ignored.
func WithProps(p apis.Props) Option {
	return func(c *apis.Config) {
		if p != nil {
			c.Props = p
		}
	}
}

// WithProviders sets the provider registry. A nil registry is ignored.
func WithProviders(r apis.ProviderRegistry) Option {
	return func(c *apis.Config) {
		if r != nil {
			c.Providers = r
		}
	}
}

// WithProviderOrder sets the probe priority order.
// A nil order resets to the default.
func WithProviderOrder(names ...string) Option {
	return func(c *apis.Config) {
		if names == nil {
			c.ProviderOrder = DefaultProviderOrder
			return
		}
		c.ProviderOrder = names
	}
}

// WithLogger sets the structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = log
	}
}
