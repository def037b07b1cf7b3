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
	"os"
	"strings"

	"dirpx.dev/mixenv/apis"
)

// Func adapts a plain function into an apis.Provider. A nil fn is always
// inconclusive.
func Func(name string, fn func() (string, bool)) apis.Provider {
	return funcProvider{name: name, fn: fn}
}

type funcProvider struct {
	name string
	fn   func() (string, bool)
}

// Ensure funcProvider implements apis.Provider.
var _ apis.Provider = funcProvider{}

func (p funcProvider) Name() string { return p.name }

func (p funcProvider) TrySideName() (string, bool) {
	if p.fn == nil {
		return "", false
	}
	return p.fn()
}

// Env builds a provider that reads the side signal from an environment
// variable. An unset or empty variable is inconclusive; the value is
// upper-cased so hosts may export "client" or "CLIENT" alike.
func Env(name string, envVar string) apis.Provider {
	return envProvider{name: name, envVar: envVar}
}

type envProvider struct {
	name   string
	envVar string
}

// Ensure envProvider implements apis.Provider.
var _ apis.Provider = envProvider{}

func (p envProvider) Name() string { return p.name }

func (p envProvider) TrySideName() (string, bool) {
	raw, ok := os.LookupEnv(p.envVar)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	return strings.ToUpper(raw), true
}

// Static builds a provider that always reports the given signal. Useful
// for embedding hosts that know their role up front, and for tests.
func Static(name string, signal string) apis.Provider {
	return Func(name, func() (string, bool) { return signal, true })
}
