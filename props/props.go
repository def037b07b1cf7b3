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

// Package props provides process-configuration sources for mixenv: the
// dot-qualified string key -> string value lookups option values are
// resolved from. Sources are read-only; the resolved option table is
// frozen at Environment construction, so later changes to a source are
// not observed.
package props

import "dirpx.dev/mixenv/apis"

// Map wraps a plain map as an apis.Props source. The map is used as-is;
// callers must not mutate it concurrently with lookups.
func Map(values map[string]string) apis.Props {
	return mapProps(values)
}

type mapProps map[string]string

// Ensure mapProps implements apis.Props.
var _ apis.Props = mapProps(nil)

func (m mapProps) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Chain combines sources; the first source that defines a key wins.
// Nil sources are ignored.
func Chain(sources ...apis.Props) apis.Props {
	out := make(chainProps, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type chainProps []apis.Props

// Ensure chainProps implements apis.Props.
var _ apis.Props = chainProps(nil)

func (c chainProps) Lookup(key string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
