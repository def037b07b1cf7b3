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

package option_test

import (
	"testing"

	"dirpx.dev/mixenv/option"
	"dirpx.dev/mixenv/props"
)

func TestProperty_KeyDerivation(t *testing.T) {
	cases := []struct {
		o    option.Option
		want string
	}{
		{option.DebugAll, "mixin.debug"},
		{option.DebugExport, "mixin.debug.export"},
		{option.DebugVerify, "mixin.debug.verify"},
		{option.DebugVerbose, "mixin.debug.verbose"},
		{option.CheckAll, "mixin.checks"},
		{option.CheckImplements, "mixin.checks.interfaces"},
	}
	for _, tc := range cases {
		if got := tc.o.Property(); got != tc.want {
			t.Fatalf("%v.Property() = %q, want %q", tc.o, got, tc.want)
		}
	}
}

func TestParent(t *testing.T) {
	if _, ok := option.DebugAll.Parent(); ok {
		t.Fatalf("DebugAll.Parent(): root option reported a parent")
	}
	p, ok := option.CheckImplements.Parent()
	if !ok || p != option.CheckAll {
		t.Fatalf("CheckImplements.Parent() = (%v,%v), want (%v,true)", p, ok, option.CheckAll)
	}
}

func TestResolve_ParentCascadesToChild(t *testing.T) {
	table := option.Resolve(props.Map(map[string]string{
		"mixin.checks": "true",
	}))
	if !table.Get(option.CheckAll) {
		t.Fatalf("CheckAll: got false, want true")
	}
	if !table.Get(option.CheckImplements) {
		t.Fatalf("CheckImplements: parent enabled, got false, want true")
	}
}

func TestResolve_ChildDoesNotEnableParent(t *testing.T) {
	table := option.Resolve(props.Map(map[string]string{
		"mixin.checks.interfaces": "true",
	}))
	if !table.Get(option.CheckImplements) {
		t.Fatalf("CheckImplements: got false, want true")
	}
	if table.Get(option.CheckAll) {
		t.Fatalf("CheckAll: child enabled, got true, want false")
	}
}

func TestResolve_AllAbsentIsAllFalse(t *testing.T) {
	table := option.Resolve(props.Map(nil))
	for _, o := range option.All() {
		if table.Get(o) {
			t.Fatalf("%v: got true with no configuration", o)
		}
	}
}

func TestResolve_BooleanParsing(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{" true ", true},
		{"false", false},
		{"yes", false},
		{"1", false},
		{"", false},
	}
	for _, tc := range cases {
		table := option.Resolve(props.Map(map[string]string{
			"mixin.debug": tc.raw,
		}))
		if got := table.Get(option.DebugAll); got != tc.want {
			t.Fatalf("raw %q: got %v, want %v", tc.raw, got, tc.want)
		}
	}
}

// Flipping a parent after resolution must not re-cascade: children keep
// the value they were resolved with.
func TestSet_NoCascade(t *testing.T) {
	table := option.Resolve(props.Map(nil))
	table.Set(option.DebugAll, true)

	if !table.Get(option.DebugAll) {
		t.Fatalf("DebugAll: got false after Set(true)")
	}
	if table.Get(option.DebugExport) {
		t.Fatalf("DebugExport: got true, want false (Set must not cascade)")
	}
}

func TestGetSet_OutOfRange(t *testing.T) {
	table := option.Resolve(props.Map(nil))
	table.Set(option.Option(-1), true)
	table.Set(option.Count, true)
	if table.Get(option.Option(-1)) || table.Get(option.Count) {
		t.Fatalf("out-of-range options must read false")
	}
}

func TestString(t *testing.T) {
	if got := option.DebugExport.String(); got != "DEBUG_EXPORT" {
		t.Fatalf("String() = %q, want DEBUG_EXPORT", got)
	}
	if got := option.Option(-1).String(); got != "INVALID" {
		t.Fatalf("String(-1) = %q, want INVALID", got)
	}
}
