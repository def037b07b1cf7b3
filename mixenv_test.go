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

package mixenv_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/mixenv"
	"dirpx.dev/mixenv/config"
	"dirpx.dev/mixenv/option"
	"dirpx.dev/mixenv/props"
	"dirpx.dev/mixenv/provider"
	"dirpx.dev/mixenv/side"
)

// resetGlobal gives each test a clean process-wide state. The global
// environment is never reset in production; tests exercise construction
// repeatedly.
func resetGlobal(t *testing.T) {
	t.Helper()
	mixenv.Reset()
	t.Cleanup(mixenv.Reset)
}

func TestCurrent_RequiresBootstrap(t *testing.T) {
	resetGlobal(t)

	if _, err := mixenv.Current(); !errors.Is(err, mixenv.ErrNotBootstrapped) {
		t.Fatalf("Current() before Bootstrap: got %v, want ErrNotBootstrapped", err)
	}

	// Failure is not memoized: once the host bootstraps, access succeeds.
	if err := mixenv.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if _, err := mixenv.Current(); err != nil {
		t.Fatalf("Current() after Bootstrap: unexpected error: %v", err)
	}
}

func TestCurrent_Idempotent(t *testing.T) {
	resetGlobal(t)
	if err := mixenv.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	a, err := mixenv.Current()
	if err != nil {
		t.Fatalf("Current(): %v", err)
	}
	b, err := mixenv.Current()
	if err != nil {
		t.Fatalf("Current(): %v", err)
	}
	if a != b {
		t.Fatalf("Current() returned distinct instances: %s vs %s", a.ID(), b.ID())
	}
}

func TestConfigure_AppliedOnConstruction(t *testing.T) {
	resetGlobal(t)
	mixenv.Configure(config.WithProps(props.Map(map[string]string{
		"mixin.debug": "true",
	})))
	if err := mixenv.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if !mixenv.Option(option.DebugExport) {
		t.Fatalf("Option(DebugExport): got false, want true via configured parent")
	}
}

func TestGlobalWrappers(t *testing.T) {
	resetGlobal(t)
	if err := mixenv.Providers().Register(provider.Static("launchwrapper.fml", "CLIENT")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := mixenv.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if got := mixenv.Side(); got != side.Client {
		t.Fatalf("Side() = %v, want Client", got)
	}

	mixenv.AddConfiguration("a")
	mixenv.AddConfiguration("b")
	mixenv.AddConfiguration("a")
	if got := mixenv.Configurations(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Configurations() = %v, want [a b]", got)
	}

	ref := &struct{ name string }{"transformer"}
	mixenv.SetActiveTransformer(ref)
	if got, ok := mixenv.ActiveTransformer(); !ok || got != any(ref) {
		t.Fatalf("ActiveTransformer() = (%v,%v), want installed ref", got, ok)
	}

	mixenv.SetOption(option.CheckAll, true)
	if !mixenv.Option(option.CheckAll) {
		t.Fatalf("Option(CheckAll): got false after SetOption")
	}
}

func TestSetSide_GlobalMonotonic(t *testing.T) {
	resetGlobal(t)
	if err := mixenv.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	mixenv.SetSide(side.Client)
	mixenv.SetSide(side.Server)
	if got := mixenv.Side(); got != side.Client {
		t.Fatalf("Side() = %v, want Client (first non-Unknown wins)", got)
	}
}

func TestMustCurrent_PanicsUnbootstrapped(t *testing.T) {
	resetGlobal(t)

	defer func() {
		if recover() == nil {
			t.Fatalf("MustCurrent() before Bootstrap: expected panic")
		}
	}()
	mixenv.MustCurrent()
}

// TestCurrent_Concurrent verifies that racing first accesses agree on a
// single instance.
func TestCurrent_Concurrent(t *testing.T) {
	resetGlobal(t)
	if err := mixenv.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	got := make([]*mixenv.Environment, workers)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			e, err := mixenv.Current()
			if err != nil {
				t.Errorf("Current(): %v", err)
				return
			}
			got[w] = e
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		if got[w] != got[0] {
			t.Fatalf("worker %d saw a different instance", w)
		}
	}
}
