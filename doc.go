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

// Package mixenv provides a global, process-wide execution-environment
// registry for mixin-style transformation hosts.
//
// mixenv answers three questions for every other subsystem in the
// process: which logical side (client or server) the process runs as,
// which debug/check options are enabled, and which configuration
// resources and active transformer are currently registered. The last
// two live in a shared blackboard (apis.Store) that mixenv reads and
// writes through on every call, because that blackboard is the
// integration point with subsystems mixenv knows nothing about.
//
// # Design
//
// The core is a single Environment instance with process lifetime. The
// package holds an atomic pointer to it; Current constructs it lazily on
// first access and memoizes only success, so an access before the host
// completed bootstrap fails now and may succeed later.
//
// Construction runs two sanity checks against the blackboard before
// anything else:
//
//   - the bootstrap marker (InitKey) must be present and carry exactly
//     this package's Version token, proving the hosting runtime ran
//     Prepare/Bootstrap first;
//
//   - the owner sentinel must be the one this loaded copy of the package
//     stamped, catching the case where two copies of mixenv (e.g. across
//     plugin boundaries) share one blackboard.
//
// Option values are resolved eagerly at construction: each option reads
// its dot-qualified property (option.Option.Property) from an apis.Props
// source and ORs it with its ancestors' configured values, then the
// whole table is frozen. Flipping a parent afterwards via SetOption does
// not re-cascade to children; that asymmetry is part of the contract.
//
// Side detection is lazy. The first Side call probes an ordered list of
// symbolically named capability providers (apis.Provider, registered by
// host frameworks in the provider registry); the first conclusive signal
// is matched against each side's token set in declared order. Provider
// absence, failure, or panic is silently inconclusive. A non-Unknown
// result is memoized for the life of the process; Unknown is not, so
// detection retries until a host hook appears.
//
// # Usage
//
// Hosting runtime, once during startup:
//
//	mixenv.Providers().Register(provider.Env("launchwrapper.fml", "FML_SIDE"))
//	if err := mixenv.Bootstrap(); err != nil { ... }
//
// Any subsystem afterwards:
//
//	env := mixenv.MustCurrent()
//	if env.Side() == side.Server && env.Option(option.DebugVerbose) { ... }
//	env.AddConfiguration("mixins.core.json")
//
// Embedding hosts and tests construct independent environments by
// injecting their own collaborators through the config package:
//
//	st := store.New()
//	_ = mixenv.Prepare(st)
//	env, err := mixenv.New(config.NewConfig(
//		config.WithStore(st),
//		config.WithProps(props.Map(map[string]string{"mixin.debug": "true"})),
//	))
//
// # Concurrency
//
// Environment methods are safe for concurrent use: side and option state
// sit behind an internal mutex, and blackboard read-modify-write
// sequences are serialized by the same mutex. The blackboard itself has
// no cross-subsystem locking discipline; the design assumes
// single-threaded bootstrap followed by best-effort concurrent reads,
// and hosts that mutate mixenv's slots from outside must bring their own
// synchronization.
package mixenv
