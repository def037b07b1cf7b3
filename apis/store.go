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

// Store is the shared process-wide blackboard: a string-keyed map of
// arbitrary values used as the integration point between otherwise
// unrelated subsystems. mixenv does not own the canonical Store; it is
// handed one at construction and reads/writes through on every call.
//
// Values are untyped. mixenv stores its configuration list as []string
// and the active transformer slot as an opaque any. Other subsystems
// are free to keep their own entries under their own keys.
type Store interface {
	// Get returns the value stored under key, if present.
	Get(key string) (value any, ok bool)
	// Put stores value under key, replacing any previous value.
	Put(key string, value any)
}
