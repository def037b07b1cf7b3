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

import "github.com/rs/zerolog"

// Config carries the collaborators and knobs an Environment is built from.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Store is the shared blackboard the Environment delegates its
	// configuration list and transformer slot to. Required.
	Store Store

	// Props is the process-configuration source option values are
	// resolved from. Required.
	Props Props

	// Providers is the registry side-signal providers are looked up in.
	// Required; it may be empty, in which case every probe is inconclusive.
	Providers ProviderRegistry

	// ProviderOrder is the fixed probe priority: symbolic provider names,
	// highest priority first. Absent names are silently skipped.
	ProviderOrder []string

	// Logger receives structured events for construction, side
	// resolution, and blackboard mutations. Defaults to a no-op logger.
	Logger zerolog.Logger
}
