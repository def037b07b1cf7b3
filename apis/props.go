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

// Props is a read-only view of process configuration: dot-qualified
// string keys mapped to string values. Option values are derived from
// Props exactly once, at Environment construction time.
type Props interface {
	// Lookup returns the raw value for key, if the source defines it.
	Lookup(key string) (value string, ok bool)
}
