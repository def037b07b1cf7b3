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

package props

import (
	"os"
	"strings"

	"dirpx.dev/mixenv/apis"
)

// System returns a source backed by environment variables. Dot-qualified
// property keys are mangled to the conventional environment form:
// "mixin.debug.export" -> "MIXIN_DEBUG_EXPORT". An unset variable means
// the key is absent; an empty value is still a defined key.
func System() apis.Props {
	return systemProps{}
}

type systemProps struct{}

// Ensure systemProps implements apis.Props.
var _ apis.Props = systemProps{}

func (systemProps) Lookup(key string) (string, bool) {
	return os.LookupEnv(EnvKey(key))
}

// EnvKey converts a dot-qualified property key to its environment
// variable form.
func EnvKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
