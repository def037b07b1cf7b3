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
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"dirpx.dev/mixenv/apis"
)

// TOML loads a property source from a TOML file. Nested tables flatten
// to dot-qualified keys, so
//
//	[mixin.debug]
//	export = true
//
// defines "mixin.debug.export" = "true". Scalar values are rendered to
// their string form; arrays and other non-scalar values are skipped.
func TOML(path string) (apis.Props, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("mixenv(props): load %s: %w", path, err)
	}
	return flattened(raw), nil
}

// TOMLString decodes an in-memory TOML document. Same flattening rules
// as TOML.
func TOMLString(data string) (apis.Props, error) {
	var raw map[string]any
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("mixenv(props): decode toml: %w", err)
	}
	return flattened(raw), nil
}

func flattened(raw map[string]any) apis.Props {
	out := map[string]string{}
	flatten("", raw, out)
	return Map(out)
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		case bool:
			out[full] = strconv.FormatBool(v)
		case int64:
			out[full] = strconv.FormatInt(v, 10)
		case float64:
			out[full] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
}
