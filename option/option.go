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

package option

import (
	"strings"

	"dirpx.dev/mixenv/apis"
)

// Option is a named boolean feature/debug flag. Options form a forest:
// enabling a parent implicitly enables all of its children, but a child
// never enables its parent.
type Option int

const (
	// DebugAll enables all debugging options.
	DebugAll Option = iota
	// DebugExport enables post-transform class export for debugging.
	DebugExport
	// DebugVerify runs the verifier on all classes after transformation.
	DebugVerify
	// DebugVerbose elevates all DEBUG level messages to INFO level.
	DebugVerbose
	// CheckAll enables all checks.
	CheckAll
	// CheckImplements checks that declared interface methods are
	// implemented on a class after transformation.
	CheckImplements

	// Count is the number of declared options.
	Count
)

// Prefix is the root segment of every option property key.
const Prefix = "mixin"

// noParent marks a root option in the descriptor table.
const noParent Option = -1

// descriptors is the closed declaration table. Parents must be declared
// before their children so property keys can be derived in one pass.
var descriptors = [Count]struct {
	name   string
	parent Option
	suffix string
}{
	DebugAll:        {"DEBUG_ALL", noParent, "debug"},
	DebugExport:     {"DEBUG_EXPORT", DebugAll, "export"},
	DebugVerify:     {"DEBUG_VERIFY", DebugAll, "verify"},
	DebugVerbose:    {"DEBUG_VERBOSE", DebugAll, "verbose"},
	CheckAll:        {"CHECK_ALL", noParent, "checks"},
	CheckImplements: {"CHECK_IMPLEMENTS", CheckAll, "interfaces"},
}

// properties holds the derived dot-qualified property key per option.
var properties = deriveProperties()

func deriveProperties() [Count]string {
	var out [Count]string
	for o := Option(0); o < Count; o++ {
		d := descriptors[o]
		if d.parent == noParent {
			out[o] = Prefix + "." + d.suffix
			continue
		}
		out[o] = out[d.parent] + "." + d.suffix
	}
	return out
}

// String returns the declared option name.
func (o Option) String() string {
	if !o.valid() {
		return "INVALID"
	}
	return descriptors[o].name
}

// Property returns the fully qualified property key the option's
// configured value is read from.
func (o Option) Property() string {
	if !o.valid() {
		return ""
	}
	return properties[o]
}

// Parent returns the option's parent and true, or (0, false) for roots.
func (o Option) Parent() (Option, bool) {
	if !o.valid() || descriptors[o].parent == noParent {
		return 0, false
	}
	return descriptors[o].parent, true
}

func (o Option) valid() bool {
	return o >= 0 && o < Count
}

// configured returns the option's externally configured value, ignoring
// the parent chain: case-insensitive "true" is true, anything else or
// absent is false.
func (o Option) configured(p apis.Props) bool {
	raw, ok := p.Lookup(properties[o])
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(raw), "true")
}

// All returns every declared option in ordinal order.
func All() []Option {
	out := make([]Option, Count)
	for o := Option(0); o < Count; o++ {
		out[o] = o
	}
	return out
}

// Table is the dense resolved-value table, indexed by option ordinal.
// It is computed once from a Props source and never re-derived; later
// Set calls overwrite single slots without cascading to children.
type Table [Count]bool

// Resolve computes the effective value of every option from p: an option
// is enabled when itself or any ancestor is configured true.
func Resolve(p apis.Props) Table {
	var t Table
	for o := Option(0); o < Count; o++ {
		t[o] = effective(o, p)
	}
	return t
}

// effective walks the parent chain over configured values only.
func effective(o Option, p apis.Props) bool {
	for {
		if o.configured(p) {
			return true
		}
		parent, ok := o.Parent()
		if !ok {
			return false
		}
		o = parent
	}
}

// Get returns the resolved value for o. Out-of-range options are false.
func (t *Table) Get(o Option) bool {
	if !o.valid() {
		return false
	}
	return t[o]
}

// Set overwrites the slot for o. It deliberately does not re-cascade:
// children resolved at construction keep their values even when a parent
// is flipped afterwards.
func (t *Table) Set(o Option, value bool) {
	if !o.valid() {
		return
	}
	t[o] = value
}
