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

package provider

import (
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"dirpx.dev/mixenv/apis"
)

// Expr builds a provider whose side signal is the result of an
// expr-lang expression evaluated over a host-supplied environment map.
// This lets embedding hosts declare detection rules as data, e.g.
//
//	provider.Expr("host.rules",
//		`dedicated ? "DEDICATEDSERVER" : "CLIENT"`,
//		map[string]any{"dedicated": runningHeadless()})
//
// The expression is compiled once. A compile error makes the provider
// permanently inconclusive; an evaluation error or a non-string result
// is inconclusive for that probe. The result is upper-cased.
func Expr(name string, expression string, env map[string]any) apis.Provider {
	p := &exprProvider{name: name, env: env}
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	)
	if err == nil {
		p.program = program
	}
	return p
}

type exprProvider struct {
	name    string
	program *exprvm.Program
	env     map[string]any
}

// Ensure exprProvider implements apis.Provider.
var _ apis.Provider = (*exprProvider)(nil)

func (p *exprProvider) Name() string { return p.name }

func (p *exprProvider) TrySideName() (string, bool) {
	if p.program == nil {
		return "", false
	}
	env := p.env
	if env == nil {
		env = map[string]any{}
	}
	result, err := exprlang.Run(p.program, env)
	if err != nil {
		return "", false
	}
	signal, ok := result.(string)
	if !ok {
		return "", false
	}
	signal = strings.TrimSpace(signal)
	if signal == "" {
		return "", false
	}
	return strings.ToUpper(signal), true
}
