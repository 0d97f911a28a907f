/* Copyright 2024 the cspkit authors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package modelscript adapts a small user-authored JavaScript snippet
// into a csp.Model (spec.md §4.9, §9's note on "plan ahead for
// failures-based models"), so a model author can experiment with a
// refusals- or failures-shaped behaviour function without touching Go
// code or recompiling cspkit itself.
//
// A script must define two functions:
//
//	function behaviourOf(initials) { ... }  // initials: array of event-name strings
//	function refinedBy(spec, impl) { ... }  // spec/impl: whatever behaviourOf returned
//
// It may optionally define "abbrev" and "name" string globals, used the
// way TracesModel.Abbrev/Name are.
package modelscript

import (
	"reflect"

	"github.com/dop251/goja"

	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/event"
)

// Model adapts a compiled script to csp.Model. It owns a single
// *goja.Runtime: like an Environment, a Model is not safe for
// concurrent use.
type Model struct {
	env         *csp.Environment
	rt          *goja.Runtime
	behaviourOf goja.Callable
	refinedBy   goja.Callable
	abbrev      string
	name        string
}

// Load compiles src against env and returns the Model it defines.
func Load(env *csp.Environment, src string) (*Model, error) {
	rt := goja.New()
	if _, err := rt.RunString(src); err != nil {
		return nil, &ErrScriptFailed{Stage: "compile", Err: err}
	}

	behaviourOf, ok := goja.AssertFunction(rt.Get("behaviourOf"))
	if !ok {
		return nil, &ErrMissingFunction{Name: "behaviourOf"}
	}
	refinedBy, ok := goja.AssertFunction(rt.Get("refinedBy"))
	if !ok {
		return nil, &ErrMissingFunction{Name: "refinedBy"}
	}

	m := &Model{env: env, rt: rt, behaviourOf: behaviourOf, refinedBy: refinedBy, abbrev: "S", name: "script"}
	if v := rt.Get("abbrev"); v != nil && !goja.IsUndefined(v) {
		m.abbrev = v.String()
	}
	if v := rt.Get("name"); v != nil && !goja.IsUndefined(v) {
		m.name = v.String()
	}
	return m, nil
}

func (m *Model) Abbrev() string { return m.abbrev }
func (m *Model) Name() string   { return m.name }

func (m *Model) BehaviourOf(p csp.Process) csp.Behaviour {
	return m.behaviourOfVisible(p.Initials())
}

func (m *Model) BehaviourOfSet(ps []csp.Process) csp.Behaviour {
	union := event.NewSet()
	for _, p := range ps {
		union = union.Union(p.Initials())
	}
	return m.behaviourOfVisible(union)
}

func (m *Model) behaviourOfVisible(visible event.Set) Behaviour {
	sorted := visible.WithoutTau().Sorted()
	names := make([]interface{}, len(sorted))
	for i, e := range sorted {
		names[i] = m.env.Events().NameOf(e)
	}
	v, err := m.behaviourOf(goja.Undefined(), m.rt.ToValue(names))
	if err != nil {
		panic(&ErrScriptFailed{Stage: "behaviourOf", Err: err})
	}
	return Behaviour{model: m, raw: v, key: v.Export()}
}

// Behaviour is the Behaviour type produced by a Model: raw is the
// script's own return value, kept live so it can be handed straight
// back into refinedBy; key is its exported Go form, used for Equal.
type Behaviour struct {
	model *Model
	raw   goja.Value
	key   interface{}
}

func (b Behaviour) Equal(other csp.Behaviour) bool {
	o, ok := other.(Behaviour)
	if !ok {
		return false
	}
	return reflect.DeepEqual(b.key, o.key)
}

// RefinedBy calls the script's refinedBy(spec, impl) with b as spec and
// other as impl. A script error here is a contract violation, not a
// recoverable runtime error (spec.md §7) — the script author promised a
// total function over whatever behaviourOf can produce.
func (b Behaviour) RefinedBy(other csp.Behaviour) bool {
	o, ok := other.(Behaviour)
	if !ok {
		return false
	}
	v, err := b.model.refinedBy(goja.Undefined(), b.raw, o.raw)
	if err != nil {
		panic(&ErrScriptFailed{Stage: "refinedBy", Err: err})
	}
	return v.ToBoolean()
}
