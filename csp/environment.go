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

package csp

import "github.com/hstlab/cspkit/event"

// Environment is the sole constructor of process nodes: a hash-consing
// term store (spec.md §4.2).  Equal structural payloads always yield the
// same node reference; distinct variants never collide because each
// variant is hash-consed in its own table, which sidesteps the need for
// the original implementation's manual per-variant hash-mixing "scope"
// values (spec.md §9 design notes) while preserving the same guarantee.
//
// An Environment is not safe for concurrent use (spec.md §5): every
// process it produces is owned by it for its lifetime, and there is no
// per-node reclamation.
type Environment struct {
	events *event.Table

	idx      int
	scopeSeq int

	stop  *Stop
	skip  *Skip
	omega *Omega

	prefixes    map[prefixKey]*Prefix
	extChoices  map[string]*ExternalChoice
	intChoices  map[string]*InternalChoice
	interleaves map[string]*Interleave
	seqs        map[seqKey]*SequentialComposition
	prenorms    map[string]*Prenormalised
	normalised  map[normKey]*Normalised

	scopes map[int]*Scope
}

type prefixKey struct {
	a event.Event
	p Process
}

type seqKey struct {
	p Process
	q Process
}

type normKey struct {
	root Process
	head Process
}

// NewEnvironment returns a fresh, empty term store with STOP, SKIP, and
// Ω preallocated.
func NewEnvironment() *Environment {
	env := &Environment{
		events:      event.NewTable(),
		prefixes:    make(map[prefixKey]*Prefix),
		extChoices:  make(map[string]*ExternalChoice),
		intChoices:  make(map[string]*InternalChoice),
		interleaves: make(map[string]*Interleave),
		seqs:        make(map[seqKey]*SequentialComposition),
		prenorms:    make(map[string]*Prenormalised),
		normalised:  make(map[normKey]*Normalised),
		scopes:      make(map[int]*Scope),
	}
	env.stop = &Stop{base: base{env: env, index: env.nextIndex()}}
	env.omega = &Omega{base: base{env: env, index: env.nextIndex()}}
	env.skip = &Skip{base: base{env: env, index: env.nextIndex()}, omega: env.omega}
	return env
}

func (env *Environment) nextIndex() int {
	i := env.idx
	env.idx++
	return i
}

// Events returns this store's event interner.
func (env *Environment) Events() *event.Table { return env.events }

// Stop returns the store's single STOP node.
func (env *Environment) Stop() Process { return env.stop }

// Skip returns the store's single SKIP node.
func (env *Environment) Skip() Process { return env.skip }

// Omega returns the store's single Ω node.
func (env *Environment) Omega() Process { return env.omega }

// Prefix returns the node for "a → p", constructing it on first request.
func (env *Environment) Prefix(a event.Event, p Process) Process {
	key := prefixKey{a: a, p: p}
	if existing, have := env.prefixes[key]; have {
		return existing
	}
	n := &Prefix{base: base{env: env, index: env.nextIndex()}, a: a, p: p}
	env.prefixes[key] = n
	return n
}

// ExternalChoice returns the node for "□ ps", treating ps with set
// semantics: duplicates collapse, order does not affect identity.
func (env *Environment) ExternalChoice(ps []Process) Process {
	deduped := dedupeByIndex(ps)
	key := "E" + indexKey(deduped)
	if existing, have := env.extChoices[key]; have {
		return existing
	}
	n := &ExternalChoice{base: base{env: env, index: env.nextIndex()}, ps: deduped}
	env.extChoices[key] = n
	return n
}

// InternalChoice returns the node for "⊓ ps", with the same set
// semantics as ExternalChoice.
func (env *Environment) InternalChoice(ps []Process) Process {
	deduped := dedupeByIndex(ps)
	key := "I" + indexKey(deduped)
	if existing, have := env.intChoices[key]; have {
		return existing
	}
	n := &InternalChoice{base: base{env: env, index: env.nextIndex()}, ps: deduped}
	env.intChoices[key] = n
	return n
}

// Interleave returns the node for "⫴ ps", treating ps as a multiset:
// duplicates are preserved and matter to identity.
func (env *Environment) Interleave(ps []Process) Process {
	bag := sortByIndexBag(ps)
	key := "L" + indexKey(bag)
	if existing, have := env.interleaves[key]; have {
		return existing
	}
	n := &Interleave{base: base{env: env, index: env.nextIndex()}, ps: bag}
	env.interleaves[key] = n
	return n
}

// SequentialComposition returns the node for "p ; q".
func (env *Environment) SequentialComposition(p, q Process) Process {
	key := seqKey{p: p, q: q}
	if existing, have := env.seqs[key]; have {
		return existing
	}
	n := &SequentialComposition{base: base{env: env, index: env.nextIndex()}, p: p, q: q}
	env.seqs[key] = n
	return n
}

// Prenormalise returns the Prenormalised node whose payload is the
// τ-closure of ps (spec.md §4.6).  The Prenormalised invariant — its
// payload is always τ-closed — is therefore enforced at construction,
// not merely documented.
func (env *Environment) Prenormalise(ps []Process) *Prenormalised {
	closed := TauClosure(ps)
	deduped := dedupeByIndex(closed)
	key := indexKey(deduped)
	if existing, have := env.prenorms[key]; have {
		return existing
	}
	n := &Prenormalised{base: base{env: env, index: env.nextIndex()}, ps: deduped}
	env.prenorms[key] = n
	return n
}

// NewScope issues a fresh Scope with a store-unique id (spec.md §3.3),
// and registers it so that a later ScopeByID lookup — used by the
// parser's "X@N" form — can find it again.
func (env *Environment) NewScope() *Scope {
	id := env.scopeSeq
	env.scopeSeq++
	s := &Scope{
		id:   id,
		env:  env,
		refs: make(map[string]*RecursiveRef),
	}
	env.scopes[id] = s
	return s
}

// ScopeByID returns the Scope previously issued with the given id, if
// any. This backs the "X@N" surface syntax (spec.md §6.1): re-parsing a
// printed cyclic reference must resolve to the RecursiveRef already
// installed in that scope, not create a fresh one.
func (env *Environment) ScopeByID(id int) (*Scope, bool) {
	s, ok := env.scopes[id]
	return s, ok
}

func (env *Environment) normalisedNode(table *equivTable, head Process) *Normalised {
	key := normKey{root: table.root, head: head}
	if existing, have := env.normalised[key]; have {
		return existing
	}
	n := &Normalised{base: base{env: env, index: env.nextIndex()}, table: table, head: head}
	env.normalised[key] = n
	return n
}
