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

import (
	"github.com/hstlab/cspkit/event"
	"github.com/hstlab/cspkit/util"
)

type statePair struct {
	spec, impl Process
}

// Refines reports whether impl is an admissible refinement of spec
// under model: at every pair of states reachable in step with each
// other, spec's Behaviour must admit impl's (spec.md §4.8).  The search
// is a breadth-first walk of the product of the two transition systems.
// τ is invisible on both sides: a τ move by either process advances
// only that side, leaving the other in place — a self-loop from the
// other side's point of view — rather than being matched step for step.
//
// spec must be deterministic per visible event: Afters(a) must return
// at most one successor for every a, which Prenormalised and Normalised
// guarantee by construction.  impl may branch freely.  Passing a spec
// with genuine unresolved branching on a shared event (a raw
// ExternalChoice or InternalChoice) is unsound, because this checker
// compares successors pairwise rather than as the set the spec side
// could actually be in — prenormalise the spec first.
func Refines(spec, impl Process, model Model) bool {
	start := statePair{spec, impl}
	visited := map[statePair]bool{start: true}
	queue := []statePair{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !model.BehaviourOf(cur.spec).RefinedBy(model.BehaviourOf(cur.impl)) {
			util.Logf("csp.Refines: behaviour mismatch at spec state %d, impl state %d", cur.spec.Index(), cur.impl.Index())
			return false
		}

		enqueue := func(p statePair) {
			if !visited[p] {
				visited[p] = true
				queue = append(queue, p)
			}
		}

		for _, s2 := range cur.spec.Afters(event.Tau) {
			enqueue(statePair{s2, cur.impl})
		}
		for _, i2 := range cur.impl.Afters(event.Tau) {
			enqueue(statePair{cur.spec, i2})
		}

		for _, a := range cur.impl.Initials().WithoutTau().Sorted() {
			specNexts := cur.spec.Afters(a)
			if len(specNexts) == 0 {
				return false
			}
			for _, sn := range specNexts {
				for _, in := range cur.impl.Afters(a) {
					enqueue(statePair{sn, in})
				}
			}
		}
	}
	return true
}

// TraceRefines is Refines under the traces model, the checker exposed
// by the "refine" CLI subcommand.
func TraceRefines(spec, impl Process) bool {
	return Refines(spec, impl, TracesModel{})
}
