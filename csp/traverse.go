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

// Control bounds a traversal over a process graph that might be
// infinite.  Termination is not otherwise guaranteed (spec.md §4.5): a
// caller passing untrusted input must set MaxStates.  A nil Control, or
// one with MaxStates <= 0, means unbounded — only safe when the caller
// knows the graph is finite.
type Control struct {
	MaxStates int
}

func (c *Control) exceeded(n int) bool {
	return c != nil && c.MaxStates > 0 && n >= c.MaxStates
}

// Reachable performs a breadth-first search over the processes
// reachable from root by any sequence of Afters transitions, visiting
// each process once, in BFS layer order (spec.md §4.5).
func Reachable(root Process, ctrl *Control) []Process {
	visited := map[Process]struct{}{root: {}}
	order := []Process{root}
	queue := []Process{root}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range cur.Initials().Sorted() {
			for _, nxt := range cur.Afters(a) {
				if _, seen := visited[nxt]; seen {
					continue
				}
				if ctrl.exceeded(len(order)) {
					return order
				}
				visited[nxt] = struct{}{}
				order = append(order, nxt)
				queue = append(queue, nxt)
				util.Logf("csp.Reachable: discovered state %d via event %d", nxt.Index(), a)
			}
		}
	}
	return order
}

// SyntacticReachable is Reachable's counterpart over Subprocesses rather
// than Afters: it walks the term's written structure, used only for
// pretty-printing recursive term graphs (spec.md §4.5).
func SyntacticReachable(root Process, ctrl *Control) []Process {
	visited := map[Process]struct{}{root: {}}
	order := []Process{root}
	queue := []Process{root}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range cur.Subprocesses() {
			if _, seen := visited[child]; seen {
				continue
			}
			if ctrl.exceeded(len(order)) {
				return order
			}
			visited[child] = struct{}{}
			order = append(order, child)
			queue = append(queue, child)
		}
	}
	return order
}

// TauClosure computes the fixed point of repeatedly unioning in
// afters(p, τ) for every p already in the set, starting from ps
// (spec.md §4.5).  The result is deterministic up to set membership:
// TauClosure of an already-closed set returns an equal set (testable
// property 7).
func TauClosure(ps []Process) []Process {
	seen := make(map[Process]struct{}, len(ps))
	order := make([]Process, 0, len(ps))
	for _, p := range ps {
		if _, have := seen[p]; have {
			continue
		}
		seen[p] = struct{}{}
		order = append(order, p)
	}

	for i := 0; i < len(order); i++ {
		for _, nxt := range order[i].Afters(event.Tau) {
			if _, have := seen[nxt]; have {
				continue
			}
			seen[nxt] = struct{}{}
			order = append(order, nxt)
		}
	}
	return order
}

// MaximalFiniteTraces performs a depth-first search over p, extending
// the current trace by each initial event, and pruning a branch when
// either the current process has no initials (the trace is maximal) or
// the current process already appears earlier on the active path (a
// cycle; the trace is emitted up to but not including the repeat).  The
// active path is tracked explicitly via an ancestor list rather than
// package state (spec.md §4.5).
//
// p must already be prenormalised (τ-free): every emitted trace is a
// sequence of p's own initials, with no filtering of τ along the way,
// so a raw process whose Initials() can still include τ will leak τ
// into the output. Pass env.Prenormalise(...)'s result, not the raw
// term, exactly as the "traces" CLI command does.
func MaximalFiniteTraces(p Process) [][]event.Event {
	var results [][]event.Event
	var walk func(cur Process, trace []event.Event, ancestors []Process)

	walk = func(cur Process, trace []event.Event, ancestors []Process) {
		for _, a := range ancestors {
			if a == cur {
				results = append(results, trace)
				return
			}
		}

		initials := cur.Initials().Sorted()
		if len(initials) == 0 {
			results = append(results, trace)
			return
		}

		nextAncestors := make([]Process, len(ancestors)+1)
		copy(nextAncestors, ancestors)
		nextAncestors[len(ancestors)] = cur

		for _, a := range initials {
			for _, nxt := range cur.Afters(a) {
				nextTrace := make([]event.Event, len(trace)+1)
				copy(nextTrace, trace)
				nextTrace[len(trace)] = a
				walk(nxt, nextTrace, nextAncestors)
			}
		}
	}

	walk(p, nil, nil)
	return results
}
