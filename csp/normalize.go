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
	"strconv"

	"github.com/hstlab/cspkit/event"
)

// appendInt appends the base-10 representation of n to buf.
func appendInt(buf []byte, n int) []byte {
	return strconv.AppendInt(buf, int64(n), 10)
}

// equivTable is the bisimulation partition built by Normalise: classOf
// maps every reachable prenormalised state to its equivalence-class id,
// and reps holds one representative state per class.  root and model
// identify the run that produced the table; root also scopes
// Normalised's hash-consing key (spec.md §4.7).
type equivTable struct {
	root    Process
	model   Model
	classOf map[Process]int
	reps    []Process
}

// Normalised is a node of the minimised, deterministic automaton
// produced by bisimulation-based normalisation (spec.md §3.2, §4.7):
// one node per equivalence class, with head the class's representative
// Prenormalised state.
type Normalised struct {
	base
	table *equivTable
	head  Process
}

func (n *Normalised) Tag() Tag { return TagNormalised }

// Initials delegates to the representative state: every member of an
// equivalence class offers the same visible events, by construction.
func (n *Normalised) Initials() event.Set { return n.head.Initials() }

// Afters follows the representative's transition and maps its successor
// to the Normalised node for that successor's class.
func (n *Normalised) Afters(a event.Event) []Process {
	succs := n.head.Afters(a)
	if len(succs) == 0 {
		return nil
	}
	cls, ok := n.table.classOf[succs[0]]
	if !ok {
		return nil
	}
	return []Process{n.base.env.normalisedNode(n.table, n.table.reps[cls])}
}

func (n *Normalised) Subprocesses() []Process { return []Process{n.head} }

// Expand exposes the representative's member set, mirroring
// Prenormalised.Expand.
func (n *Normalised) Expand() []Process {
	return n.head.(*Prenormalised).Expand()
}

// Head returns the representative Prenormalised state backing this
// equivalence class.
func (n *Normalised) Head() Process { return n.head }

// FindSubprocess returns the Normalised node for the equivalence class
// containing state, or ErrNoSuchClass if state was never visited by the
// normalisation run that produced n.
func (n *Normalised) FindSubprocess(state Process) (*Normalised, error) {
	cls, ok := n.table.classOf[state]
	if !ok {
		return nil, &ErrNoSuchClass{}
	}
	return n.base.env.normalisedNode(n.table, n.table.reps[cls]), nil
}

// Normalise builds the minimal deterministic automaton bisimilar to
// root under model (spec.md §4.7): states are partitioned by
// model-behaviour first, then the partition is iteratively split by
// comparing, for every shared event, which class each state's successor
// falls in, until a round produces no further split.  This is the
// textbook coarse partition-refinement algorithm, not Hopcroft's
// optimisation — adequate for the state counts this package targets.
func Normalise(env *Environment, root *Prenormalised, model Model) *Normalised {
	states := Reachable(Process(root), nil)
	stateIndex := make(map[Process]int, len(states))
	for i, s := range states {
		stateIndex[s] = i
	}

	classOf := initialPartition(states, model)
	for {
		sigs := make([]string, len(states))
		for i := range states {
			sigs[i] = stateSignature(i, states, classOf, stateIndex)
		}
		next := regroup(sigs)
		if intSlicesEqual(next, classOf) {
			break
		}
		classOf = next
	}

	numClasses := 0
	for _, c := range classOf {
		if c+1 > numClasses {
			numClasses = c + 1
		}
	}
	reps := make([]Process, numClasses)
	assigned := make([]bool, numClasses)
	for i, c := range classOf {
		if !assigned[c] {
			assigned[c] = true
			reps[c] = states[i]
		}
	}

	classOfMap := make(map[Process]int, len(states))
	for i, s := range states {
		classOfMap[s] = classOf[i]
	}

	table := &equivTable{root: root, model: model, classOf: classOfMap, reps: reps}
	headClass := classOfMap[Process(root)]
	return env.normalisedNode(table, reps[headClass])
}

func initialPartition(states []Process, model Model) []int {
	classOf := make([]int, len(states))
	var reps []Behaviour
	for i, s := range states {
		b := model.BehaviourOf(s)
		found := -1
		for c, rb := range reps {
			if rb.Equal(b) {
				found = c
				break
			}
		}
		if found == -1 {
			reps = append(reps, b)
			found = len(reps) - 1
		}
		classOf[i] = found
	}
	return classOf
}

// stateSignature encodes a state's current class together with, for
// every initial event it offers, the event and the current class of
// the state it leads to.  Two states get the same signature in a round
// only if they were already in the same class and agree on every
// successor's class — so signatures can only split classes, never
// merge across an earlier split, which is what makes the loop in
// Normalise converge to the coarsest stable partition.
func stateSignature(i int, states []Process, classOf []int, stateIndex map[Process]int) string {
	buf := make([]byte, 0, 32)
	buf = appendInt(buf, classOf[i])
	for _, a := range states[i].Initials().Sorted() {
		buf = append(buf, '|')
		buf = appendInt(buf, int(a))
		buf = append(buf, ':')
		succClass := -1
		if succs := states[i].Afters(a); len(succs) > 0 {
			if j, ok := stateIndex[succs[0]]; ok {
				succClass = classOf[j]
			}
		}
		buf = appendInt(buf, succClass)
	}
	return string(buf)
}

func regroup(sigs []string) []int {
	classOf := make([]int, len(sigs))
	ids := make(map[string]int)
	for i, s := range sigs {
		id, have := ids[s]
		if !have {
			id = len(ids)
			ids[s] = id
		}
		classOf[i] = id
	}
	return classOf
}

func intSlicesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
