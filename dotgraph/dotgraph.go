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

// Package dotgraph renders a process's reachable state graph as
// Graphviz DOT, for feeding to "dot -Tpng" the way the teacher's own
// tools/dot.go command does for machine specs.
package dotgraph

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/printer"
)

// Write emits a Graphviz "digraph" of every process reachable from root
// (spec.md §4.5's BFS utility), one node per state and one labelled
// edge per Afters transition. ctrl bounds the traversal the same way it
// bounds Reachable itself; a caller rendering untrusted input should set
// MaxStates.
func Write(w io.Writer, env *csp.Environment, root csp.Process, ctrl *csp.Control) error {
	states := csp.Reachable(root, ctrl)

	if _, err := fmt.Fprintf(w, "digraph G {\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  graph [rankdir=LR]\n  node [shape=\"box\" style=\"rounded\"]\n"); err != nil {
		return err
	}

	for _, s := range states {
		label := printer.Print(env, s)
		fillcolor := "#99ddc8"
		if len(s.Initials()) == 0 {
			fillcolor = "#f98b8b"
		}
		if _, err := fmt.Fprintf(w, "  %s [label=%q, style=\"filled,rounded\", fillcolor=\"%s\"]\n",
			nodeID(s), label, fillcolor); err != nil {
			return err
		}
	}

	for _, s := range states {
		for _, a := range s.Initials().Sorted() {
			for _, nxt := range s.Afters(a) {
				if _, err := fmt.Fprintf(w, "  %s -> %s [label=%q]\n",
					nodeID(s), nodeID(nxt), env.Events().NameOf(a)); err != nil {
					return err
				}
			}
		}
	}

	_, err := fmt.Fprintf(w, "}\n")
	return err
}

func nodeID(p csp.Process) string {
	return "n" + strconv.Itoa(p.Index())
}
