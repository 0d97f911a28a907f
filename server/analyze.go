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

// Package server runs the same reachable/traces/refine analyses the CLI
// offers, but as a long-running daemon reachable over MQTT and
// WebSocket, each request served on its own freshly built
// csp.Environment.
package server

import (
	"fmt"
	"strings"

	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/csp0"
	"github.com/hstlab/cspkit/event"
	"github.com/hstlab/cspkit/printer"
)

// Request is the JSON shape a client sends over either transport.
type Request struct {
	Expr     string `json:"expr"`
	Analysis string `json:"analysis"` // "reachable", "traces", or "refine"
	Spec     string `json:"spec,omitempty"`
}

// Response is the JSON shape sent back.
type Response struct {
	Count   int      `json:"count,omitempty"`
	Lines   []string `json:"lines,omitempty"`
	Verdict string   `json:"verdict,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Analyze runs req.Analysis against a fresh csp.Environment. The
// environment never outlives this call, so nothing persists between
// requests.
func Analyze(req Request) Response {
	env := csp.NewEnvironment()

	root, err := csp0.Parse(env, req.Expr)
	if err != nil {
		return Response{Error: err.Error()}
	}

	switch req.Analysis {
	case "reachable":
		states := csp.Reachable(root, nil)
		lines := make([]string, len(states))
		for i, s := range states {
			lines[i] = printer.Print(env, s)
		}
		return Response{Count: len(states), Lines: lines}

	case "traces":
		pn := env.Prenormalise([]csp.Process{root})
		traces := csp.MaximalFiniteTraces(pn)
		lines := make([]string, len(traces))
		for i, tr := range traces {
			lines[i] = formatTrace(env, tr)
		}
		return Response{Count: len(traces), Lines: lines}

	case "refine":
		if req.Spec == "" {
			return Response{Error: "refine analysis requires a spec expression"}
		}
		specRoot, err := csp0.Parse(env, req.Spec)
		if err != nil {
			return Response{Error: fmt.Sprintf("spec: %s", err)}
		}
		specPN := env.Prenormalise([]csp.Process{specRoot})
		holds := csp.TraceRefines(specPN, root)
		verdict := "refines"
		if !holds {
			verdict = "does not refine"
		}
		return Response{Verdict: verdict}

	default:
		return Response{Error: fmt.Sprintf("unknown analysis %q", req.Analysis)}
	}
}

func formatTrace(env *csp.Environment, tr []event.Event) string {
	names := make([]string, len(tr))
	for i, e := range tr {
		names[i] = env.Events().NameOf(e)
	}
	return strings.Join(names, " → ")
}
