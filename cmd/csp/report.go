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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hstlab/cspkit/config"
	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/csp0"
	"github.com/hstlab/cspkit/printer"
	"github.com/hstlab/cspkit/report"
)

func runReport(args []string, cfg config.Config) error {
	var expr string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		expr = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	analysis := fs.String("analysis", "traces", "reachable, traces, or refinement")
	specExpr := fs.String("spec", "", "specification expression (for --analysis refinement)")
	doc := fs.String("doc", "", "Markdown notes to embed above the result listing")
	out := fs.String("o", "", "output .html filename (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if expr != "" && fs.NArg() != 0 {
		return fmt.Errorf("report: expected exactly one expression argument")
	}
	if expr == "" && fs.NArg() != 1 {
		return fmt.Errorf("report: expected exactly one expression argument")
	}
	if expr == "" {
		expr = fs.Arg(0)
	}

	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, expr)
	if err != nil {
		return err
	}

	result := report.Result{Input: expr}
	switch *analysis {
	case "reachable":
		result.Kind = report.KindReachable
		states := csp.Reachable(root, &csp.Control{MaxStates: cfg.MaxStates})
		result.Count = len(states)
		for _, s := range states {
			result.Lines = append(result.Lines, printer.Print(env, s))
		}

	case "traces":
		result.Kind = report.KindTraces
		pn := env.Prenormalise([]csp.Process{root})
		traces := csp.MaximalFiniteTraces(pn)
		result.Count = len(traces)
		for _, tr := range traces {
			var line string
			for i, e := range tr {
				if i > 0 {
					line += " → "
				}
				line += env.Events().NameOf(e)
			}
			result.Lines = append(result.Lines, line)
		}

	case "refinement":
		if *specExpr == "" {
			return fmt.Errorf("report: --analysis refinement requires --spec")
		}
		spec, err := csp0.Parse(env, *specExpr)
		if err != nil {
			return fmt.Errorf("spec: %w", err)
		}
		specPN := env.Prenormalise([]csp.Process{spec})
		result.Kind = report.KindRefinement
		result.Input = *specExpr + " ⊑ " + expr
		if csp.TraceRefines(specPN, root) {
			result.Verdict = "refines"
		} else {
			result.Verdict = "does not refine"
		}

	default:
		return fmt.Errorf("report: unknown analysis %q", *analysis)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return report.Render(w, expr, *doc, result)
}
