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

	"github.com/hstlab/cspkit/config"
	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/csp0"
	"github.com/hstlab/cspkit/historydb"
)

func runRefine(args []string, cfg config.Config, db *historydb.DB) error {
	fs := flag.NewFlagSet("refine", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "print the verdict even when it holds")
	format := fs.String("format", cfg.Format, "output format: text or yaml")
	specExpr := fs.String("spec", "", "specification expression")
	implExpr := fs.String("impl", "", "implementation expression")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *specExpr == "" || *implExpr == "" {
		return fmt.Errorf("refine: both --spec and --impl are required")
	}

	env := csp.NewEnvironment()
	spec, err := csp0.Parse(env, *specExpr)
	if err != nil {
		return fmt.Errorf("spec: %w", err)
	}
	impl, err := csp0.Parse(env, *implExpr)
	if err != nil {
		return fmt.Errorf("impl: %w", err)
	}

	specPN := env.Prenormalise([]csp.Process{spec})
	holds := csp.TraceRefines(specPN, impl)

	input := *specExpr + " ⊑ " + *implExpr
	if holds {
		if *verbose {
			if err := printListing(*format, listing{Verdict: "refines"}, true); err != nil {
				return err
			}
		}
		logInvocation(db, "refine", input, "refines")
		return nil
	}

	if err := printListing(*format, listing{Verdict: "does not refine"}, true); err != nil {
		return err
	}
	logInvocation(db, "refine", input, "does not refine")
	return &verdictError{msg: "does not refine"}
}
