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
	"io/ioutil"
	"strings"

	"github.com/hstlab/cspkit/config"
	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/csp0"
	"github.com/hstlab/cspkit/historydb"
	"github.com/hstlab/cspkit/modelscript"
)

func runModel(args []string, cfg config.Config, db *historydb.DB) error {
	fs := flag.NewFlagSet("model", flag.ContinueOnError)
	script := fs.String("script", "", "path to a JavaScript model file")
	specExpr := fs.String("spec", "", "specification expression")
	var implExpr string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		implExpr, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *script == "" {
		return fmt.Errorf("model: --script is required")
	}
	if implExpr == "" {
		if fs.NArg() != 1 {
			return fmt.Errorf("model: expected exactly one expression argument")
		}
		implExpr = fs.Arg(0)
	} else if fs.NArg() != 0 {
		return fmt.Errorf("model: expected exactly one expression argument")
	}

	src, err := ioutil.ReadFile(*script)
	if err != nil {
		return err
	}

	env := csp.NewEnvironment()
	m, err := modelscript.Load(env, string(src))
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}

	impl, err := csp0.Parse(env, implExpr)
	if err != nil {
		return fmt.Errorf("impl: %w", err)
	}

	if *specExpr == "" {
		fmt.Printf("loaded model %q (%s)\n", m.Name(), m.Abbrev())
		logInvocation(db, "model", implExpr, "loaded")
		return nil
	}

	spec, err := csp0.Parse(env, *specExpr)
	if err != nil {
		return fmt.Errorf("spec: %w", err)
	}

	specPN := env.Prenormalise([]csp.Process{spec})
	holds := csp.Refines(specPN, impl, m)
	input := *specExpr + " ⊑ " + implExpr
	if holds {
		fmt.Println("refines")
		logInvocation(db, "model", input, "refines")
		return nil
	}
	logInvocation(db, "model", input, "does not refine")
	return &verdictError{msg: "does not refine"}
}
