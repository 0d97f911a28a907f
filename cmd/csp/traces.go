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
	"strconv"
	"strings"

	"github.com/hstlab/cspkit/config"
	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/csp0"
	"github.com/hstlab/cspkit/historydb"
)

func runTraces(args []string, cfg config.Config, db *historydb.DB) error {
	fs := flag.NewFlagSet("traces", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "print every maximal trace")
	format := fs.String("format", cfg.Format, "output format: text or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("traces: expected exactly one expression argument")
	}
	expr := fs.Arg(0)

	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, expr)
	if err != nil {
		logInvocation(db, "traces", expr, "error: "+err.Error())
		return err
	}

	pn := env.Prenormalise([]csp.Process{root})
	traces := csp.MaximalFiniteTraces(pn)

	lines := make([]string, len(traces))
	for i, tr := range traces {
		names := make([]string, len(tr))
		for j, e := range tr {
			names[j] = env.Events().NameOf(e)
		}
		lines[i] = strings.Join(names, " → ")
	}
	if err := printListing(*format, listing{Count: len(traces), Lines: lines}, *verbose); err != nil {
		return err
	}

	logInvocation(db, "traces", expr, strconv.Itoa(len(traces)))
	return nil
}
