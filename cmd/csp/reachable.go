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
	"time"

	"github.com/hstlab/cspkit/config"
	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/csp0"
	"github.com/hstlab/cspkit/historydb"
	"github.com/hstlab/cspkit/printer"
)

func runReachable(args []string, cfg config.Config, db *historydb.DB) error {
	fs := flag.NewFlagSet("reachable", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "print every reachable state")
	format := fs.String("format", cfg.Format, "output format: text or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("reachable: expected exactly one expression argument")
	}
	expr := fs.Arg(0)

	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, expr)
	if err != nil {
		logInvocation(db, "reachable", expr, "error: "+err.Error())
		return err
	}

	ctrl := &csp.Control{MaxStates: cfg.MaxStates}
	states := csp.Reachable(root, ctrl)

	lines := make([]string, len(states))
	for i, s := range states {
		lines[i] = printer.Print(env, s)
	}
	if err := printListing(*format, listing{Count: len(states), Lines: lines}, *verbose); err != nil {
		return err
	}

	logInvocation(db, "reachable", expr, strconv.Itoa(len(states)))
	return nil
}

func logInvocation(db *historydb.DB, command, input, verdict string) {
	if db == nil {
		return
	}
	if err := db.Log(time.Now(), command, input, verdict); err != nil {
		fmt.Printf("warning: failed to log invocation: %s\n", err)
	}
}
