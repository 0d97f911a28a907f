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
	"github.com/hstlab/cspkit/dotgraph"
)

func runDot(args []string, cfg config.Config) error {
	var expr string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		expr = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("dot", flag.ContinueOnError)
	out := fs.String("o", "", "output .dot filename (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if expr == "" {
		if fs.NArg() != 1 {
			return fmt.Errorf("dot: expected exactly one expression argument")
		}
		expr = fs.Arg(0)
	} else if fs.NArg() != 0 {
		return fmt.Errorf("dot: expected exactly one expression argument")
	}

	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, expr)
	if err != nil {
		return err
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

	ctrl := &csp.Control{MaxStates: cfg.MaxStates}
	return dotgraph.Write(w, env, root, ctrl)
}
