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

// Command csp parses and analyses CSP₀ expressions: reachability,
// maximal traces, traces refinement, Graphviz export, HTML reports,
// and an MQTT/WebSocket analysis daemon.
package main

import (
	"fmt"
	"os"

	"github.com/hstlab/cspkit/config"
	"github.com/hstlab/cspkit/historydb"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(".csprc")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: reading .csprc: %s\n", err)
		os.Exit(2)
	}

	db, err := historydb.Open(cfg.HistoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening history log %q: %s\n", cfg.HistoryPath, err)
		os.Exit(2)
	}
	defer db.Close()

	var runErr error
	switch os.Args[1] {
	case "reachable":
		runErr = runReachable(os.Args[2:], cfg, db)
	case "traces":
		runErr = runTraces(os.Args[2:], cfg, db)
	case "refine":
		runErr = runRefine(os.Args[2:], cfg, db)
	case "dot":
		runErr = runDot(os.Args[2:], cfg)
	case "report":
		runErr = runReport(os.Args[2:], cfg)
	case "serve":
		runErr = runServe(os.Args[2:], cfg, db)
	case "model":
		runErr = runModel(os.Args[2:], cfg, db)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		if ve, is := runErr.(*verdictError); is {
			fmt.Fprintln(os.Stderr, ve.Error())
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", runErr)
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Subcommands:
  reachable [-v] <expr>
  traces [-v] <expr>
  refine [-v] --spec <expr> --impl <expr>
  dot <expr> -o out.dot
  report <expr> --analysis traces -o out.html
  serve --mqtt tcp://host:1883 --ws :8080 [--watch cronexpr --watch-spec <expr> --watch-impl <expr>]
  model <expr> --script model.js`)
}

// verdictError marks a well-formed analysis whose answer is simply
// "no" (refinement fails) rather than a usage or parse failure, so
// main can map it to exit code 1 instead of 2.
type verdictError struct {
	msg string
}

func (e *verdictError) Error() string { return e.msg }
