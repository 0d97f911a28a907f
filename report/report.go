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

// Package report renders an analysis result and an accompanying Markdown
// doc string into a single self-contained HTML page, the way
// tools/spec-html.go renders a machine spec's Doc plus its node table.
package report

import (
	"fmt"
	"html"
	"io"
	"strings"

	md "github.com/russross/blackfriday/v2"
)

// Kind identifies which CLI command produced a Result.
type Kind string

const (
	KindReachable  Kind = "reachable"
	KindTraces     Kind = "traces"
	KindRefinement Kind = "refinement"
)

// Result is the outcome of one analysis, independent of how it was
// rendered to the terminal by the CLI itself.
type Result struct {
	Kind    Kind
	Input   string
	Count   int
	Lines   []string // one printed process or trace per line
	Verdict string   // used only for KindRefinement: "refines" or "does not refine"
}

// Render writes a full HTML page to out: doc run through Markdown, then
// the Result's listing as a table.
func Render(out io.Writer, title, doc string, result Result) error {
	fmt.Fprintf(out, "<!DOCTYPE html>\n<meta charset=\"utf-8\">\n<html>\n<head><title>%s</title></head>\n<body>\n",
		html.EscapeString(title))
	fmt.Fprintf(out, "<h1>%s</h1>\n", html.EscapeString(title))

	if doc != "" {
		fmt.Fprintf(out, "<div class=\"doc\">%s</div>\n", md.Run([]byte(doc)))
	}

	fmt.Fprintf(out, "<div class=\"result\">\n")
	fmt.Fprintf(out, "<p><code>%s %s</code></p>\n", html.EscapeString(string(result.Kind)), html.EscapeString(result.Input))
	fmt.Fprintf(out, "<p>count: %d</p>\n", result.Count)
	if result.Kind == KindRefinement {
		fmt.Fprintf(out, "<p>verdict: %s</p>\n", html.EscapeString(result.Verdict))
	}
	if len(result.Lines) > 0 {
		fmt.Fprintf(out, "<table>\n")
		for _, line := range result.Lines {
			fmt.Fprintf(out, "  <tr><td><code>%s</code></td></tr>\n", html.EscapeString(line))
		}
		fmt.Fprintf(out, "</table>\n")
	}
	fmt.Fprintf(out, "</div>\n")

	fmt.Fprintf(out, "</body>\n</html>\n")
	return nil
}

// String renders result as a plain-text listing, independent of HTML:
// result.Lines joined with newlines.
func String(result Result) string {
	var b strings.Builder
	for i, line := range result.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	return b.String()
}
