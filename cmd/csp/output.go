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
	"fmt"

	"github.com/jsccast/yaml"
)

// listing is the shape every analysis subcommand prints, in either
// text or --format yaml.
type listing struct {
	Count   int      `yaml:"count,omitempty"`
	Lines   []string `yaml:"lines,omitempty"`
	Verdict string   `yaml:"verdict,omitempty"`
}

// printListing writes l to stdout. format "yaml" marshals the whole
// struct with jsccast/yaml; anything else (including "text", the
// default) prints one line per entry the way spectool prints a bare
// count or list, with Lines shown only when verbose is set.
func printListing(format string, l listing, verbose bool) error {
	if format == "yaml" {
		bs, err := yaml.Marshal(&l)
		if err != nil {
			return err
		}
		fmt.Print(string(bs))
		return nil
	}

	if verbose {
		for _, line := range l.Lines {
			fmt.Println(line)
		}
	}
	if l.Verdict != "" {
		fmt.Println(l.Verdict)
		return nil
	}
	fmt.Println(l.Count)
	return nil
}
