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

// Package config reads the optional .csprc YAML file that supplies CLI
// defaults, the way tools/dot.go reaches for gopkg.in/yaml.v2 for a
// one-off piece of configuration rather than hand-rolling a parser.
package config

import (
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds CLI defaults. A missing .csprc yields Default(), and a
// field omitted from .csprc keeps its Default() value.
type Config struct {
	// DefaultModel names the abbreviation ("T") or script path of the
	// default semantic model. No CLI subcommand reads it.
	DefaultModel string `yaml:"default_model"`

	// MaxStates bounds the BFS traversal of the reachable, dot and
	// report subcommands; there is no command-line flag for it. Zero
	// means "use csp.Control's own zero-value meaning" (no bound).
	MaxStates int `yaml:"max_states"`

	// HistoryPath is the bbolt file historydb logs invocations to.
	HistoryPath string `yaml:"history_path"`

	// Format is the default CLI output format ("text" or "yaml").
	Format string `yaml:"format"`
}

// Default returns the Config a missing .csprc implies.
func Default() Config {
	return Config{
		DefaultModel: "T",
		HistoryPath:  ".csp-history.db",
		Format:       "text",
	}
}

// Load reads path and overlays it onto Default(). A missing file is not
// an error: it returns Default() unchanged, since .csprc is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
