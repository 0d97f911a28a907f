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

// Package testutil collects small fixture helpers shared by this
// repo's test files.
package testutil

import (
	"encoding/json"
	"fmt"
	"log"

	"gopkg.in/yaml.v2"
)

// JS renders its argument as JSON, or as a Go-syntax string if it
// can't be marshaled. Meant for t.Fatalf/t.Logf arguments, not for
// anything a test asserts equality against.
func JS(x interface{}) string {
	bs, err := json.Marshal(&x)
	if err != nil {
		log.Printf("warning: testutil.JS error %s for %#v", err, x)
		return fmt.Sprintf("%#v", x)
	}
	return string(bs)
}

// Dwimjs parses a string or []byte fixture as JSON; anything else is
// returned unchanged.
func Dwimjs(x interface{}) interface{} {
	switch vv := x.(type) {
	case []byte:
		return Dwimjs(string(vv))
	case string:
		var v interface{}
		if err := json.Unmarshal([]byte(vv), &v); err != nil {
			panic(err)
		}
		return v
	default:
		return x
	}
}

// Dwimyaml is Dwimjs's YAML counterpart, for .csprc-shaped fixtures.
func Dwimyaml(x interface{}) interface{} {
	switch vv := x.(type) {
	case []byte:
		return Dwimyaml(string(vv))
	case string:
		var v interface{}
		if err := yaml.Unmarshal([]byte(vv), &v); err != nil {
			panic(err)
		}
		return v
	default:
		return x
	}
}
