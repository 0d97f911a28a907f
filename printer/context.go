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

// Package printer renders csp.Process terms back to CSP₀ surface syntax
// (spec.md §6.3), deterministically and in a form the csp0 reader can
// parse back in.
package printer

import "github.com/hstlab/cspkit/csp"

// Context tracks the printer's position inside a recursive-reference
// enumeration. It is threaded explicitly through every recursive render
// call rather than held in a package-global or goroutine-local (spec.md
// §9's design note on avoiding thread-local printer state), so a single
// Environment can safely back concurrent Print calls from different
// goroutines as long as each call uses its own Context.
//
// activeScope is scoped correctly for free: Context is passed by value,
// so a caller's activeScope is restored automatically when a nested call
// returns. printed is shared across every copy derived from the same
// root Context on purpose — it is the single Print call's memory of
// which "let … within" blocks have already been fully written out.
type Context struct {
	activeScope int
	printed     map[int]bool
}

func newContext() Context {
	return Context{activeScope: -1, printed: make(map[int]bool)}
}

func (c Context) enumerating(scopeID int) Context {
	c.activeScope = scopeID
	return c
}

func (c Context) isActive(scopeID int) bool {
	return c.activeScope == scopeID
}

func (c Context) hasPrinted(scopeID int) bool {
	return c.printed[scopeID]
}

func (c Context) markPrinted(scopeID int) {
	c.printed[scopeID] = true
}

// precedence levels, loosest to tightest (spec.md §6.1, §6.3). A child
// is parenthesised when its own precedence is lower (looser) than the
// minimum its parent requires.
const (
	precInterleave = iota
	precInternalChoice
	precExternalChoice
	precSequential
	precPrefix
	precPrimary
)

func precedenceOf(p csp.Process) int {
	switch p.Tag() {
	case csp.TagInterleave:
		return precInterleave
	case csp.TagInternalChoice:
		return precInternalChoice
	case csp.TagExternalChoice:
		return precExternalChoice
	case csp.TagSequential:
		return precSequential
	case csp.TagPrefix:
		return precPrefix
	default:
		return precPrimary
	}
}
