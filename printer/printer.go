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

package printer

import (
	"strconv"
	"strings"

	"github.com/hstlab/cspkit/csp"
)

// Print renders p as a CSP₀ expression, sorted by construction index
// wherever a variant has set or bag semantics (spec.md §6.3).
func Print(env *csp.Environment, p csp.Process) string {
	return render(env, newContext(), p, precInterleave)
}

// render writes p at minPrec: the precedence level the caller requires
// of its child. p is wrapped in parentheses when its own precedence is
// looser than that.
func render(env *csp.Environment, ctx Context, p csp.Process, minPrec int) string {
	body := renderBody(env, ctx, p)
	if precedenceOf(p) < minPrec {
		return "(" + body + ")"
	}
	return body
}

func renderBody(env *csp.Environment, ctx Context, p csp.Process) string {
	switch p.Tag() {
	case csp.TagStop:
		return "STOP"

	case csp.TagSkip:
		return "SKIP"

	case csp.TagOmega:
		return "Ω"

	case csp.TagPrefix:
		pre := p.(*csp.Prefix)
		name := env.Events().NameOf(pre.Event())
		return name + " → " + render(env, ctx, pre.Target(), precPrefix)

	case csp.TagSequential:
		seq := p.(*csp.SequentialComposition)
		return render(env, ctx, seq.Left(), precSequential+1) + " ; " + render(env, ctx, seq.Right(), precSequential)

	case csp.TagExternalChoice:
		return renderChoice(env, ctx, p.(*csp.ExternalChoice).Members(), "□", precExternalChoice)

	case csp.TagInternalChoice:
		return renderChoice(env, ctx, p.(*csp.InternalChoice).Members(), "⊓", precInternalChoice)

	case csp.TagInterleave:
		return renderChoice(env, ctx, p.(*csp.Interleave).Members(), "⫴", precInterleave)

	case csp.TagPrenormalised:
		return renderReplicated(env, ctx, "prenormalize", p.(*csp.Prenormalised).Expand())

	case csp.TagNormalised:
		// Normalised has no surface syntax of its own (spec.md §6.1
		// names nothing for it): it denotes exactly what its head
		// Prenormalised state denotes, so that is what gets printed.
		return renderBody(env, ctx, p.(*csp.Normalised).Head())

	case csp.TagRecursiveRef:
		return renderRef(env, ctx, p.(*csp.RecursiveRef))

	default:
		return "?"
	}
}

// renderChoice picks infix notation for exactly two members (spec.md
// §6.3: "for two-child operators … infix rendering is used") and
// replicated-brace notation otherwise, including for 0 or 1 members.
func renderChoice(env *csp.Environment, ctx Context, members []csp.Process, glyph string, prec int) string {
	if len(members) == 2 {
		return render(env, ctx, members[0], prec+1) + " " + glyph + " " + render(env, ctx, members[1], prec)
	}
	return renderReplicated(env, ctx, glyph, members)
}

func renderReplicated(env *csp.Environment, ctx Context, glyph string, members []csp.Process) string {
	var b strings.Builder
	b.WriteString(glyph)
	b.WriteString(" {")
	for i, m := range members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(render(env, ctx, m, precInterleave))
	}
	b.WriteString("}")
	return b.String()
}

// renderRef implements spec.md §6.3's recursive-reference rule: the
// first time a scope is encountered, it is spelled out in full as
// "let … within name", enumerating every sibling RecursiveRef of the
// same scope syntactically reachable from this one (spec.md §6.1's
// syntactic BFS). A reference back to a sibling while that enumeration
// is still open prints as a bare name; a reference to a scope that was
// already fully enumerated earlier in this same Print call prints the
// "name@scope" form the parser also accepts, rather than repeating the
// whole "let" block.
func renderRef(env *csp.Environment, ctx Context, ref *csp.RecursiveRef) string {
	scopeID := ref.Scope()

	if ctx.isActive(scopeID) {
		return ref.Name()
	}
	if ctx.hasPrinted(scopeID) {
		return ref.Name() + "@" + strconv.Itoa(scopeID)
	}

	siblings := scopeSiblings(ref)
	ctx.markPrinted(scopeID)
	inner := ctx.enumerating(scopeID)

	var b strings.Builder
	b.WriteString("let ")
	for i, s := range siblings {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(s.Name())
		b.WriteString(" = ")
		b.WriteString(render(env, inner, s.Definition(), precInterleave))
	}
	b.WriteString(" within ")
	b.WriteString(ref.Name())
	return b.String()
}

// scopeSiblings finds every RecursiveRef of ref's own scope that is
// syntactically reachable from ref's definition, via the same BFS
// traversal used for printing the rest of the term graph (spec.md
// §4.5, §6.3). Reached order is deterministic because construction
// order is.
func scopeSiblings(ref *csp.RecursiveRef) []*csp.RecursiveRef {
	reached := csp.SyntacticReachable(ref, nil)
	var out []*csp.RecursiveRef
	seen := map[string]bool{}
	for _, p := range reached {
		if p.Tag() != csp.TagRecursiveRef {
			continue
		}
		r := p.(*csp.RecursiveRef)
		if r.Scope() != ref.Scope() {
			continue
		}
		if seen[r.Name()] {
			continue
		}
		seen[r.Name()] = true
		out = append(out, r)
	}
	return out
}
