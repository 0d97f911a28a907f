package csp

import "github.com/hstlab/cspkit/event"

// Prenormalised is the deterministic, τ-free subset-construction view of
// a process (spec.md §3.2, §4.6).  Its payload is always τ-closed; that
// invariant is enforced by Environment.Prenormalise, the only
// constructor.
type Prenormalised struct {
	base
	ps []Process // always τ-closed, deduped, sorted by construction index
}

func (p *Prenormalised) Tag() Tag { return TagPrenormalised }

// Initials returns the union of the members' initials, minus τ:
// prenormalised processes cannot perform τ (spec.md §4.6, testable
// property 2).
func (p *Prenormalised) Initials() event.Set {
	out := event.NewSet()
	for _, m := range p.ps {
		out = out.Union(m.Initials())
	}
	return out.WithoutTau()
}

// Afters returns ∅ for τ (property 2) and, for any visible event a, the
// single Prenormalised node for the τ-closure of the raw afters of every
// member (property 3: at most one successor per event).
func (p *Prenormalised) Afters(a event.Event) []Process {
	if a == event.Tau {
		return nil
	}
	var raw []Process
	for _, m := range p.ps {
		raw = append(raw, m.Afters(a)...)
	}
	if len(raw) == 0 {
		return nil
	}
	return []Process{p.base.env.Prenormalise(raw)}
}

func (p *Prenormalised) Subprocesses() []Process { return p.ps }

// Expand exposes the underlying non-deterministic representative set,
// as required by normalisation and by rendering (spec.md §4.6).
func (p *Prenormalised) Expand() []Process { return p.ps }
