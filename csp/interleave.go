package csp

import "github.com/hstlab/cspkit/event"

// Interleave runs its members independently and in parallel, with no
// synchronisation except that every member terminating collectively
// terminates the whole (spec.md §4.3).  Unlike ExternalChoice and
// InternalChoice, membership is a multiset: duplicates matter.
type Interleave struct {
	base
	ps []Process // bag semantics: sorted by construction index, duplicates kept
}

func (p *Interleave) Tag() Tag { return TagInterleave }

func ticks(p Process) bool {
	return p.Initials().Has(event.Tick)
}

func (p *Interleave) Initials() event.Set {
	out := event.NewSet()
	anyInitial := false
	anyTick := false
	for _, m := range p.ps {
		mi := m.Initials()
		if len(mi) > 0 {
			anyInitial = true
		}
		for _, a := range mi.Sorted() {
			if a == event.Tick {
				anyTick = true
				continue
			}
			out.Add(a)
		}
	}
	if anyTick {
		out.Add(event.Tau)
	}
	if len(p.ps) > 0 && !anyInitial {
		return event.NewSet(event.Tick)
	}
	return out
}

func (p *Interleave) Afters(a event.Event) []Process {
	switch a {
	case event.Tick:
		for _, m := range p.ps {
			if len(m.Initials()) > 0 {
				return nil
			}
		}
		if len(p.ps) == 0 {
			return nil
		}
		return []Process{p.base.env.Stop()}
	case event.Tau:
		var out []Process
		for i, m := range p.ps {
			for _, m2 := range m.Afters(event.Tau) {
				out = append(out, p.base.env.Interleave(replaceAt(p.ps, i, m2)))
			}
			if ticks(m) {
				out = append(out, p.base.env.Interleave(replaceAt(p.ps, i, p.base.env.Stop())))
			}
		}
		return out
	default:
		var out []Process
		for i, m := range p.ps {
			for _, m2 := range m.Afters(a) {
				out = append(out, p.base.env.Interleave(replaceAt(p.ps, i, m2)))
			}
		}
		return out
	}
}

func (p *Interleave) Subprocesses() []Process { return p.ps }

// Members returns the bag (with duplicates) of this interleaving's
// members, sorted by construction index.
func (p *Interleave) Members() []Process { return p.ps }
