package csp

import "github.com/hstlab/cspkit/event"

// ExternalChoice offers the union of its members' initials; a visible
// event resolves the choice, discarding the siblings, while a τ
// advances exactly one member in place (spec.md §4.3).
type ExternalChoice struct {
	base
	ps []Process // set semantics: deduped, sorted by construction index
}

func (p *ExternalChoice) Tag() Tag { return TagExternalChoice }

func (p *ExternalChoice) Initials() event.Set {
	s := event.NewSet()
	for _, m := range p.ps {
		s = s.Union(m.Initials())
	}
	return s
}

func (p *ExternalChoice) Afters(a event.Event) []Process {
	if a == event.Tau {
		var out []Process
		for i, m := range p.ps {
			for _, m2 := range m.Afters(event.Tau) {
				out = append(out, p.base.env.ExternalChoice(replaceAt(p.ps, i, m2)))
			}
		}
		return out
	}
	var out []Process
	for _, m := range p.ps {
		out = append(out, m.Afters(a)...)
	}
	return out
}

func (p *ExternalChoice) Subprocesses() []Process { return p.ps }

// Members returns the deduped, index-sorted members of this choice.
func (p *ExternalChoice) Members() []Process { return p.ps }

func replaceAt(ps []Process, i int, replacement Process) []Process {
	out := make([]Process, len(ps))
	copy(out, ps)
	out[i] = replacement
	return out
}
