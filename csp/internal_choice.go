package csp

import "github.com/hstlab/cspkit/event"

// InternalChoice offers only τ transitions to each of its members; the
// environment never gets to pick which one runs (spec.md §4.3).
type InternalChoice struct {
	base
	ps []Process // set semantics: deduped, sorted by construction index
}

func (p *InternalChoice) Tag() Tag            { return TagInternalChoice }
func (p *InternalChoice) Initials() event.Set { return event.NewSet(event.Tau) }

func (p *InternalChoice) Afters(a event.Event) []Process {
	if a != event.Tau {
		return nil
	}
	out := make([]Process, len(p.ps))
	copy(out, p.ps)
	return out
}

func (p *InternalChoice) Subprocesses() []Process { return p.ps }

// Members returns the deduped, index-sorted members of this choice.
func (p *InternalChoice) Members() []Process { return p.ps }
