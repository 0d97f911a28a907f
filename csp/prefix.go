package csp

import "github.com/hstlab/cspkit/event"

// Prefix is the process "a → P": it performs a once, then behaves as P.
type Prefix struct {
	base
	a event.Event
	p Process
}

func (p *Prefix) Tag() Tag            { return TagPrefix }
func (p *Prefix) Initials() event.Set { return event.NewSet(p.a) }

func (p *Prefix) Afters(a event.Event) []Process {
	if a != p.a {
		return nil
	}
	return []Process{p.p}
}

func (p *Prefix) Subprocesses() []Process { return []Process{p.p} }

// Event returns the prefixing event.
func (p *Prefix) Event() event.Event { return p.a }

// Target returns the process performed after the prefixing event.
func (p *Prefix) Target() Process { return p.p }
