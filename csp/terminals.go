package csp

import "github.com/hstlab/cspkit/event"

// Stop is the process that can never do anything.
type Stop struct{ base }

func (p *Stop) Tag() Tag                       { return TagStop }
func (p *Stop) Initials() event.Set            { return event.NewSet() }
func (p *Stop) Afters(a event.Event) []Process { return nil }
func (p *Stop) Subprocesses() []Process        { return nil }

// Omega is the terminated process.  It is distinct from Stop solely so
// that Interleave can recognise "every branch has terminated" (spec.md
// §3.2, §4.3).
type Omega struct{ base }

func (p *Omega) Tag() Tag                       { return TagOmega }
func (p *Omega) Initials() event.Set            { return event.NewSet() }
func (p *Omega) Afters(a event.Event) []Process { return nil }
func (p *Omega) Subprocesses() []Process        { return nil }

// Skip offers a single successful-termination transition to Omega.
type Skip struct {
	base
	omega *Omega
}

func (p *Skip) Tag() Tag            { return TagSkip }
func (p *Skip) Initials() event.Set { return event.NewSet(event.Tick) }

func (p *Skip) Afters(a event.Event) []Process {
	if a != event.Tick {
		return nil
	}
	return []Process{p.omega}
}

func (p *Skip) Subprocesses() []Process { return nil }
