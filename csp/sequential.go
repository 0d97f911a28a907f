package csp

import "github.com/hstlab/cspkit/event"

// SequentialComposition behaves as P, with P's successful termination
// replaced by a silent handoff to Q (spec.md §4.3).  The composition
// itself never exposes ✔ — only Q, once control reaches it, can do that.
type SequentialComposition struct {
	base
	p Process
	q Process
}

func (s *SequentialComposition) Tag() Tag { return TagSequential }

func (s *SequentialComposition) Initials() event.Set {
	pi := s.p.Initials()
	out := event.NewSet()
	for _, a := range pi.Sorted() {
		if a != event.Tick {
			out.Add(a)
		}
	}
	if pi.Has(event.Tick) {
		out.Add(event.Tau)
	}
	return out
}

func (s *SequentialComposition) Afters(a event.Event) []Process {
	switch a {
	case event.Tick:
		return nil
	case event.Tau:
		var out []Process
		for _, p2 := range s.p.Afters(event.Tau) {
			out = append(out, s.base.env.SequentialComposition(p2, s.q))
		}
		if s.p.Initials().Has(event.Tick) {
			out = append(out, s.q)
		}
		return out
	default:
		var out []Process
		for _, p2 := range s.p.Afters(a) {
			out = append(out, s.base.env.SequentialComposition(p2, s.q))
		}
		return out
	}
}

func (s *SequentialComposition) Subprocesses() []Process { return []Process{s.p, s.q} }

// Left returns P in "P ; Q".
func (s *SequentialComposition) Left() Process { return s.p }

// Right returns Q in "P ; Q".
func (s *SequentialComposition) Right() Process { return s.q }
