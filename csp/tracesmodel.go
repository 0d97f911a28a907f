package csp

import "github.com/hstlab/cspkit/event"

// TracesModel is the traces semantic model ("T"): a process's Behaviour
// is the set of its visible (non-τ) initials, and Spec refines to Impl
// iff Impl's visible initials are a subset of Spec's at every reachable
// pair of states (spec.md §4.9).
type TracesModel struct{}

func (TracesModel) Abbrev() string { return "T" }
func (TracesModel) Name() string   { return "traces" }

func (TracesModel) BehaviourOf(p Process) Behaviour {
	return TracesBehaviour{Visible: p.Initials().WithoutTau()}
}

func (TracesModel) BehaviourOfSet(ps []Process) Behaviour {
	out := event.NewSet()
	for _, p := range ps {
		out = out.Union(p.Initials())
	}
	return TracesBehaviour{Visible: out.WithoutTau()}
}

// TracesBehaviour is the Behaviour type for TracesModel: a set of
// visible events.
type TracesBehaviour struct {
	Visible event.Set
}

func (b TracesBehaviour) Equal(other Behaviour) bool {
	o, ok := other.(TracesBehaviour)
	return ok && b.Visible.Equal(o.Visible)
}

// RefinedBy reports whether other ⊆ b: anything the implementation
// offers immediately, the specification must also offer.
func (b TracesBehaviour) RefinedBy(other Behaviour) bool {
	o, ok := other.(TracesBehaviour)
	if !ok {
		return false
	}
	return o.Visible.Subset(b.Visible)
}
