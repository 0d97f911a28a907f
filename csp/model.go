package csp

// Behaviour is a model-specific summary of a process's observable
// behaviour (spec.md §4.9).  Implementations must support equality
// (used by the normaliser's initial partition) and a refinement test
// (used by both the normaliser and the refinement checker).
type Behaviour interface {
	// Equal reports whether this Behaviour and other describe the same
	// observable behaviour under the model that produced them.
	Equal(other Behaviour) bool

	// RefinedBy reports whether other is an admissible refinement of
	// this Behaviour: every observation other can make, this Behaviour
	// also admits.
	RefinedBy(other Behaviour) bool
}

// Model is a semantic model: an abbreviation, a full name, and the
// functions needed to extract a Behaviour from a process or a set of
// processes (spec.md §4.9).  The normaliser and the refinement checker
// are both generic in Model; only TracesModel is provided here, but the
// interface is intentionally wide enough for stable-failures- and
// failures-divergences-style models that also need to inspect maximal
// refusals (spec.md §9 design notes).
type Model interface {
	// Abbrev is the model's short name, e.g. "T".
	Abbrev() string

	// Name is the model's full name, e.g. "traces".
	Name() string

	// BehaviourOf extracts p's Behaviour under this model.
	BehaviourOf(p Process) Behaviour

	// BehaviourOfSet extracts the Behaviour of a set of processes,
	// used by the normaliser's initial partition (spec.md §4.7 step 1).
	BehaviourOfSet(ps []Process) Behaviour
}
