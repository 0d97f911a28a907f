package csp

import "github.com/hstlab/cspkit/event"

// RecursiveRef is a named indirection inside a Scope, filled with its
// definition exactly once.  Two references are equal iff they share
// both scope id and name (spec.md §3.2, §4.4).
type RecursiveRef struct {
	base
	scope  int
	name   string
	def    Process
	filled bool
}

func (r *RecursiveRef) Tag() Tag { return TagRecursiveRef }

// Scope returns the id of the Scope that owns this reference.
func (r *RecursiveRef) Scope() int { return r.scope }

// Name returns the declared name of this reference.
func (r *RecursiveRef) Name() string { return r.name }

// Filled reports whether Fill has been called on this reference.
func (r *RecursiveRef) Filled() bool { return r.filled }

// Definition returns the process this reference was filled with. Used
// by the printer to render the body of a "let" binding; like every
// other read, it requires the reference to already be filled.
func (r *RecursiveRef) Definition() Process {
	r.mustBeFilled()
	return r.def
}

// Fill installs def as this reference's definition.  It may be called
// exactly once; a second call is a contract violation (spec.md §3.2,
// §5) and returns ErrAlreadyFilled rather than silently overwriting the
// first definition.
func (r *RecursiveRef) Fill(def Process) error {
	if r.filled {
		return &ErrAlreadyFilled{Scope: r.scope, Name: r.name}
	}
	r.def = def
	r.filled = true
	return nil
}

func (r *RecursiveRef) mustBeFilled() {
	if !r.filled {
		panic(&ErrUnfilledReference{Scope: r.scope, Name: r.name})
	}
}

func (r *RecursiveRef) Initials() event.Set {
	r.mustBeFilled()
	return r.def.Initials()
}

func (r *RecursiveRef) Afters(a event.Event) []Process {
	r.mustBeFilled()
	return r.def.Afters(a)
}

func (r *RecursiveRef) Subprocesses() []Process {
	r.mustBeFilled()
	return r.def.Subprocesses()
}

// Scope is a mutable binding environment for one let-block.  Names are
// resolved to stable RecursiveRef placeholders as soon as they are first
// mentioned, which is what allows forward and mutually-recursive
// references within the same let (spec.md §3.3, §4.4).
type Scope struct {
	id   int
	env  *Environment
	refs map[string]*RecursiveRef
	// declOrder preserves first-mention order, so Unfilled reports names
	// in a deterministic order.
	declOrder []string
}

// ID returns this scope's store-unique integer id.
func (s *Scope) ID() int { return s.id }

// Add returns the RecursiveRef for name in this scope, creating one on
// first mention and returning the same node on every subsequent call
// (spec.md §3.3).
func (s *Scope) Add(name string) *RecursiveRef {
	if r, have := s.refs[name]; have {
		return r
	}
	r := &RecursiveRef{
		base: base{env: s.env, index: s.env.nextIndex()},
		scope: s.id,
		name:  name,
	}
	s.refs[name] = r
	s.declOrder = append(s.declOrder, name)
	return r
}

// Unfilled returns the names, in first-mention order, whose
// RecursiveRef has not yet been given a definition.  A non-empty result
// means the enclosing let is malformed (spec.md §4.4 step 3).
func (s *Scope) Unfilled() []string {
	var out []string
	for _, name := range s.declOrder {
		if !s.refs[name].filled {
			out = append(out, name)
		}
	}
	return out
}
