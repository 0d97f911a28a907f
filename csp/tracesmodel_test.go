package csp

import (
	"testing"

	"github.com/hstlab/cspkit/event"
)

func TestTracesBehaviourOfHidesTau(t *testing.T) {
	env := NewEnvironment()
	a := env.Events().Intern("a")
	choice := env.InternalChoice([]Process{env.Prefix(a, env.Stop())})

	b := TracesModel{}.BehaviourOf(choice).(TracesBehaviour)
	if !b.Visible.Equal(event.NewSet()) {
		t.Fatalf("TracesBehaviour.Visible = %v, want empty; τ must not be visible", b.Visible)
	}
}

func TestTracesBehaviourEqualAndRefinedBy(t *testing.T) {
	env := NewEnvironment()
	a := env.Events().Intern("a")
	b := env.Events().Intern("b")

	wide := TracesModel{}.BehaviourOf(env.ExternalChoice([]Process{
		env.Prefix(a, env.Stop()), env.Prefix(b, env.Stop()),
	}))
	narrow := TracesModel{}.BehaviourOf(env.Prefix(a, env.Stop()))

	if wide.Equal(narrow) {
		t.Fatalf("{a,b} and {a} must not be Equal")
	}
	if !wide.RefinedBy(narrow) {
		t.Fatalf("{a} must be an admissible refinement of {a,b}")
	}
	if narrow.RefinedBy(wide) {
		t.Fatalf("{a,b} must not refine {a}")
	}
}

func TestBehaviourOfSetUnionsMembers(t *testing.T) {
	env := NewEnvironment()
	a := env.Events().Intern("a")
	b := env.Events().Intern("b")

	got := TracesModel{}.BehaviourOfSet([]Process{
		env.Prefix(a, env.Stop()),
		env.Prefix(b, env.Stop()),
	}).(TracesBehaviour)

	if !got.Visible.Equal(event.NewSet(a, b)) {
		t.Fatalf("BehaviourOfSet = %v, want {a,b}", got.Visible)
	}
}
