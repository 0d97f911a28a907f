package csp

import (
	"testing"

	"github.com/hstlab/cspkit/event"
)

func TestStopHasNoInitials(t *testing.T) {
	env := NewEnvironment()
	if len(env.Stop().Initials()) != 0 {
		t.Fatalf("STOP.Initials() = %v, want empty", env.Stop().Initials())
	}
	if afters := env.Stop().Afters(event.Tau); afters != nil {
		t.Fatalf("STOP.Afters(τ) = %v, want nil", afters)
	}
}

func TestSkipTicksToOmega(t *testing.T) {
	env := NewEnvironment()
	skip := env.Skip()
	if !skip.Initials().Equal(event.NewSet(event.Tick)) {
		t.Fatalf("SKIP.Initials() = %v, want {✔}", skip.Initials())
	}
	afters := skip.Afters(event.Tick)
	if len(afters) != 1 || afters[0].Tag() != TagOmega {
		t.Fatalf("SKIP.Afters(✔) = %v, want [Ω]", afters)
	}
	if got := skip.Afters(event.Tau); got != nil {
		t.Fatalf("SKIP.Afters(τ) = %v, want nil", got)
	}
}

func TestOmegaIsDeadEnd(t *testing.T) {
	env := NewEnvironment()
	om := env.Omega()
	if len(om.Initials()) != 0 {
		t.Fatalf("Ω.Initials() = %v, want empty", om.Initials())
	}
}

func TestPrefixHashConsing(t *testing.T) {
	env := NewEnvironment()
	a := env.Events().Intern("a")

	p1 := env.Prefix(a, env.Stop())
	p2 := env.Prefix(a, env.Stop())
	if p1 != p2 {
		t.Fatalf("Prefix(a, STOP) constructed twice yielded distinct nodes")
	}
	if !p1.Initials().Equal(event.NewSet(a)) {
		t.Fatalf("Prefix.Initials() = %v, want {a}", p1.Initials())
	}
	afters := p1.Afters(a)
	if len(afters) != 1 || afters[0] != env.Stop() {
		t.Fatalf("Prefix.Afters(a) = %v, want [STOP]", afters)
	}
	if got := p1.Afters(env.Events().Intern("b")); got != nil {
		t.Fatalf("Prefix.Afters(b) = %v, want nil", got)
	}
}

func TestExternalChoiceIsOrderIndependent(t *testing.T) {
	env := NewEnvironment()
	a := env.Events().Intern("a")
	b := env.Events().Intern("b")

	pa := env.Prefix(a, env.Stop())
	pb := env.Prefix(b, env.Stop())

	c1 := env.ExternalChoice([]Process{pa, pb})
	c2 := env.ExternalChoice([]Process{pb, pa})
	if c1 != c2 {
		t.Fatalf("ExternalChoice is order-dependent: %v != %v", c1, c2)
	}

	choice := c1.(*ExternalChoice)
	if !choice.Initials().Equal(event.NewSet(a, b)) {
		t.Fatalf("ExternalChoice.Initials() = %v, want {a,b}", choice.Initials())
	}
	afters := choice.Afters(a)
	if len(afters) != 1 || afters[0] != env.Stop() {
		t.Fatalf("ExternalChoice.Afters(a) = %v, want [STOP]", afters)
	}
}

func TestExternalChoiceResolvesOnVisibleDiscardingSiblings(t *testing.T) {
	env := NewEnvironment()
	a := env.Events().Intern("a")
	b := env.Events().Intern("b")

	left := env.Prefix(a, env.Stop())
	right := env.Prefix(b, env.Skip())
	choice := env.ExternalChoice([]Process{left, right})

	afters := choice.Afters(a)
	if len(afters) != 1 || afters[0] != env.Stop() {
		t.Fatalf("choice after a = %v, want [STOP]; right branch must be discarded", afters)
	}
}

func TestInternalChoiceOnlyOffersTau(t *testing.T) {
	env := NewEnvironment()
	a := env.Events().Intern("a")
	left := env.Prefix(a, env.Stop())
	right := env.Skip()

	choice := env.InternalChoice([]Process{left, right})
	if !choice.Initials().Equal(event.NewSet(event.Tau)) {
		t.Fatalf("InternalChoice.Initials() = %v, want {τ}", choice.Initials())
	}
	if got := choice.Afters(a); got != nil {
		t.Fatalf("InternalChoice.Afters(a) = %v, want nil", got)
	}
	afters := choice.Afters(event.Tau)
	if len(afters) != 2 {
		t.Fatalf("InternalChoice.Afters(τ) = %v, want both members", afters)
	}
}

func TestInterleaveDegenerateAllStopTicks(t *testing.T) {
	env := NewEnvironment()
	il := env.Interleave([]Process{env.Stop(), env.Stop()})
	if !il.Initials().Equal(event.NewSet(event.Tick)) {
		t.Fatalf("Interleave([STOP,STOP]).Initials() = %v, want {✔}", il.Initials())
	}
	afters := il.Afters(event.Tick)
	if len(afters) != 1 || afters[0] != env.Stop() {
		t.Fatalf("Interleave([STOP,STOP]).Afters(✔) = %v, want [STOP]", afters)
	}
}

func TestInterleavePreservesDuplicates(t *testing.T) {
	env := NewEnvironment()
	a := env.Events().Intern("a")
	p := env.Prefix(a, env.Stop())

	il1 := env.Interleave([]Process{p, p})
	il2 := env.Interleave([]Process{p})
	if il1 == il2 {
		t.Fatalf("Interleave([p,p]) collapsed to Interleave([p]); bag semantics violated")
	}
	if got := len(il1.(*Interleave).Members()); got != 2 {
		t.Fatalf("Interleave([p,p]).Members() has %d elements, want 2", got)
	}
}

func TestSequentialCompositionHandsOffOnTick(t *testing.T) {
	env := NewEnvironment()
	b := env.Events().Intern("b")
	q := env.Prefix(b, env.Stop())
	seq := env.SequentialComposition(env.Skip(), q)

	if !seq.Initials().Equal(event.NewSet(event.Tau)) {
		t.Fatalf("(SKIP;Q).Initials() = %v, want {τ}", seq.Initials())
	}
	afters := seq.Afters(event.Tau)
	if len(afters) != 1 || afters[0] != q {
		t.Fatalf("(SKIP;Q).Afters(τ) = %v, want [Q]", afters)
	}
	if got := seq.Afters(event.Tick); got != nil {
		t.Fatalf("(SKIP;Q).Afters(✔) = %v, want nil; composition must not expose ✔", got)
	}
}

func TestSequentialCompositionPassesThroughVisibleEvents(t *testing.T) {
	env := NewEnvironment()
	a := env.Events().Intern("a")
	p := env.Prefix(a, env.Skip())
	seq := env.SequentialComposition(p, env.Stop())

	if !seq.Initials().Equal(event.NewSet(a)) {
		t.Fatalf("(a→SKIP;STOP).Initials() = %v, want {a}", seq.Initials())
	}
	afters := seq.Afters(a)
	if len(afters) != 1 {
		t.Fatalf("(a→SKIP;STOP).Afters(a) = %v, want one successor", afters)
	}
	next := afters[0].(*SequentialComposition)
	if next.Left() != env.Skip() || next.Right() != env.Stop() {
		t.Fatalf("(a→SKIP;STOP).Afters(a) = %v, want (SKIP;STOP)", afters)
	}
}
