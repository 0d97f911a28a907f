package printer

import (
	"testing"

	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/csp0"
)

func TestPrintTerminals(t *testing.T) {
	env := csp.NewEnvironment()
	if got := Print(env, env.Stop()); got != "STOP" {
		t.Fatalf("Print(STOP) = %q", got)
	}
	if got := Print(env, env.Skip()); got != "SKIP" {
		t.Fatalf("Print(SKIP) = %q", got)
	}
}

func TestPrintPrefixAndSequential(t *testing.T) {
	env := csp.NewEnvironment()
	a := env.Events().Intern("a")
	p := env.Prefix(a, env.Skip())
	if got := Print(env, p); got != "a → SKIP" {
		t.Fatalf("Print(a→SKIP) = %q", got)
	}

	seq := env.SequentialComposition(p, env.Stop())
	if got := Print(env, seq); got != "a → SKIP ; STOP" {
		t.Fatalf("Print(a→SKIP ; STOP) = %q", got)
	}
}

func TestPrintTwoMemberChoiceIsInfix(t *testing.T) {
	env := csp.NewEnvironment()
	a := env.Events().Intern("a")
	b := env.Events().Intern("b")
	left := env.Prefix(a, env.Stop())
	right := env.Prefix(b, env.Stop())
	choice := env.ExternalChoice([]csp.Process{left, right})

	got := Print(env, choice)
	if got != "a → STOP □ b → STOP" {
		t.Fatalf("Print(external choice) = %q", got)
	}
}

func TestPrintThreeMemberChoiceIsReplicated(t *testing.T) {
	env := csp.NewEnvironment()
	a := env.Events().Intern("a")
	b := env.Events().Intern("b")
	c := env.Events().Intern("c")
	members := []csp.Process{
		env.Prefix(a, env.Stop()),
		env.Prefix(b, env.Stop()),
		env.Prefix(c, env.Stop()),
	}
	choice := env.ExternalChoice(members)

	got := Print(env, choice)
	want := "□ {a → STOP, b → STOP, c → STOP}"
	if got != want {
		t.Fatalf("Print(3-member external choice) = %q, want %q", got, want)
	}
}

func TestPrintEmptyReplicatedChoice(t *testing.T) {
	env := csp.NewEnvironment()
	choice := env.ExternalChoice(nil)
	if got := Print(env, choice); got != "□ {}" {
		t.Fatalf("Print(empty external choice) = %q", got)
	}
}

func TestPrintParenthesisesLooserLeftOperand(t *testing.T) {
	env := csp.NewEnvironment()
	a := env.Events().Intern("a")
	b := env.Events().Intern("b")
	inner := env.ExternalChoice([]csp.Process{
		env.Prefix(a, env.Stop()),
		env.Prefix(b, env.Stop()),
	})
	// prefix binds tighter than external choice, so the choice as the
	// target of a prefix needs parentheses to round-trip.
	outer := env.Prefix(env.Events().Intern("x"), inner)

	got := Print(env, outer)
	want := "x → (a → STOP □ b → STOP)"
	if got != want {
		t.Fatalf("Print(x → (choice)) = %q, want %q", got, want)
	}
}

func TestPrintSelfLoopRecursion(t *testing.T) {
	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, "let X = a → X within X")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := Print(env, root)
	want := "let X = a → X within X"
	if got != want {
		t.Fatalf("Print(self-loop) = %q, want %q", got, want)
	}
}

func TestPrintMutualRecursionListsBothSiblings(t *testing.T) {
	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, "let X = a → Y; Y = b → X within X")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := Print(env, root)
	want := "let X = a → Y; Y = b → X within X"
	if got != want {
		t.Fatalf("Print(mutual recursion) = %q, want %q", got, want)
	}
}

func TestPrintReferenceInsideOwnEnumerationIsBareName(t *testing.T) {
	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, "let X = a → Y; Y = b → X within X")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ref := root.(*csp.RecursiveRef)
	yRef := ref.Definition().(*csp.Prefix).Target().(*csp.RecursiveRef)
	yDef := yRef.Definition()

	// Y's own body, printed while the enumeration for this scope is
	// still open, must reference X by bare name, not "let … within".
	got := render(env, newContext().enumerating(ref.Scope()), yDef, precInterleave)
	want := "b → X"
	if got != want {
		t.Fatalf("render(Y inside open enumeration) = %q, want %q", got, want)
	}
}

func TestPrintRoundTripsThroughParser(t *testing.T) {
	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, "(a → STOP) □ (b → STOP ⊓ c → STOP)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	printed := Print(env, root)
	reparsed, err := csp0.Parse(env, printed)
	if err != nil {
		t.Fatalf("Parse(printed form %q): %v", printed, err)
	}
	if reparsed != root {
		t.Fatalf("round trip through %q did not return the original node", printed)
	}
}

func TestPrintRoundTripsMutualRecursion(t *testing.T) {
	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, "let X = a → Y; Y = b → X within X")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	printed := Print(env, root)
	reparsed, err := csp0.Parse(env, printed)
	if err != nil {
		t.Fatalf("Parse(printed form %q): %v", printed, err)
	}

	reachable := csp.Reachable(reparsed, &csp.Control{MaxStates: 16})
	if len(reachable) != 2 {
		t.Fatalf("Reachable(reparsed %q) has %d states, want 2", printed, len(reachable))
	}
}
