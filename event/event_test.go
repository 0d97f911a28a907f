package event

import "testing"

func TestInternIsStable(t *testing.T) {
	tab := NewTable()
	a1 := tab.Intern("a")
	a2 := tab.Intern("a")
	if a1 != a2 {
		t.Fatalf("Intern(a) = %v, then %v; want equal", a1, a2)
	}
	b := tab.Intern("b")
	if a1 == b {
		t.Fatalf("Intern(a) and Intern(b) collided: %v", a1)
	}
}

func TestReservedEvents(t *testing.T) {
	tab := NewTable()
	if tab.NameOf(Tau) != tauName {
		t.Fatalf("NameOf(Tau) = %q", tab.NameOf(Tau))
	}
	if tab.NameOf(Tick) != tickName {
		t.Fatalf("NameOf(Tick) = %q", tab.NameOf(Tick))
	}
	if !IsTau(Tau) || IsTau(Tick) {
		t.Fatalf("IsTau broken")
	}
	if !IsTick(Tick) || IsTick(Tau) {
		t.Fatalf("IsTick broken")
	}
	if IsVisible(Tau) {
		t.Fatalf("Tau should not be visible")
	}
	if !IsVisible(Tick) {
		t.Fatalf("Tick should be visible")
	}
}

func TestLookupMissing(t *testing.T) {
	tab := NewTable()
	if _, have := tab.Lookup("nope"); have {
		t.Fatalf("Lookup found an event that was never interned")
	}
}

func TestSetOperations(t *testing.T) {
	tab := NewTable()
	a := tab.Intern("a")
	b := tab.Intern("b")
	c := tab.Intern("c")

	s1 := NewSet(a, b)
	s2 := NewSet(b, c)

	u := s1.Union(s2)
	if len(u) != 3 {
		t.Fatalf("Union has %d elements, want 3", len(u))
	}

	if !NewSet(a).Subset(s1) {
		t.Fatalf("{a} should be a subset of {a,b}")
	}
	if s1.Subset(NewSet(a)) {
		t.Fatalf("{a,b} should not be a subset of {a}")
	}

	withTau := NewSet(Tau, a)
	if withTau.WithoutTau().Has(Tau) {
		t.Fatalf("WithoutTau left Tau in the set")
	}

	if !s1.Equal(NewSet(b, a)) {
		t.Fatalf("Equal should ignore insertion order")
	}
}

func TestSortedIsDeterministic(t *testing.T) {
	tab := NewTable()
	c := tab.Intern("c")
	a := tab.Intern("a")
	b := tab.Intern("b")
	s := NewSet(c, a, b)
	sorted := s.Sorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] >= sorted[i] {
			t.Fatalf("Sorted() not ascending: %v", sorted)
		}
	}
}
