package server

import "testing"

func TestAnalyzeReachableCountsStates(t *testing.T) {
	resp := Analyze(Request{Expr: "(a → STOP) □ (b → STOP ⊓ c → STOP)", Analysis: "reachable"})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.Count != 4 {
		t.Fatalf("Count = %d, want 4", resp.Count)
	}
}

func TestAnalyzeTracesCountsMaximalTraces(t *testing.T) {
	resp := Analyze(Request{Expr: "(a → STOP) □ (b → STOP ⊓ c → STOP)", Analysis: "traces"})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.Count != 3 {
		t.Fatalf("Count = %d, want 3", resp.Count)
	}
}

func TestAnalyzeRefineRequiresSpec(t *testing.T) {
	resp := Analyze(Request{Expr: "STOP", Analysis: "refine"})
	if resp.Error == "" {
		t.Fatalf("expected an error when no spec expression is given")
	}
}

func TestAnalyzeRefineHoldsForASubsetImplementation(t *testing.T) {
	resp := Analyze(Request{
		Spec:     "a → STOP ⊓ b → STOP",
		Expr:     "STOP",
		Analysis: "refine",
	})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.Verdict != "refines" {
		t.Fatalf("Verdict = %q, want %q", resp.Verdict, "refines")
	}
}

func TestAnalyzeRejectsBadExpression(t *testing.T) {
	resp := Analyze(Request{Expr: "a →", Analysis: "reachable"})
	if resp.Error == "" {
		t.Fatalf("expected a parse error")
	}
}

func TestAnalyzeRejectsUnknownAnalysis(t *testing.T) {
	resp := Analyze(Request{Expr: "STOP", Analysis: "bogus"})
	if resp.Error == "" {
		t.Fatalf("expected an error for an unknown analysis kind")
	}
}
