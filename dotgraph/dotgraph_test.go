package dotgraph

import (
	"strings"
	"testing"

	"github.com/hstlab/cspkit/csp"
	"github.com/hstlab/cspkit/csp0"
)

func TestWriteEmitsOneNodePerReachableState(t *testing.T) {
	env := csp.NewEnvironment()
	root, err := csp0.Parse(env, "(a → STOP) □ (b → STOP ⊓ c → STOP)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf strings.Builder
	if err := Write(&buf, env, root, &csp.Control{MaxStates: 32}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "digraph G {\n") {
		t.Fatalf("output does not open with a digraph header: %q", out[:40])
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("output does not close the digraph")
	}

	reachable := csp.Reachable(root, &csp.Control{MaxStates: 32})
	for _, s := range reachable {
		if !strings.Contains(out, nodeID(s)+" [label=") {
			t.Fatalf("missing a node declaration for state index %d", s.Index())
		}
	}
}

func TestWriteLabelsDeadEndsDifferently(t *testing.T) {
	env := csp.NewEnvironment()
	root := env.Stop()

	var buf strings.Builder
	if err := Write(&buf, env, root, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "#f98b8b") {
		t.Fatalf("STOP, which has no initials, was not rendered with the dead-end fill colour")
	}
}
