package csp

import (
	"sort"
	"strconv"

	"github.com/hstlab/cspkit/event"
)

// Tag identifies a process's variant.  Code that needs to dispatch on
// variant (the printer, hash-consing, normalisation bookkeeping) should
// switch on Tag rather than on Go's own runtime type identity: per the
// design notes this keeps dispatch explicit and stable even if the
// concrete representation of a variant changes later.
type Tag int

const (
	TagStop Tag = iota
	TagSkip
	TagOmega
	TagPrefix
	TagExternalChoice
	TagInternalChoice
	TagInterleave
	TagSequential
	TagRecursiveRef
	TagPrenormalised
	TagNormalised
)

func (t Tag) String() string {
	switch t {
	case TagStop:
		return "STOP"
	case TagSkip:
		return "SKIP"
	case TagOmega:
		return "Ω"
	case TagPrefix:
		return "prefix"
	case TagExternalChoice:
		return "external-choice"
	case TagInternalChoice:
		return "internal-choice"
	case TagInterleave:
		return "interleave"
	case TagSequential:
		return "sequential-composition"
	case TagRecursiveRef:
		return "recursive-ref"
	case TagPrenormalised:
		return "prenormalised"
	case TagNormalised:
		return "normalised"
	default:
		return "unknown"
	}
}

// Process is a node in the CSP term graph.  All three methods are pure
// reads: a process's behaviour never changes after construction, with
// the single exception of a RecursiveRef's one-shot definition fill.
type Process interface {
	// Tag reports which variant this process is.
	Tag() Tag

	// Initials returns the events this process can perform immediately.
	Initials() event.Set

	// Afters returns the processes reachable by a single a-transition.
	// The returned slice may contain duplicates; callers that need a set
	// should dedupe by pointer identity (hash-consing guarantees that
	// structurally-equal results are pointer-equal).
	Afters(a event.Event) []Process

	// Subprocesses returns the syntactic children needed to print this
	// process.  This is not the same as Afters: it reflects the term's
	// written structure, not its semantic transitions.
	Subprocesses() []Process

	// Index returns the monotonically increasing construction index
	// assigned by the owning Environment.  Rendering sorts by this
	// index for reproducibility (spec.md §6.3, §9).
	Index() int
}

// base is embedded by every concrete process type.  It carries the
// bookkeeping common to all variants: which Environment owns this node,
// and the node's construction index.
type base struct {
	env   *Environment
	index int
}

func (b *base) Index() int { return b.index }

// dedupeByIndex removes duplicate processes from ps (by pointer
// identity, which hash-consing makes equivalent to structural equality)
// and returns the result sorted by construction index.  Used wherever a
// variant's payload has set semantics (ExternalChoice, InternalChoice,
// Prenormalised).
func dedupeByIndex(ps []Process) []Process {
	seen := make(map[Process]struct{}, len(ps))
	out := make([]Process, 0, len(ps))
	for _, p := range ps {
		if _, have := seen[p]; have {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}

// sortByIndexBag sorts ps by construction index but keeps duplicates,
// for variants with multiset semantics (Interleave).
func sortByIndexBag(ps []Process) []Process {
	out := make([]Process, len(ps))
	copy(out, ps)
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}

// indexKey builds a canonical map key from a slice of processes' sorted
// construction indices.  Used as the hash-consing key for set- and
// bag-valued payloads, where Go's lack of comparable slice types rules
// out using the slice itself as a map key.
func indexKey(ps []Process) string {
	buf := make([]byte, 0, 4*len(ps))
	for i, p := range ps {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(p.Index()), 10)
	}
	return string(buf)
}
