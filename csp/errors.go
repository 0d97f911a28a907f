package csp

import "strconv"

// These errors report contract violations: programmer errors rather
// than malformed user input (see spec.md §7).  A well-formed script,
// fully parsed and closed, should never trigger any of these.

// ErrUnfilledReference occurs when a RecursiveRef's Initials, Afters, or
// Subprocesses is queried before its definition has been filled.
type ErrUnfilledReference struct {
	Scope int
	Name  string
}

func (e *ErrUnfilledReference) Error() string {
	return `recursive reference "` + e.Name + `" in scope ` + strconv.Itoa(e.Scope) + ` is unfilled`
}

// ErrAlreadyFilled occurs when Fill is called a second time on the same
// RecursiveRef.
type ErrAlreadyFilled struct {
	Scope int
	Name  string
}

func (e *ErrAlreadyFilled) Error() string {
	return `recursive reference "` + e.Name + `" in scope ` + strconv.Itoa(e.Scope) + ` is already filled`
}

// ErrDuplicateDefinition describes a let block that defines the same
// name twice. No function in this package returns it; the csp0 parser
// reports that condition as a csp0.ParseError.
type ErrDuplicateDefinition struct {
	Scope int
	Name  string
}

func (e *ErrDuplicateDefinition) Error() string {
	return `duplicate definition of "` + e.Name + `" in scope ` + strconv.Itoa(e.Scope)
}

// ErrUnfilledNames describes a let block in which some declared name was
// never given a definition (see Scope.Unfilled). No function in this
// package returns it; the csp0 parser reports that condition as a
// csp0.ParseError.
type ErrUnfilledNames struct {
	Scope int
	Names []string
}

func (e *ErrUnfilledNames) Error() string {
	msg := "scope " + strconv.Itoa(e.Scope) + " has unfilled names:"
	for i, n := range e.Names {
		if i > 0 {
			msg += ","
		}
		msg += " " + n
	}
	return msg
}

// ErrNoSuchClass occurs when Normalised.FindSubprocess is given a state
// that does not belong to any equivalence class the normaliser produced.
type ErrNoSuchClass struct{}

func (e *ErrNoSuchClass) Error() string {
	return "no equivalence class matches the given representative set"
}
