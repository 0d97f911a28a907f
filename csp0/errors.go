package csp0

import "strconv"

// ParseError reports a single parse failure: a message and the byte
// offset into the source string where the failure was detected.
// Parsing stops at the first failure (spec.md §7): there is no
// partial-result reporting.
type ParseError struct {
	Msg    string
	Offset int
}

func (e *ParseError) Error() string {
	return "csp0: " + e.Msg + " at offset " + strconv.Itoa(e.Offset)
}
