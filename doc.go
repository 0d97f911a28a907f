// Command csp and its supporting packages analyse CSP₀ process
// expressions: computing the labelled transition system a process
// induces, enumerating reachable behaviour and maximal finite traces,
// and deciding traces refinement between a specification and an
// implementation.
//
// The core algorithms live in package csp; the surface grammar parser
// is package csp0; cmd/csp is the command-line entry point.
package cspkit
