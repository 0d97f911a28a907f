/* Copyright 2024 the cspkit authors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package csp provides the CSP process term graph: a hash-consed,
// immutable, possibly-cyclic graph of process terms with on-demand
// initials/afters computation, recursion scopes, prenormalisation,
// bisimulation-based normalisation, and traces refinement checking.
//
// The term graph is single-threaded.  All processes produced by one
// Environment are owned by that Environment for its lifetime; there is
// no per-node reclamation, and using one Environment from more than one
// goroutine at a time is unsupported.
//
// Every process variant exposes three read-only queries: Initials,
// Afters, and Subprocesses.  These are total over well-formed process
// graphs; the only exception is a RecursiveRef whose definition has not
// yet been filled, which is a programmer error (see errors.go).
package csp
