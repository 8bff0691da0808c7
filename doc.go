// Package forexample is a small example-driven testing framework: each
// example pairs a computation with the value it is expected to produce,
// described by a human-readable sentence.
//
// Examples are built with a fluent constructor and collected into an
// explicit Registry. Running a registry evaluates every example in
// registration order and aggregates the outcomes into a RunReport; a
// failing example never stops the examples after it.
//
// Examples can be declared in Go via Make/Returns, or loaded from
// declarative HCL suite files (see internal/hclsuite and cmd/cli).
package forexample
