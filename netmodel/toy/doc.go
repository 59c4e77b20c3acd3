// Package toy is a minimal, fully-concrete implementation of the netmodel
// contracts (Fiber, Node, Arch, Lightpath, Network), used by this module's
// tests and the cmd/osmctl demo CLI.
//
// It is deliberately small — grounded on how the teacher's builder package
// assembles toy core.Graphs for its own tests (a thin Network builder with
// chainable Add* calls, deterministic IDs unless the caller asks for
// google/uuid-generated ones) — and is NOT part of the OSM CORE contract:
// the core only ever depends on the netmodel interfaces.
package toy
