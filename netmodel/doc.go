// Package netmodel declares the external-collaborator contracts the OSM core
// depends on: Fiber, Node, Arch (optical switching architecture), Lightpath,
// and Network. The core never imports a concrete topology implementation;
// it only calls these interfaces, the same way lvlath's algorithm packages
// (bfs, dfs, dijkstra) only ever call core.Graph's exported methods and never
// reach into a concrete graph-storage backend.
//
// netmodel also defines the sentinel errors shared by every CORE package
// (slotindex, occupation, assign, propagation, regen), following the
// teacher's builder/errors.go convention: package-level sentinels, wrapped
// with %w and a package-name prefix at the call site, never stringified.
//
// A small, fully-concrete reference implementation lives in netmodel/toy; it
// is illustrative scaffolding for tests, examples, and the demo CLI, not
// part of the CORE contract.
package netmodel
