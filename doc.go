// Package osmcore is an optical spectrum manager for WDM network planning:
// it tracks which optical slots are occupied on which fibers and add/drop
// modules, proposes first-fit spectrum assignments along a path, and
// analyzes how a lightpath's signal actually propagates through filterless
// switching fabric, including the wasted spectrum and lasing loops that
// broadcast/filterless architectures can create.
//
// The CORE lives in four packages:
//
//	slotindex/   — a generic per-resource occupied/idle slot index
//	occupation/  — the spectrum manager built on top of slotindex
//	assign/      — first-fit spectrum assignment over an occupation.Manager
//	propagation/ — signal-propagation and lasing-loop analysis
//
// netmodel/ defines the topology contract (Fiber, Node, Arch, Lightpath,
// Network) the core depends on as interfaces only; netmodel/toy is a small
// concrete implementation used by tests, examples and the CLI demo.
// routing/, topocheck/ and topogen/ are supporting layers — physical-path
// selection, fiber-plant connectivity/cycle checks, and synthetic-topology
// generation — built on top of the module's own graph, traversal and
// shortest-path primitives. cmd/osmctl is a thin demonstration CLI.
package osmcore
