package netmodel

import "errors"

// Sentinel errors shared by every CORE package. Callers branch with
// errors.Is; messages are never matched by string comparison.
var (
	// ErrCrossNetwork indicates an entity argument belongs to a network
	// different from the one a query or mutation is scoped to.
	ErrCrossNetwork = errors.New("netmodel: entities belong to different networks")

	// ErrEmptyFiberSet indicates an availability query received no fibers.
	ErrEmptyFiberSet = errors.New("netmodel: empty fiber set")

	// ErrRequiresBidirectional indicates a bidirectional-adjacency query
	// received a fiber without a defined bidirectional partner.
	ErrRequiresBidirectional = errors.New("netmodel: fiber is not bidirectional")

	// ErrDuplicateFiberOption indicates the same fiber, or its bidirectional
	// pair, appears twice among the candidate options for a bidirectional
	// adjacency call.
	ErrDuplicateFiberOption = errors.New("netmodel: duplicate fiber among adjacency options")

	// ErrEmptyPath indicates propagation analysis received an empty link list.
	ErrEmptyPath = errors.New("netmodel: empty propagation path")

	// ErrSignalNotReachingDrop indicates the propagation graph never connects
	// the synthetic add fiber to the synthetic drop fiber.
	ErrSignalNotReachingDrop = errors.New("netmodel: signal does not reach drop")

	// ErrFiberTooLong indicates a single fiber exceeds the maximum
	// unregenerated distance passed to RegenerationPoints.
	ErrFiberTooLong = errors.New("netmodel: fiber exceeds max regeneration distance")
)
