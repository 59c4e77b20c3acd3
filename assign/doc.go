// Package assign implements first-fit spectrum assignment: pure functions
// over an *occupation.Manager's availability queries that recommend the
// lowest-id contiguous slot range for a single path, for two paths that may
// or may not share fibers, and for a sequence of bidirectional node
// adjacencies.
//
// None of these functions mutate the manager; callers allocate separately
// once they accept a proposed assignment, mirroring how the teacher's
// dijkstra package only ever reads a core.Graph to propose a path and
// leaves committing it to the caller.
package assign
