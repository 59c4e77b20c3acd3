// Package propagation analyses how an optical signal spreads through the
// switching fabric of the nodes a lightpath traverses, including the
// unintended spillover ("waste" signal) that filterless/broadcast
// architectures produce, and enumerates the lasing loops such spillover can
// create.
//
// The propagation graph is a small sparse structure — at most
// len(fibers)+2 vertices, the +2 being synthetic add/drop sentinels — so a
// direct, from-scratch implementation of Johnson's simple-cycle
// enumeration algorithm is used rather than reaching for a general-purpose
// graph library: the teacher's own dfs.DetectCycles only reports the cycles
// closed by back edges of one traversal and does not enumerate every simple
// cycle, which PropagationOf's Result.Cycles lists.
package propagation
