package propagation

// simpleCycles enumerates every simple directed cycle in g using Johnson's
// algorithm: for each vertex s (in a fixed order), search for cycles that
// pass through s and no vertex earlier than s, blocking and unblocking
// vertices along the way to avoid revisiting dead ends.
func simpleCycles(g *graph) [][]vertex {
	indexOf := make(map[vertex]int, len(g.order))
	for i, v := range g.order {
		indexOf[v] = i
	}

	var cycles [][]vertex

	for si, s := range g.order {
		blocked := make(map[vertex]bool)
		blockMap := make(map[vertex]map[vertex]bool)
		var stack []vertex

		var unblock func(u vertex)
		unblock = func(u vertex) {
			blocked[u] = false
			for w := range blockMap[u] {
				delete(blockMap[u], w)
				if blocked[w] {
					unblock(w)
				}
			}
		}

		var circuit func(v vertex) bool
		circuit = func(v vertex) bool {
			found := false
			stack = append(stack, v)
			blocked[v] = true

			for _, w := range g.adj[v] {
				if indexOf[w] < si {
					continue
				}
				if w == s {
					cyc := make([]vertex, len(stack))
					copy(cyc, stack)
					cycles = append(cycles, cyc)
					found = true
				} else if !blocked[w] {
					if circuit(w) {
						found = true
					}
				}
			}

			if found {
				unblock(v)
			} else {
				for _, w := range g.adj[v] {
					if indexOf[w] < si {
						continue
					}
					if blockMap[w] == nil {
						blockMap[w] = make(map[vertex]bool)
					}
					blockMap[w][v] = true
				}
			}

			stack = stack[:len(stack)-1]

			return found
		}

		circuit(s)
	}

	return cycles
}
