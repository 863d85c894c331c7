package clique

// orderByDegree sorts active[:end] smallest-last: repeatedly select
// the candidate of least degree in the subgraph induced by the not yet
// placed suffix (degrees start against the whole active set), place
// it, and discount it from its later neighbours. High-degree vertices
// end up late, which is where the reverse-order colouring starts.
func (s *Searcher) orderByDegree(active []int, end int) {
	if end < 2 {
		return
	}
	deg := make([]int, end)
	for i := 0; i < end; i++ {
		row := s.g.Row(active[i])
		n := 0
		for _, u := range active {
			if row[u-1] != 0 {
				n++
			}
		}
		deg[i] = n
	}
	for i := 0; i < end; i++ {
		min := i
		for j := i + 1; j < end; j++ {
			if deg[j] < deg[min] {
				min = j
			}
		}
		active[i], active[min] = active[min], active[i]
		deg[i], deg[min] = deg[min], deg[i]
		row := s.g.Row(active[i])
		for j := i + 1; j < end; j++ {
			if row[active[j]-1] != 0 {
				deg[j]--
			}
		}
	}
}
