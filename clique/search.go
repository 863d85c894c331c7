package clique

// search is one branch-and-bound node. sofar is the current clique,
// active the candidates adjacent to all of it, target the residual
// weight sum still owed. The call owns active outright; sofar and
// target are mutated during descent and restored before return.
func (s *Searcher) search(sofar, active, target []int) error {
	s.stats.Calls++

	// Residual guard and zero-target termination. target is
	// non-negative on every reachable path, so a zero sum means the
	// zero vector and sofar itself is the candidate solution.
	total := 0
	for _, k := range target {
		if k < 0 {
			return nil
		}
		total += k
	}
	if total == 0 {
		if s.opts.MaximalOnly && (len(active) > 0 || !s.maximal(sofar)) {
			// Any surviving active vertex extends sofar, and a seed may
			// leave sofar extendable elsewhere in the graph.
			return nil
		}

		return s.emit(sofar, nil)
	}

	// Per-coordinate residual budget over the active set.
	d := s.wt.Dim()
	nactive := make([]int, d)
	count := make([]int, d)
	active, equality, feasible := s.budget(active, target, nactive, count)
	if !feasible {
		return nil
	}
	if equality {
		// The survivors' weights sum to target exactly, so the only
		// possible solution is all of them at once.
		if !s.cliqueOn(active) {
			return nil
		}
		if s.opts.MaximalOnly && !s.maximal(sofar, active) {
			return nil
		}

		return s.emit(sofar, active)
	}

	// Branch shaping: pivot coordinate, candidate partition, ordering
	// and the colouring bound.
	dopos := pivot(count)
	end := s.partition(active, dopos)
	if target[dopos] > 1 {
		s.orderByDegree(active, end)
		var ok bool
		if end, ok = s.colourBound(active, end, dopos, target[dopos]); !ok {
			return nil
		}
	}

	// Branch on each candidate in order; restore sofar and target on
	// return, and retire the candidate from the residual budget.
	for i := 0; i < end; i++ {
		v := active[i]
		row := s.g.Row(v)
		ext := make([]int, 0, len(active)-i-1)
		for j := i + 1; j < len(active); j++ {
			if row[active[j]-1] != 0 {
				ext = append(ext, active[j])
			}
		}
		wv := s.wt.Weight(v)
		sup := s.wt.Support(v)
		for _, p := range sup {
			target[p] -= wv[p]
		}
		sofar = append(sofar, v)
		if err := s.search(sofar, ext, target); err != nil {
			return err
		}
		sofar = sofar[:len(sofar)-1]
		for _, p := range sup {
			target[p] += wv[p]
		}
		if s.opts.FirstOnly && s.found {
			return nil
		}
		// v no longer participates at this level; if what remains
		// cannot cover some coordinate, neither can any later branch.
		for _, p := range sup {
			nactive[p] -= wv[p]
			if nactive[p] < target[p] {
				return nil
			}
		}
	}

	return nil
}

// budget eliminates active vertices that overshoot target in any
// coordinate of their support, accumulates the survivors' coordinate
// sums (nactive) and carrier counts (count), and compacts the
// survivors in place preserving order. feasible is false when some
// target coordinate exceeds the survivors' total supply; equality is
// true when every coordinate matches it exactly.
func (s *Searcher) budget(active, target, nactive, count []int) (kept []int, equality, feasible bool) {
	for i, v := range active {
		wv := s.wt.Weight(v)
		sup := s.wt.Support(v)
		for _, p := range sup {
			if wv[p] > target[p] {
				active[i] = 0
				break
			}
		}
		if active[i] == 0 {
			continue
		}
		for _, p := range sup {
			nactive[p] += wv[p]
			count[p]++
		}
	}
	equality = true
	for j, k := range target {
		if k > nactive[j] {
			return nil, false, false
		}
		if k != nactive[j] {
			equality = false
		}
	}
	kept = active[:0]
	for _, v := range active {
		if v != 0 {
			kept = append(kept, v)
		}
	}

	return kept, equality, true
}

// cliqueOn reports whether the listed vertices are pairwise adjacent.
func (s *Searcher) cliqueOn(list []int) bool {
	for i := 0; i < len(list)-1; i++ {
		row := s.g.Row(list[i])
		for j := i + 1; j < len(list); j++ {
			if row[list[j]-1] == 0 {
				return false
			}
		}
	}

	return true
}

// pivot returns the coordinate with the fewest carriers among those
// with any carrier at all; ties go to the smallest index. The caller
// guarantees at least one positive count.
func pivot(count []int) int {
	dopos := -1
	for j, c := range count {
		if c > 0 && (dopos < 0 || c < count[dopos]) {
			dopos = j
		}
	}

	return dopos
}

// partition rearranges active so that its first end entries are the
// branch candidates, and returns end. With more than one coordinate,
// candidates are the carriers of the pivot coordinate. In the scalar
// maximal-only case the candidates are active[0] and the vertices not
// adjacent to it: a maximal clique avoiding active[0] must contain a
// non-neighbour, otherwise active[0] itself would extend it. The swap
// preserves relative order on neither side of end.
func (s *Searcher) partition(active []int, dopos int) int {
	end := len(active)
	switch {
	case s.wt.Dim() > 1:
		for i := 0; i < end; {
			if s.wt.Weight(active[i])[dopos] != 0 {
				i++
				continue
			}
			end--
			active[i], active[end] = active[end], active[i]
		}
	case s.opts.MaximalOnly && end > 0:
		row := s.g.Row(active[0])
		for i := 0; i < end; {
			if row[active[i]-1] == 0 {
				i++
				continue
			}
			end--
			active[i], active[end] = active[end], active[i]
		}
	}

	return end
}
