package clique

// colourBound greedily colours candidates in reverse order and keeps,
// per colour, the largest pivot-coordinate weight seen. A clique meets
// each colour class at most once, so the running sum of those maxima
// bounds the pivot contribution of any clique drawn from the coloured
// suffix. Colouring halts as soon as the bound reaches need, shrinking
// the branch range to the position reached; if the full pass stays
// below need, ok is false and the node is dead.
//
// With a single weight coordinate the whole active set is coloured so
// the bound covers candidates parked past end by the partition; with
// more coordinates only the pivot carriers in active[:end] matter.
func (s *Searcher) colourBound(active []int, end, dopos, need int) (newEnd int, ok bool) {
	start := end
	if s.wt.Dim() == 1 {
		start = len(active)
	}
	cwsum := 0
	m := 0 // colours in use
	for i := start - 1; i >= 0; i-- {
		for c := 1; c <= m; c++ {
			s.adjcol[c] = false
		}
		row := s.g.Row(active[i])
		for j := i + 1; j < start; j++ {
			if row[active[j]-1] != 0 {
				s.adjcol[s.col[j]] = true
			}
		}
		// Prefer the allowed colour with the largest population; ties
		// go to the smallest colour. Open a new one only when every
		// existing colour is forbidden.
		best := 0
		for c := 1; c <= m; c++ {
			if !s.adjcol[c] && (best == 0 || s.cn[c] > s.cn[best]) {
				best = c
			}
		}
		if best == 0 {
			m++
			best = m
			s.cn[best] = 0
			s.cw[best] = 0
		}
		s.col[i] = best
		s.cn[best]++
		wt := s.wt.Weight(active[i])[dopos]
		if wt > s.cw[best] {
			cwsum += wt - s.cw[best]
			s.cw[best] = wt
		}
		if cwsum >= need {
			if i+1 < end {
				end = i + 1
			}
			break
		}
	}
	if cwsum < need {
		return end, false
	}

	return end, true
}
