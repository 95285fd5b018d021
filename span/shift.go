package span

// OnInsert moves spans after n runes were inserted at pos. Text inserted at a
// span boundary grows the span only if that boundary is inclusive.
func (r *Registry) OnInsert(pos, n int) {
	if n <= 0 {
		return
	}

	r.rebuild(func(s *Span) (int, int, bool) {
		start, end := s.start, s.end
		if start > pos || (start == pos && !s.flags.StartInclusive()) {
			start += n
		}
		if end > pos || (end == pos && s.flags.EndInclusive()) {
			end += n
		}
		// zero length span pushed by its exclusive start.
		end = max(start, end)
		return start, end, true
	})
	r.length += n
}

// OnErase moves spans after the runes in [start, end) were deleted. Spans
// squeezed to zero length are dropped when both their boundaries are
// exclusive.
func (r *Registry) OnErase(start, end int) {
	if start > end {
		start, end = end, start
	}
	start = max(start, 0)
	end = min(end, r.length)
	if start >= end {
		return
	}

	n := end - start
	mapOffset := func(x int) int {
		switch {
		case x <= start:
			return x
		case x >= end:
			return x - n
		default:
			return start
		}
	}

	r.rebuild(func(s *Span) (int, int, bool) {
		newStart, newEnd := mapOffset(s.start), mapOffset(s.end)
		if newStart == newEnd && s.start != s.end && s.flags == ExclusiveExclusive {
			return 0, 0, false
		}
		return newStart, newEnd, true
	})
	r.length -= n
}

// rebuild remaps every span with fn and rebuilds the trees. Spans for which
// fn returns false are detached.
func (r *Registry) rebuild(fn func(s *Span) (start, end int, keep bool)) {
	for kind := range r.trees {
		spans := r.All(kind)
		t := newSpanTree()
		count := 0
		for _, s := range spans {
			start, end, keep := fn(s)
			if !keep {
				s.owner = nil
				continue
			}
			s.start, s.end = start, end
			if err := t.Insert(start, end, s); err != nil {
				logger.Warn("dropping span after edit", "span", s, "error", err)
				s.owner = nil
				continue
			}
			count++
		}
		r.trees[kind] = t
		r.counts[kind] = count
	}
}
