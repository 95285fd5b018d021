package span

// CollectMode controls which spans a range query collects.
type CollectMode uint8

const (
	// CollectExact collects spans whose range equals the query range.
	CollectExact CollectMode = iota
	// CollectFlags collects spans sharing text with the query range and zero
	// length spans lying in it. Spans that only touch a boundary are collected
	// when the query is empty and the span's flags make the touching boundary
	// inclusive.
	CollectFlags
	// CollectIntersect collects every span intersecting the closed query
	// range, including spans that merely touch it.
	CollectIntersect
)

func (m CollectMode) String() string {
	switch m {
	case CollectExact:
		return "exact"
	case CollectFlags:
		return "flags"
	case CollectIntersect:
		return "intersect"
	default:
		return "unknown"
	}
}

// matches reports whether s is collected for the query [start, end).
func (m CollectMode) matches(s *Span, start, end int) bool {
	switch m {
	case CollectExact:
		return s.start == start && s.end == end
	case CollectIntersect:
		return s.start <= end && start <= s.end
	}

	if start == end {
		p := start
		switch {
		case s.start < p && p < s.end:
			return true
		case s.start == p && s.end == p:
			return true
		case s.end == p && s.flags.EndInclusive():
			return true
		case s.start == p && s.flags.StartInclusive():
			return true
		}
		return false
	}

	if s.start == s.end {
		return start <= s.start && s.start < end
	}
	return s.start < end && s.end > start
}
