package span

import (
	"fmt"
	"testing"
)

func TestOnInsert(t *testing.T) {
	cases := []struct {
		desc       string
		start, end int
		flags      Flags
		pos, n     int
		want       [2]int
	}{
		{"insert before span", 5, 10, ExclusiveExclusive, 2, 3, [2]int{8, 13}},
		{"insert after span", 5, 10, ExclusiveExclusive, 12, 3, [2]int{5, 10}},
		{"insert inside span", 5, 10, ExclusiveExclusive, 7, 3, [2]int{5, 13}},
		{"insert at exclusive start", 5, 10, ExclusiveExclusive, 5, 3, [2]int{8, 13}},
		{"insert at inclusive start", 5, 10, InclusiveExclusive, 5, 3, [2]int{5, 13}},
		{"insert at exclusive end", 5, 10, ExclusiveExclusive, 10, 3, [2]int{5, 10}},
		{"insert at inclusive end", 5, 10, ExclusiveInclusive, 10, 3, [2]int{5, 13}},
		{"grow empty inclusive span", 10, 10, InclusiveInclusive, 10, 2, [2]int{10, 12}},
		{"push empty exclusive span", 10, 10, ExclusiveExclusive, 10, 2, [2]int{12, 12}},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			r := NewRegistry(20)
			s := mustInsert(t, r, bullet, tc.start, tc.end, tc.flags)
			r.OnInsert(tc.pos, tc.n)

			if start, end := s.Range(); [2]int{start, end} != tc.want {
				t.Errorf("got [%d,%d), want %v", start, end, tc.want)
			}
			if r.Len() != 20+tc.n {
				t.Errorf("length not updated: %d", r.Len())
			}
			if got := r.Query(Bullet, tc.want[0], tc.want[1], CollectExact); len(got) != 1 {
				t.Errorf("span not found at its new range")
			}
		})
	}
}

func TestOnErase(t *testing.T) {
	r := NewRegistry(20)
	a := mustInsert(t, r, bullet, 0, 5, ExclusiveExclusive)
	b := mustInsert(t, r, bullet, 5, 10, ExclusiveExclusive)
	c := mustInsert(t, r, bullet, 10, 15, ExclusiveInclusive)
	d := mustInsert(t, r, bullet, 15, 20, ExclusiveInclusive)

	// Delete the line feed closing the first paragraph: both neighbours
	// now touch at offset 4.
	r.OnErase(4, 5)
	if got := fmt.Sprint(ranges([]*Span{a, b})); got != "[[0 4] [4 9]]" {
		t.Errorf("merge: got %s", got)
	}

	// Wipe the whole third span: exclusive spans vanish, others collapse.
	r.OnErase(9, 14)
	if b.Attached() != true || c.Attached() != true {
		t.Fatal("spans partially erased must survive")
	}
	if start, end := c.Range(); start != 9 || end != 9 {
		t.Errorf("inclusive span should collapse to [9,9), got [%d,%d)", start, end)
	}
	if start, end := d.Range(); start != 9 || end != 14 {
		t.Errorf("trailing span should shift, got [%d,%d)", start, end)
	}

	r.OnErase(0, 4)
	if a.Attached() {
		t.Error("exclusive span erased completely must be dropped")
	}
	if r.Count(Bullet) != 3 || r.Len() != 10 {
		t.Errorf("unexpected state: count=%d len=%d", r.Count(Bullet), r.Len())
	}
}
