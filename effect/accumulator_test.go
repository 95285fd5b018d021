package effect

import (
	"errors"
	"testing"

	"gioui.org/unit"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

// recordingStore logs the calls reaching the wrapped store.
type recordingStore struct {
	SpanStore
	ops []string
}

func (r *recordingStore) Insert(attr span.Attribute, start, end int, flags span.Flags) (*span.Span, error) {
	r.ops = append(r.ops, "insert")
	return r.SpanStore.Insert(attr, start, end, flags)
}

func (r *recordingStore) Remove(s *span.Span) error {
	r.ops = append(r.ops, "remove")
	return r.SpanStore.Remove(s)
}

func TestCommitRemovesBeforeInserting(t *testing.T) {
	reg := span.NewRegistry(10)
	old, err := reg.Insert(BulletSpan{}, 0, 10, span.InclusiveInclusive)
	require.NoError(t, err)

	p := paragraph.Paragraph{Start: 0, End: 10, First: true, Last: true}
	acc := NewAccumulator()
	acc.Add(BulletSpan{First: true, Last: true}, p)
	acc.Remove(old, p)

	store := &recordingStore{SpanStore: reg}
	stats, err := acc.Commit(store)
	require.NoError(t, err)
	require.Equal(t, []string{"remove", "insert"}, store.ops)
	require.Equal(t, Stats{Removed: 1, Inserted: 1}, stats)
	require.False(t, old.Attached())
	require.Equal(t, 1, reg.Count(span.Bullet))
	require.Zero(t, acc.Len())
}

func TestAccumulatorDeduplicates(t *testing.T) {
	reg := span.NewRegistry(10)
	shared, err := reg.Insert(BulletSpan{}, 0, 10, span.InclusiveInclusive)
	require.NoError(t, err)

	first := paragraph.Paragraph{Start: 0, End: 5, First: true}
	second := paragraph.Paragraph{Start: 5, End: 10, Last: true}

	acc := NewAccumulator()
	acc.Remove(shared, first)
	acc.Remove(shared, second)
	acc.Add(BulletSpan{}, first)
	acc.Add(BulletSpan{Empty: true}, first)
	acc.Add(BulletSpan{}, second)
	// other kinds over the same range are kept apart.
	acc.Add(IndentationSpan{Level: 1}, first)
	acc.Remove(nil, first)
	acc.Add(nil, first)
	require.Equal(t, 4, acc.Len())

	stats, err := acc.Commit(reg)
	require.NoError(t, err)
	require.Equal(t, Stats{Removed: 1, Inserted: 3}, stats)

	bullets := reg.All(span.Bullet)
	require.Len(t, bullets, 2)
	require.Equal(t, BulletSpan{}, bullets[0].Attribute())
	require.Equal(t, span.ExclusiveExclusive, bullets[0].Flags())
	require.Equal(t, span.ExclusiveInclusive, bullets[1].Flags())
}

func TestCommitAbortsOnStoreError(t *testing.T) {
	reg := span.NewRegistry(5)
	acc := NewAccumulator()
	acc.Add(BulletSpan{}, paragraph.Paragraph{Start: 0, End: 3, First: true})
	acc.Add(BulletSpan{}, paragraph.Paragraph{Start: 3, End: 10, Last: true})
	acc.Add(BulletSpan{}, paragraph.Paragraph{Start: 4, End: 5, Last: true})

	stats, err := acc.Commit(reg)
	require.Error(t, err)
	require.True(t, errors.Is(err, span.ErrInvalidRange))

	var rangeErr *span.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, 10, rangeErr.End)

	// the first insertion stays, the one after the failure never runs.
	require.Equal(t, Stats{Inserted: 1}, stats)
	require.Equal(t, 1, reg.Count(span.Bullet))
	require.Zero(t, acc.Len())
}

func TestRemovingDetachedSpan(t *testing.T) {
	reg := span.NewRegistry(4)
	s, err := reg.Insert(BulletSpan{}, 0, 4, span.InclusiveInclusive)
	require.NoError(t, err)
	require.NoError(t, reg.Remove(s))

	acc := NewAccumulator()
	acc.Remove(s, paragraph.Paragraph{Start: 0, End: 4, First: true, Last: true})
	stats, err := acc.Commit(reg)
	require.NoError(t, err)
	require.Zero(t, stats.Removed)
}

func TestParagraphFlags(t *testing.T) {
	cases := []struct {
		desc string
		para paragraph.Paragraph
		want span.Flags
	}{
		{"middle paragraph", paragraph.Paragraph{Start: 5, End: 10}, span.ExclusiveExclusive},
		{"first paragraph", paragraph.Paragraph{Start: 0, End: 5, First: true}, span.ExclusiveExclusive},
		{"last paragraph", paragraph.Paragraph{Start: 5, End: 10, Last: true}, span.ExclusiveInclusive},
		{"empty last paragraph", paragraph.Paragraph{Start: 10, End: 10, Last: true}, span.InclusiveInclusive},
		{"only paragraph", paragraph.Paragraph{Start: 0, End: 10, First: true, Last: true}, span.InclusiveInclusive},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.want, paragraphFlags(tc.para))
		})
	}
}

func TestLeadingMargin(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}
	require.Equal(t, fixed.I(48), BulletSpan{Margin: 24}.LeadingMargin(m))
	require.Equal(t, fixed.I(20), NumberSpan{Nr: 3, Margin: 10}.LeadingMargin(m))
	require.Equal(t, fixed.I(96), IndentationSpan{Level: 2, Step: 24}.LeadingMargin(m))
	require.Equal(t, fixed.I(0), IndentationSpan{Step: 24}.LeadingMargin(m))
}

// brokenBuffer reports paragraphs that do not partition its text.
type brokenBuffer struct {
	*span.Registry
	paras []paragraph.Paragraph
}

func (b *brokenBuffer) Paragraphs() []paragraph.Paragraph {
	return b.paras
}

func TestApplyRejectsInconsistentParagraphs(t *testing.T) {
	reg := span.NewRegistry(10)
	_, err := reg.Insert(BulletSpan{}, 0, 10, span.InclusiveInclusive)
	require.NoError(t, err)

	buf := &brokenBuffer{
		Registry: reg,
		paras: []paragraph.Paragraph{
			{Start: 0, End: 4, First: true},
			{Start: 6, End: 10, Last: true},
		},
	}

	on := true
	err = NewEffects().Bullet.Apply(buf, nil, &on)
	require.ErrorIs(t, err, paragraph.ErrInconsistentModel)

	spans := reg.All(span.Bullet)
	require.Len(t, spans, 1)
	start, end := spans[0].Range()
	require.Equal(t, [2]int{0, 10}, [2]int{start, end})
}

func TestSwitchState(t *testing.T) {
	on, off := true, false

	keep := &switchState{}
	require.True(t, keep.resolve(true, true))
	require.False(t, keep.resolve(false, true))

	enable := &switchState{value: &on}
	require.True(t, enable.resolve(false, true))
	require.False(t, enable.resolve(false, false))

	disable := &switchState{value: &off}
	require.False(t, disable.resolve(true, true))
	require.True(t, disable.resolve(true, false))

	toggle := &switchState{toggle: true}
	require.True(t, toggle.resolve(true, false))
	require.False(t, toggle.resolve(true, true))
	// later selected paragraphs follow the first one.
	require.False(t, toggle.resolve(false, true))
}
