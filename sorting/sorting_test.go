package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/sorting"
)

// item carries a sort key plus the original position, so stability checks can
// see where each element came from.
type item struct {
	Key int
	Pos int
}

func byKey(a, b item) int { return a.Key - b.Key }

// TestSorts_Table runs all three natural-order sorts over the same inputs.
func TestSorts_Table(t *testing.T) {
	sorts := map[string]func([]int) []int{
		"Bubble":    sorting.Bubble[int],
		"Selection": sorting.Selection[int],
		"Merge":     sorting.Merge[int],
	}
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{name: "empty", in: []int{}, want: []int{}},
		{name: "single", in: []int{7}, want: []int{7}},
		{name: "already sorted", in: []int{1, 2, 3, 4}, want: []int{1, 2, 3, 4}},
		{name: "reversed", in: []int{4, 3, 2, 1}, want: []int{1, 2, 3, 4}},
		{name: "duplicates", in: []int{5, 3, 3, 1}, want: []int{1, 3, 3, 5}},
		{name: "all equal", in: []int{2, 2, 2}, want: []int{2, 2, 2}},
		{name: "mixed signs", in: []int{0, -3, 8, -3, 5}, want: []int{-3, -3, 0, 5, 8}},
	}
	for name, sortFn := range sorts {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				in := slices.Clone(tc.in)
				got := sortFn(in)
				if diff := cmp.Diff(tc.want, got); diff != "" {
					t.Errorf("sorted output mismatch (-want +got):\n%s", diff)
				}
				assert.Equal(t, tc.in, in, "input slice must not be mutated")
			})
		}
	}
}

// TestSorts_PermutationProperty checks the no-loss/no-duplication invariant on
// random inputs against the stdlib sort as oracle.
func TestSorts_PermutationProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		in := make([]int, rng.Intn(200))
		for i := range in {
			in[i] = rng.Intn(50) // dense range forces duplicates
		}
		want := slices.Clone(in)
		slices.Sort(want)

		assert.Equal(t, want, sorting.Bubble(in))
		assert.Equal(t, want, sorting.Selection(in))
		assert.Equal(t, want, sorting.Merge(in))
	}
}

// TestMergeFunc_Stability pins the stable tie-break: equal keys keep their
// original relative order.
func TestMergeFunc_Stability(t *testing.T) {
	in := []item{{5, 0}, {3, 1}, {3, 2}, {1, 3}, {3, 4}}

	got, err := sorting.MergeFunc(in, byKey)
	require.NoError(t, err)

	want := []item{{1, 3}, {3, 1}, {3, 2}, {3, 4}, {5, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stability violated (-want +got):\n%s", diff)
	}
}

// TestBubbleFunc_Stability: bubble only swaps strict inversions, so it is
// stable by the same standard as merge.
func TestBubbleFunc_Stability(t *testing.T) {
	in := []item{{2, 0}, {1, 1}, {2, 2}, {1, 3}}

	got, err := sorting.BubbleFunc(in, byKey)
	require.NoError(t, err)

	want := []item{{1, 1}, {1, 3}, {2, 0}, {2, 2}}
	assert.Equal(t, want, got)
}

// TestSelectionFunc_SortsEqualKeys documents that selection sorts correctly
// even though it makes no stability promise.
func TestSelectionFunc_SortsEqualKeys(t *testing.T) {
	in := []item{{2, 0}, {1, 1}, {2, 2}, {1, 3}}

	got, err := sorting.SelectionFunc(in, byKey)
	require.NoError(t, err)

	keys := make([]int, len(got))
	for i, it := range got {
		keys[i] = it.Key
	}
	assert.Equal(t, []int{1, 1, 2, 2}, keys)
}

// TestFuncSorts_NilComparator verifies the fail-fast guard on every *Func form.
func TestFuncSorts_NilComparator(t *testing.T) {
	in := []int{3, 1, 2}

	_, err := sorting.BubbleFunc[int](in, nil)
	assert.ErrorIs(t, err, sorting.ErrNilComparator)

	_, err = sorting.SelectionFunc[int](in, nil)
	assert.ErrorIs(t, err, sorting.ErrNilComparator)

	_, err = sorting.MergeFunc[int](in, nil)
	assert.ErrorIs(t, err, sorting.ErrNilComparator)
}

// TestMergeFunc_CustomOrder sorts strings by length descending, ties stable.
func TestMergeFunc_CustomOrder(t *testing.T) {
	in := []string{"bb", "a", "dddd", "cc", "e"}

	got, err := sorting.MergeFunc(in, func(a, b string) int {
		return len(b) - len(a)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dddd", "bb", "cc", "a", "e"}, got)
}
