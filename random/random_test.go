package random_test

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-utils/random"
)

// scripted replays a fixed list of floats, cycling when exhausted.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func script(vals ...float64) *scripted { return &scripted{vals: vals} }

// almostOne is the largest float64 below 1.
var almostOne = math.Nextafter(1, 0)

// ──────────────────────────────────────────────────────────────────────────────
// Element
// ──────────────────────────────────────────────────────────────────────────────

func TestElementFrom_PicksScaledIndex(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	got, err := random.ElementFrom(script(0.5), items)
	require.NoError(t, err)
	require.Equal(t, "c", got)

	got, err = random.ElementFrom(script(0), items)
	require.NoError(t, err)
	require.Equal(t, "a", got)

	got, err = random.ElementFrom(script(almostOne), items)
	require.NoError(t, err)
	require.Equal(t, "d", got)
}

func TestElement_Empty(t *testing.T) {
	got, err := random.Element([]int{})
	require.ErrorIs(t, err, random.ErrEmpty)
	require.Zero(t, got)

	_, err = random.Element[string](nil)
	require.ErrorIs(t, err, random.ErrEmpty)
}

func TestElement_DefaultSourceStaysInSlice(t *testing.T) {
	items := []int{3, 5, 7}
	for i := 0; i < 200; i++ {
		got, err := random.Element(items)
		require.NoError(t, err)
		require.Contains(t, items, got)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// IntRange
// ──────────────────────────────────────────────────────────────────────────────

func TestIntRange_Degenerate(t *testing.T) {
	for i := 0; i < 100; i++ {
		n, err := random.IntRange(5, 5)
		require.NoError(t, err)
		require.Equal(t, 5, n)
	}
}

func TestIntRange_Invalid(t *testing.T) {
	_, err := random.IntRange(10, 1)
	require.ErrorIs(t, err, random.ErrInvalidRange)
}

func TestIntRangeFrom_Bounds(t *testing.T) {
	n, err := random.IntRangeFrom(script(0), -3, 3)
	require.NoError(t, err)
	require.Equal(t, -3, n)

	n, err = random.IntRangeFrom(script(almostOne), -3, 3)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = random.IntRangeFrom(script(0.5), 0, 9)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestIntRangeFrom_FullIntRange(t *testing.T) {
	cases := []struct {
		f    float64
		want int
	}{
		{0, math.MinInt},
		{0.25, math.MinInt / 2},
		{0.5, 0},
		{0.75, math.MaxInt/2 + 1},
	}
	for _, c := range cases {
		n, err := random.IntRangeFrom(script(c.f), math.MinInt, math.MaxInt)
		require.NoError(t, err)
		require.Equal(t, c.want, n, "f=%v", c.f)
	}

	n, err := random.IntRangeFrom(script(almostOne), math.MinInt, math.MaxInt)
	require.NoError(t, err)
	require.Greater(t, n, math.MaxInt/2)
}

func TestIntRangeFrom_WideRangeIsBalanced(t *testing.T) {
	const draws = 10000
	r := random.NewSeeded(11)
	var negative int
	for i := 0; i < draws; i++ {
		n, err := random.IntRangeFrom(r, math.MinInt, math.MaxInt)
		require.NoError(t, err)
		if n < 0 {
			negative++
		}
	}
	require.InDelta(t, draws/2, negative, 400)

	// One past half the int range: the span no longer fits in an int.
	n, err := random.IntRangeFrom(script(almostOne), -1, math.MaxInt)
	require.NoError(t, err)
	require.Greater(t, n, math.MaxInt/2)
}

func TestIntRangeFrom_CoversRange(t *testing.T) {
	r := random.NewSeeded(7)
	seen := map[int]int{}
	for i := 0; i < 6000; i++ {
		n, err := random.IntRangeFrom(r, 1, 6)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 6)
		seen[n]++
	}
	require.Len(t, seen, 6)
}

// ──────────────────────────────────────────────────────────────────────────────
// Shuffle
// ──────────────────────────────────────────────────────────────────────────────

func TestShuffle_InPlaceSameSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out := random.Shuffle(items)
	require.Same(t, &items[0], &out[0])

	sorted := slices.Clone(out)
	slices.Sort(sorted)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, sorted)
}

func TestShuffle_EmptyAndNil(t *testing.T) {
	require.Empty(t, random.Shuffle([]int{}))
	require.Nil(t, random.Shuffle[int](nil))
	require.Equal(t, []int{9}, random.Shuffle([]int{9}))
}

func TestShuffleFrom_BackwardFisherYates(t *testing.T) {
	// j is always 0: swaps (3,0), (2,0), (1,0).
	got := random.ShuffleFrom(script(0), []int{1, 2, 3, 4})
	require.Equal(t, []int{2, 3, 4, 1}, got)

	// j is always i: nothing moves.
	got = random.ShuffleFrom(script(almostOne), []int{1, 2, 3, 4})
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestShuffleFrom_Uniform(t *testing.T) {
	const runs = 60000
	r := random.NewSeeded(2024)
	counts := map[string]int{}
	for i := 0; i < runs; i++ {
		p := random.ShuffleFrom(r, []int{1, 2, 3})
		counts[fmt.Sprint(p)]++
	}
	require.Len(t, counts, 6)
	for perm, n := range counts {
		require.InDelta(t, runs/6, n, 800, "permutation %s", perm)
	}
}

func TestShuffleString(t *testing.T) {
	in := "héllo, wörld"
	out := random.ShuffleString(in)
	require.Equal(t, "héllo, wörld", in)

	a, b := []rune(in), []rune(out)
	slices.Sort(a)
	slices.Sort(b)
	require.Equal(t, a, b)

	require.Equal(t, "", random.ShuffleString(""))
	require.Equal(t, "x", random.ShuffleString("x"))
}

func TestShuffleStringFrom_Deterministic(t *testing.T) {
	require.Equal(t, "bcda", random.ShuffleStringFrom(script(0), "abcd"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Sources
// ──────────────────────────────────────────────────────────────────────────────

func TestNewSeeded_Reproducible(t *testing.T) {
	a, b := random.NewSeeded(99), random.NewSeeded(99)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewKeyed_Reproducible(t *testing.T) {
	a, b := random.NewKeyed([]byte("fixture")), random.NewKeyed([]byte("fixture"))
	other := random.NewKeyed([]byte("other"))

	var same, diff int
	for i := 0; i < 50; i++ {
		x, y, z := a.Float64(), b.Float64(), other.Float64()
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
		if x == y {
			same++
		}
		if x != z {
			diff++
		}
	}
	require.Equal(t, 50, same)
	require.Greater(t, diff, 45)
}

func TestNewKeyed_DrivesHelpers(t *testing.T) {
	shuffle := func() []int {
		return random.ShuffleFrom(random.NewKeyed(nil), []int{1, 2, 3, 4, 5, 6})
	}
	require.Equal(t, shuffle(), shuffle())
}
