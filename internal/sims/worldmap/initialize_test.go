package worldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rng "worldgen/pkg/core"
)

// countingSource wraps a Source and records every bound it was asked for.
type countingSource struct {
	src    Source
	bounds []int
}

func (c *countingSource) IntN(n int) int {
	c.bounds = append(c.bounds, n)
	return c.src.IntN(n)
}

// scriptedSource replays fixed values, cycling when exhausted.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func TestInitializeInteriorMatchesFirstDraws(t *testing.T) {
	const seed = 2021
	g, err := Initialize(5, 5, 2, rng.NewRNG(seed))
	require.NoError(t, err)

	expect := rng.NewRNG(seed)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.IsBorder(x, y) {
				assert.Equalf(t, Ocean, g.At(x, y), "border cell (%d,%d)", x, y)
				continue
			}
			assert.Equalf(t, expect.IntN(2), g.At(x, y), "interior cell (%d,%d)", x, y)
		}
	}
}

func TestInitializeDrawCount(t *testing.T) {
	cases := []struct {
		w, h  int
		draws int
	}{
		{w: 5, h: 5, draws: 9},
		{w: 7, h: 4, draws: 10},
		{w: 2, h: 9, draws: 0},
		{w: 1, h: 1, draws: 0},
		{w: 3, h: 3, draws: 1},
	}
	for _, tc := range cases {
		src := &countingSource{src: rng.NewRNG(1)}
		g, err := Initialize(tc.w, tc.h, 4, src)
		require.NoError(t, err)
		assert.Lenf(t, src.bounds, tc.draws, "%dx%d", tc.w, tc.h)
		for _, b := range src.bounds {
			assert.Equal(t, 4, b)
		}
		assert.Len(t, g.Cells(), tc.w*tc.h)
	}
}

func TestInitializeSmallGridsAreAllOcean(t *testing.T) {
	g, err := Initialize(2, 6, 3, &scriptedSource{values: []int{2}})
	require.NoError(t, err)
	for _, v := range g.Cells() {
		assert.Equal(t, Ocean, v)
	}
}

func TestInitializeRejectsBadInput(t *testing.T) {
	_, err := Initialize(0, 4, 2, rng.NewRNG(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Initialize(4, -1, 2, rng.NewRNG(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	src := &countingSource{src: rng.NewRNG(1)}
	_, err = Initialize(4, 4, 0, src)
	assert.ErrorIs(t, err, ErrNoCategories)
	assert.Empty(t, src.bounds, "no draws may happen without categories")
}
