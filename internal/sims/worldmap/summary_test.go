package worldmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	g := gridFromRows([][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 2, 0},
		{0, 0, 1, 0, 2, 0},
		{0, 3, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	})
	s := Summarize(g, 4)
	assert.Equal(t, []int{24, 3, 2, 1}, s.Counts)
	assert.Equal(t, []int{3, 2, 1}, s.Islands)
	assert.Equal(t, 6, s.LandCells())

	out := s.Format(TileCategorySet{{Name: "ocean"}, {Name: "plains"}})
	assert.True(t, strings.HasPrefix(out, "6x5, 6 land cells, 3 islands (largest 3)"), out)
	assert.Contains(t, out, "plains")
	assert.Contains(t, out, "#3")
}

func TestSummarizeIslandsSpanCategories(t *testing.T) {
	g := gridFromRows([][]int{
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 0, 0, 0},
	})
	assert.Equal(t, []int{2}, Summarize(g, 3).Islands)
}

func TestSummarizeGeneratedMap(t *testing.T) {
	g, err := Generate(512, 32, 32, 21, 5)
	require.NoError(t, err)
	s := Summarize(g, 5)
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	assert.Equal(t, 32*32, total)

	islandCells := 0
	for _, n := range s.Islands {
		islandCells += n
	}
	assert.Equal(t, s.LandCells(), islandCells)
}

func TestSummarizeNilGrid(t *testing.T) {
	s := Summarize(nil, 2)
	assert.Equal(t, []int{0, 0}, s.Counts)
	assert.Empty(t, s.Islands)
}
