package gridworld

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeAllFree(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 4}, {10, 10}}

	for _, size := range sizes {
		g, err := New(size[0], size[1], 1)
		require.NoError(t, err)

		w, h := g.Dims()
		require.Equal(t, size[0], w)
		require.Equal(t, size[1], h)

		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				c, err := g.At(x, y)
				require.NoError(t, err)
				assert.Equal(t, Free, c, "(%d, %d) in %v", x, y, size)
			}
		}
	}
}

func TestResizeDiscardsLayout(t *testing.T) {
	g, err := New(3, 3, 1)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 1, Mine))

	require.NoError(t, g.Resize(2, 2))
	assert.Equal(t, 4, g.Count(Free))
}

func TestInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {0, 0}} {
		_, err := New(size[0], size[1], 1)
		assert.True(t, errors.Is(err, ErrInvalidSize), "size %v: %v", size, err)
	}

	g, err := New(2, 2, 1)
	require.NoError(t, err)
	err = g.Resize(0, 3)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	// A failed resize keeps the old layout
	w, h := g.Dims()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
}

func TestOutOfBounds(t *testing.T) {
	g, err := New(3, 2, 1)
	require.NoError(t, err)

	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {5, 5}}
	for _, c := range coords {
		_, err := g.At(c[0], c[1])
		assert.True(t, errors.Is(err, ErrOutOfBounds), "at %v", c)

		err = g.Set(c[0], c[1], Wall)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "set %v", c)
	}
}

func TestSetAndAt(t *testing.T) {
	g, err := New(4, 3, 1)
	require.NoError(t, err)

	require.NoError(t, g.Set(3, 2, Finish))
	require.NoError(t, g.Set(1, 0, Wall))
	require.NoError(t, g.Set(0, 2, Mine))

	c, _ := g.At(3, 2)
	assert.Equal(t, Finish, c)
	c, _ = g.At(1, 0)
	assert.Equal(t, Wall, c)
	c, _ = g.At(0, 2)
	assert.Equal(t, Mine, c)

	assert.Equal(t, "*..F\n....\n.#..", g.String())
}

func TestGenerateCounts(t *testing.T) {
	cases := []struct {
		w, h, walls, mines int
	}{
		{5, 5, 3, 4},
		{10, 10, 5, 5},
		{2, 2, 10, 10},
		{1, 1, 0, 3},
		{3, 3, 0, 0},
		{4, 4, 16, 1},
	}

	for _, c := range cases {
		g, err := New(c.w, c.h, 42)
		require.NoError(t, err)

		g.Generate(c.walls, c.mines)

		walls, mines := g.Count(Wall), g.Count(Mine)
		size := c.w * c.h
		assert.LessOrEqual(t, walls+mines, c.walls+c.mines)
		assert.LessOrEqual(t, walls+mines, size)

		// Placement is best-effort but must fill what it can
		expectWalls := min(c.walls, size)
		expectMines := min(c.mines, size-expectWalls)
		assert.Equal(t, expectWalls, walls, "%+v", c)
		assert.Equal(t, expectMines, mines, "%+v", c)
	}
}

func TestGenerateClears(t *testing.T) {
	g, err := New(3, 3, 7)
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 2, Finish))

	g.Generate(0, 0)
	assert.Equal(t, 9, g.Count(Free))
}

func TestGenerateDeterministic(t *testing.T) {
	g1, _ := New(8, 8, 99)
	g2, _ := New(8, 8, 99)
	g1.Generate(6, 6)
	g2.Generate(6, 6)

	assert.Equal(t, g1.String(), g2.String())
}

func TestCreateMap(t *testing.T) {
	g, err := CreateMap(1, 0, 3, 3, 5)
	require.NoError(t, err)

	w, h := g.Dims()
	assert.Equal(t, MinLayoutSize, w)
	assert.Equal(t, MinLayoutSize, h)

	for seed := uint64(0); seed < 20; seed++ {
		g, err := CreateMap(6, 4, 8, 8, seed)
		require.NoError(t, err)

		start, _ := g.At(0, 0)
		finish, _ := g.At(5, 3)
		assert.Equal(t, Free, start)
		assert.Equal(t, Finish, finish)
		assert.Equal(t, 1, g.Count(Finish))
	}
}

func TestCellRewards(t *testing.T) {
	assert.Equal(t, -0.04, Free.Reward())
	assert.Equal(t, -1.0, Mine.Reward())
	assert.Equal(t, -0.04, Wall.Reward())
	assert.Equal(t, 1.0, Finish.Reward())

	assert.True(t, Mine.Terminal())
	assert.True(t, Finish.Terminal())
	assert.False(t, Free.Terminal())
	assert.False(t, Wall.Terminal())
}
