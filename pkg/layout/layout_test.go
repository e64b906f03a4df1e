package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/epjengine/epj/pkg/collision"
	"github.com/epjengine/epj/pkg/geom"
	"github.com/epjengine/epj/pkg/walls"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws. Bool draws come from the same queue
// as Intn, where 0 means true.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return n - 1
	}
	value := s.ints[0]
	s.ints = s.ints[1:]
	return value
}

func (s *scriptedSource) Float64() float64 {
	value := s.floats[0]
	s.floats = s.floats[1:]
	return value
}

func (s *scriptedSource) Bool() bool {
	return s.Intn(2) == 0
}

var scatterConfig = Config{
	Policy: PolicyScatter,
	Wall:   WallSize{Width: 2, Height: 2, Depth: 0.1},
	Scatter: ScatterConfig{
		Count:       5,
		Extent:      20,
		MaxAttempts: 1000,
	},
}

var gridConfig = Config{
	Policy: PolicyGrid,
	Wall:   WallSize{Width: 2, Height: 5, Depth: 0.1},
	Grid: GridConfig{
		Size:     100,
		CellSize: 4,
	},
}

func TestScatterDeterministic(t *testing.T) {
	first, err := Generate(scatterConfig, NewSource(1234))
	require.NoError(t, err)
	require.Len(t, first, 5)

	for i := 0; i < 3; i++ {
		again, err := Generate(scatterConfig, NewSource(1234))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	assert.Empty(t, first.Overlapping())
}

func TestScatterNoOverlap(t *testing.T) {
	config := scatterConfig
	config.Scatter.Count = 60

	for seed := int64(1); seed <= 20; seed++ {
		set, err := Generate(config, NewSource(seed))
		require.NoError(t, err)
		require.Len(t, set, 60)

		for i := range set {
			for j := i + 1; j < len(set); j++ {
				assert.False(
					t,
					set[i].Overlaps(set[j]),
					"seed %d: %s overlaps %s", seed, set[i], set[j],
				)
			}
		}
	}
}

func TestScatterBounds(t *testing.T) {
	set, err := Generate(scatterConfig, NewSource(99))
	require.NoError(t, err)

	for _, wall := range set {
		assert.GreaterOrEqual(t, wall.X, -20.0)
		assert.Less(t, wall.X, 20.0)
		assert.GreaterOrEqual(t, wall.Z, -20.0)
		assert.Less(t, wall.Z, 20.0)
		assert.Equal(t, 0.0, wall.Y)
		assert.True(t, wall.Rotation.Valid())
	}
}

func TestScatterRejectsOverlap(t *testing.T) {
	// The second candidate lands on the first and must be redrawn.
	src := &scriptedSource{
		ints:   []int{0, 0, 1},
		floats: []float64{0.5, 0.5, 0.5, 0.5, 0.9, 0.9},
	}
	config := scatterConfig
	config.Scatter.Count = 2

	set, err := Generate(config, src)
	require.NoError(t, err)
	require.Len(t, set, 2)

	assert.Equal(t, walls.New(0, 0, 2, 2, 0.1, walls.Rotation0), set[0])
	assert.InDelta(t, 16, set[1].X, 1e-9)
	assert.InDelta(t, 16, set[1].Z, 1e-9)
	assert.Equal(t, walls.Rotation90, set[1].Rotation)
}

func TestScatterGivesUp(t *testing.T) {
	config := scatterConfig
	config.Scatter.Count = 500
	config.Scatter.Extent = 2
	config.Scatter.MaxAttempts = 50

	set, err := Generate(config, NewSource(7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.Less(t, len(set), 500)
	assert.Empty(t, set.Overlapping())
}

func TestScatterZeroCount(t *testing.T) {
	config := scatterConfig
	config.Scatter.Count = 0

	set, err := Generate(config, NewSource(1))
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestGridAlignment(t *testing.T) {
	set, err := Generate(gridConfig, NewSource(42))
	require.NoError(t, err)
	require.NotEmpty(t, set)

	nudge := 4.0/2 - 0.1/2
	for _, wall := range set {
		x, z := wall.X, wall.Z
		if wall.Rotation == walls.Rotation90 {
			x -= nudge
		} else {
			z -= nudge
		}

		assert.InDelta(t, math.Round(x/4), x/4, 1e-9, "%s", wall)
		assert.InDelta(t, math.Round(z/4), z/4, 1e-9, "%s", wall)
		assert.GreaterOrEqual(t, x, -200.0)
		assert.Less(t, x, 200.0)
		assert.GreaterOrEqual(t, z, -200.0)
		assert.Less(t, z, 200.0)
	}
}

func TestGridDeterministic(t *testing.T) {
	a, err := Generate(gridConfig, NewSource(5))
	require.NoError(t, err)
	b, err := Generate(gridConfig, NewSource(5))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Each cell gets a wall with probability ~0.28
	assert.Greater(t, len(a), 2000)
	assert.Less(t, len(a), 4500)
}

func TestGridTiers(t *testing.T) {
	grid := &Grid{
		Config: GridConfig{Size: 2, CellSize: 4},
		Wall:   WallSize{Width: 2, Height: 5, Depth: 0.1},
	}

	src := &scriptedSource{
		ints: []int{
			// (-1,-1): L tier hits, coin flip misses. No later tiers.
			0, 1,
			// (-1, 0): L tier hits, coin flip hits, rotation 0
			0, 0, 0,
			// (0, -1): L misses, C hits
			1, 0,
			// (0, 0): L misses, C misses, lone hits, rotation 90
			1, 1, 0, 1,
		},
	}

	set, err := grid.Generate(src)
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Empty(t, src.ints)

	nudge := grid.Nudge()
	assert.Equal(t, walls.New(-4, nudge, 2, 5, 0.1, walls.Rotation0), set[0])
	assert.Equal(t, walls.New(nudge, -4, 2, 5, 0.1, walls.Rotation90), set[1])
	assert.Equal(t, walls.New(nudge, 0, 2, 5, 0.1, walls.Rotation90), set[2])
}

func TestGridNeighboursMeet(t *testing.T) {
	grid := &Grid{
		Config: GridConfig{Size: 2, CellSize: 4},
		Wall:   WallSize{Width: 2, Height: 5, Depth: 0.1},
	}

	// Two turned walls in neighbouring cells along Z
	set, err := grid.Generate(&scriptedSource{ints: []int{
		1, 1, 1,
		1, 1, 1,
		1, 0,
		1, 0,
	}})
	require.NoError(t, err)
	require.Len(t, set, 2)

	upper := set[0].Z + set[0].EffectiveDepth()
	lower := set[1].Z - set[1].EffectiveDepth()
	assert.InDelta(t, upper, lower, 1e-9)
}

func TestFixed(t *testing.T) {
	a, err := Generate(Config{Policy: PolicyFixed}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, a)

	a[0].X = 1000

	b, err := Generate(Config{Policy: PolicyFixed}, NewSource(1))
	require.NoError(t, err)
	assert.NotEqual(t, a[0], b[0])

	assert.False(t, collision.IsBlocked(geom.NewVector(0, 0, 5), b))
}

func TestUnknownPolicy(t *testing.T) {
	_, err := Generate(Config{Policy: "maze"}, NewSource(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}
