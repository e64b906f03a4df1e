package walls

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveExtents(t *testing.T) {
	straight := New(0, 0, 2, 5, 0.1, Rotation0)
	assert.Equal(t, 2.0, straight.EffectiveWidth())
	assert.Equal(t, 0.1, straight.EffectiveDepth())

	turned := New(0, 0, 2, 5, 0.1, Rotation90)
	assert.Equal(t, turned.Depth, turned.EffectiveWidth())
	assert.Equal(t, turned.Width, turned.EffectiveDepth())
}

func TestRotation(t *testing.T) {
	assert.Equal(t, 0.0, Rotation0.Degrees())
	assert.Equal(t, 90.0, Rotation90.Degrees())
	assert.Equal(t, "90°", Rotation90.String())
	assert.True(t, Rotation90.Valid())
	assert.False(t, Rotation(2).Valid())
}

func TestOverlaps(t *testing.T) {
	a := New(0, 0, 2, 2, 0.1, Rotation0)

	// A turned wall crossing a through its middle
	assert.True(t, a.Overlaps(New(0, 0, 2, 2, 0.1, Rotation90)))

	// Side by side along X, touching at x=2
	assert.False(t, a.Overlaps(New(4, 0, 2, 2, 0.1, Rotation0)))

	// Parallel, 0.3 apart in Z
	assert.False(t, a.Overlaps(New(0, 0.3, 2, 2, 0.1, Rotation0)))

	// Turned and sitting right past a's end
	assert.False(t, a.Overlaps(New(2.2, 0, 2, 2, 0.1, Rotation90)))
}

func TestOverlapping(t *testing.T) {
	set := WallSet{
		New(0, 0, 2, 2, 0.1, Rotation0),
		New(10, 10, 2, 2, 0.1, Rotation0),
		New(0, 0, 2, 2, 0.1, Rotation90),
	}
	assert.Equal(t, [][2]int{{0, 2}}, set.Overlapping())
	assert.Empty(t, set[:2].Overlapping())
}

func TestFingerprint(t *testing.T) {
	set := WallSet{
		New(1, 2, 2, 5, 0.1, Rotation0),
		New(-3, 4, 2, 5, 0.1, Rotation90),
	}

	a, err := set.Fingerprint()
	require.NoError(t, err)

	b, err := set.Clone().Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	reordered := WallSet{set[1], set[0]}
	c, err := reordered.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestEncode(t *testing.T) {
	set := WallSet{New(1, 2, 2, 5, 0.1, Rotation90)}
	data, err := set.Encode()
	require.NoError(t, err)

	var decoded [][]interface{}
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Len(t, decoded[0], 7)
}
