package walls

import (
	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
)

// WallSet is the level geometry. It is built once by a generator and must
// not be modified while a session is running.
type WallSet []Wall

// Overlapping returns the index pairs of walls whose footprints intersect.
func (s WallSet) Overlapping() [][2]int {
	pairs := make([][2]int, 0)
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if s[i].Overlaps(s[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// Clone returns a copy that shares no memory with s.
func (s WallSet) Clone() WallSet {
	clone := make(WallSet, len(s))
	copy(clone, s)
	return clone
}

type encodedWall struct {
	_        struct{} `cbor:",toarray"`
	X, Y, Z  float64
	Width    float64
	Height   float64
	Depth    float64
	Rotation uint8
}

var encMode cbor.EncMode

func init() {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = mode
}

// Encode returns the canonical CBOR encoding of the set.
func (s WallSet) Encode() ([]byte, error) {
	encoded := make([]encodedWall, len(s))
	for i, wall := range s {
		encoded[i] = encodedWall{
			X:        wall.X,
			Y:        wall.Y,
			Z:        wall.Z,
			Width:    wall.Width,
			Height:   wall.Height,
			Depth:    wall.Depth,
			Rotation: uint8(wall.Rotation),
		}
	}
	return encMode.Marshal(encoded)
}

// Fingerprint identifies a layout. Two sets with the same walls in the same
// order always share a fingerprint.
func (s WallSet) Fingerprint() (uint64, error) {
	data, err := s.Encode()
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}
