package collision

import (
	"github.com/epjengine/epj/pkg/geom"
	"github.com/epjengine/epj/pkg/walls"

	opt "github.com/repeale/fp-go/option"
)

// Contains reports whether p lies strictly inside the box centered on the
// wall with its effective half-extents.
//
// The Y test compares the absolute height of p against the wall's own Y
// plus or minus its height, not a height above the ground. Every wall sits
// at Y=0, so this only holds for ground-level walls.
func Contains(wall walls.Wall, p geom.Vector) bool {
	ew := wall.EffectiveWidth()
	ed := wall.EffectiveDepth()

	insideX := p.X() > wall.X-ew && p.X() < wall.X+ew
	insideY := p.Y() > wall.Y-wall.Height && p.Y() < wall.Y+wall.Height
	insideZ := p.Z() > wall.Z-ed && p.Z() < wall.Z+ed

	return insideX && insideY && insideZ
}

// Blocker returns the first wall in set that contains p.
func Blocker(p geom.Vector, set walls.WallSet) opt.Option[walls.Wall] {
	for _, wall := range set {
		if Contains(wall, p) {
			return opt.Some(wall)
		}
	}
	return opt.None[walls.Wall]()
}

// IsBlocked reports whether moving to p would put the player inside a wall.
func IsBlocked(p geom.Vector, set walls.WallSet) bool {
	return opt.IsSome(Blocker(p, set))
}
