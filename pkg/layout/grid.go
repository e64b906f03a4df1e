package layout

import (
	"github.com/epjengine/epj/pkg/walls"

	"github.com/rs/zerolog/log"
)

// Grid walks a square grid of cells centered on the origin and rolls, for
// each cell, whether to put a wall there.
//
// Three tiers are tried in order and the first one whose roll hits decides
// the cell, even when it places nothing:
//
//	1/4   L-shape: place on a coin flip, random rotation
//	1/8   C-shape: always place, rotated 90°
//	1/10  lone wall: always place, random rotation
//
// Walls are not checked for overlap; the cell spacing keeps them apart.
type Grid struct {
	Config GridConfig
	Wall   WallSize
}

func randomRotation(src Source) walls.Rotation {
	if src.Bool() {
		return walls.Rotation0
	}
	return walls.Rotation90
}

func (g *Grid) roll(src Source) (bool, walls.Rotation) {
	if src.Intn(4) == 0 {
		if src.Bool() {
			return true, randomRotation(src)
		}
		return false, walls.Rotation0
	} else if src.Intn(8) == 0 {
		return true, walls.Rotation90
	} else if src.Intn(10) == 0 {
		return true, randomRotation(src)
	}

	return false, walls.Rotation0
}

// Nudge is how far a wall is pushed from its cell origin so that walls in
// neighbouring cells meet edge to edge.
func (g *Grid) Nudge() float64 {
	return g.Config.CellSize/2 - g.Wall.Depth/2
}

func (g *Grid) Generate(src Source) (walls.WallSet, error) {
	result := make(walls.WallSet, 0)

	half := g.Config.Size / 2
	cell := g.Config.CellSize
	nudge := g.Nudge()

	for x := -half; x < half; x++ {
		for z := -half; z < half; z++ {
			place, rotation := g.roll(src)
			if !place {
				continue
			}

			wallX := float64(x) * cell
			wallZ := float64(z) * cell
			if rotation == walls.Rotation90 {
				wallX += nudge
			} else {
				wallZ += nudge
			}

			result = append(result, walls.New(
				wallX,
				wallZ,
				g.Wall.Width,
				g.Wall.Height,
				g.Wall.Depth,
				rotation,
			))
		}
	}

	log.Debug().
		Int("size", g.Config.Size).
		Float64("cellSize", cell).
		Int("walls", len(result)).
		Msg("generated grid layout")

	return result, nil
}
