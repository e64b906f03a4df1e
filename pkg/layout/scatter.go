package layout

import (
	"fmt"

	"github.com/epjengine/epj/pkg/walls"

	"github.com/rs/zerolog/log"
)

// Scatter places walls at uniformly random points in a square area, redrawing
// any candidate whose footprint overlaps a wall that was already accepted.
type Scatter struct {
	Config ScatterConfig
	Wall   WallSize
}

func (s *Scatter) candidate(src Source) walls.Wall {
	extent := s.Config.Extent
	x := -extent + src.Float64()*2*extent
	z := -extent + src.Float64()*2*extent

	return walls.New(
		x,
		z,
		s.Wall.Width,
		s.Wall.Height,
		s.Wall.Depth,
		randomRotation(src),
	)
}

func overlapsAny(wall walls.Wall, set walls.WallSet) bool {
	for _, other := range set {
		if wall.Overlaps(other) {
			return true
		}
	}
	return false
}

// Generate returns ErrGenerationFailed, along with the walls placed so far,
// when MaxAttempts candidates in a row are rejected.
func (s *Scatter) Generate(src Source) (walls.WallSet, error) {
	result := make(walls.WallSet, 0, s.Config.Count)

	for len(result) < s.Config.Count {
		placed := false
		for attempt := 0; attempt < s.Config.MaxAttempts; attempt++ {
			wall := s.candidate(src)
			if overlapsAny(wall, result) {
				continue
			}

			log.Debug().
				Int("index", len(result)).
				Int("attempts", attempt+1).
				Msgf("placed wall %s", wall)

			result = append(result, wall)
			placed = true
			break
		}

		if !placed {
			return result, fmt.Errorf(
				"%w: could not place wall %d of %d after %d attempts",
				ErrGenerationFailed,
				len(result)+1,
				s.Config.Count,
				s.Config.MaxAttempts,
			)
		}
	}

	return result, nil
}
