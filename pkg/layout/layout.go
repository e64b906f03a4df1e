// Package layout generates the wall geometry of a level.
package layout

import (
	"errors"
	"fmt"

	"github.com/epjengine/epj/pkg/walls"
)

type Policy string

const (
	PolicyGrid    Policy = "grid"
	PolicyScatter Policy = "scatter"
	PolicyFixed   Policy = "fixed"
)

var (
	ErrGenerationFailed = errors.New("layout generation failed")
	ErrUnknownPolicy    = errors.New("unknown layout policy")
)

// WallSize holds the half-extents given to every generated wall.
type WallSize struct {
	Width  float64
	Height float64
	Depth  float64
}

type GridConfig struct {
	// Size is the number of cells along each side of the grid.
	Size     int
	CellSize float64
}

type ScatterConfig struct {
	Count int
	// Extent bounds wall centers to [-Extent, Extent) on X and Z.
	Extent float64
	// MaxAttempts is the number of candidates drawn for a single wall
	// before giving up.
	MaxAttempts int
}

type Config struct {
	Policy  Policy
	Wall    WallSize
	Grid    GridConfig
	Scatter ScatterConfig
}

// Generator produces a WallSet from a random source.
type Generator interface {
	Generate(src Source) (walls.WallSet, error)
}

// New returns the generator for the configured policy.
func New(config Config) (Generator, error) {
	switch config.Policy {
	case PolicyGrid:
		return &Grid{Config: config.Grid, Wall: config.Wall}, nil
	case PolicyScatter:
		return &Scatter{Config: config.Scatter, Wall: config.Wall}, nil
	case PolicyFixed:
		return Fixed{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, config.Policy)
}

// Generate builds a level with the configured policy.
func Generate(config Config, src Source) (walls.WallSet, error) {
	generator, err := New(config)
	if err != nil {
		return nil, err
	}

	return generator.Generate(src)
}
