package config

import (
	"time"

	"github.com/epjengine/epj/pkg/geom"
	"github.com/epjengine/epj/pkg/layout"
	"github.com/epjengine/epj/pkg/player"
	"github.com/epjengine/epj/pkg/session"
)

type Vector struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

type WallSettings struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Depth  float64 `yaml:"depth" json:"depth"`
}

type GridSettings struct {
	Size     int     `yaml:"size" json:"size"`
	CellSize float64 `yaml:"cellSize" json:"cellSize"`
}

type ScatterSettings struct {
	Count       int     `yaml:"count" json:"count"`
	Extent      float64 `yaml:"extent" json:"extent"`
	MaxAttempts int     `yaml:"maxAttempts" json:"maxAttempts"`
}

type LayoutSettings struct {
	Policy  string          `yaml:"policy" json:"policy"`
	Seed    int64           `yaml:"seed" json:"seed"`
	Wall    WallSettings    `yaml:"wall" json:"wall"`
	Grid    GridSettings    `yaml:"grid" json:"grid"`
	Scatter ScatterSettings `yaml:"scatter" json:"scatter"`
}

type PlayerSettings struct {
	Start            Vector  `yaml:"start" json:"start"`
	MoveSpeed        float64 `yaml:"moveSpeed" json:"moveSpeed"`
	SprintSpeed      float64 `yaml:"sprintSpeed" json:"sprintSpeed"`
	MouseSensitivity float64 `yaml:"mouseSensitivity" json:"mouseSensitivity"`
	PitchLimit       float64 `yaml:"pitchLimit" json:"pitchLimit"`
	JumpSpeed        float64 `yaml:"jumpSpeed" json:"jumpSpeed"`
	Gravity          float64 `yaml:"gravity" json:"gravity"`
}

type LoopSettings struct {
	FrameRate   float64       `yaml:"frameRate" json:"frameRate"`
	FPSInterval time.Duration `yaml:"fpsInterval" json:"fpsInterval"`
}

type Config struct {
	Layout LayoutSettings `yaml:"layout" json:"layout"`
	Player PlayerSettings `yaml:"player" json:"player"`
	Loop   LoopSettings   `yaml:"loop" json:"loop"`
}

func (l LayoutSettings) Generator() layout.Config {
	return layout.Config{
		Policy: layout.Policy(l.Policy),
		Wall: layout.WallSize{
			Width:  l.Wall.Width,
			Height: l.Wall.Height,
			Depth:  l.Wall.Depth,
		},
		Grid: layout.GridConfig{
			Size:     l.Grid.Size,
			CellSize: l.Grid.CellSize,
		},
		Scatter: layout.ScatterConfig{
			Count:       l.Scatter.Count,
			Extent:      l.Scatter.Extent,
			MaxAttempts: l.Scatter.MaxAttempts,
		},
	}
}

func (p PlayerSettings) Params() player.Params {
	return player.Params{
		Start:            geom.NewVector(p.Start.X, p.Start.Y, p.Start.Z),
		MoveSpeed:        p.MoveSpeed,
		SprintSpeed:      p.SprintSpeed,
		MouseSensitivity: p.MouseSensitivity,
		PitchLimit:       p.PitchLimit,
		JumpSpeed:        p.JumpSpeed,
		Gravity:          p.Gravity,
	}
}

func (l LoopSettings) Options() session.Options {
	return session.Options{
		FrameRate:   l.FrameRate,
		FPSInterval: l.FPSInterval,
	}
}
