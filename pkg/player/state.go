package player

import (
	"fmt"

	"github.com/epjengine/epj/pkg/geom"
)

// State is everything that changes about the player from frame to frame.
type State struct {
	Position      geom.Vector
	Pitch         float64
	Yaw           float64
	VerticalSpeed float64
	Jumping       bool
	MouseCaptured bool
}

// NewState returns the player as they are when a session starts.
func NewState(start geom.Vector) State {
	return State{
		Position:      start,
		MouseCaptured: true,
	}
}

func (s State) String() string {
	return fmt.Sprintf(
		"pos=(%.2f, %.2f, %.2f) pitch=%.1f yaw=%.1f",
		s.Position.X(),
		s.Position.Y(),
		s.Position.Z(),
		s.Pitch,
		s.Yaw,
	)
}

// Params tunes movement and physics.
type Params struct {
	Start            geom.Vector
	MoveSpeed        float64
	SprintSpeed      float64
	MouseSensitivity float64
	PitchLimit       float64
	JumpSpeed        float64
	Gravity          float64
}

func DefaultParams() Params {
	return Params{
		Start:            geom.NewVector(0, 0, 5),
		MoveSpeed:        0.1,
		SprintSpeed:      0.2,
		MouseSensitivity: 0.1,
		PitchLimit:       89,
		JumpSpeed:        0.54,
		Gravity:          -0.025,
	}
}

// Input is what the player did during one frame.
type Input struct {
	Forward, Back bool
	Left, Right   bool
	Sprint        bool
	Jump          bool
	// ToggleCapture flips whether mouse movement turns the camera.
	ToggleCapture bool
	MouseDX       float64
	MouseDY       float64
}
