package player

import (
	"github.com/epjengine/epj/pkg/collision"
	"github.com/epjengine/epj/pkg/geom"
	"github.com/epjengine/epj/pkg/walls"
)

func (p Params) look(state State, input Input) State {
	if !state.MouseCaptured {
		return state
	}

	state.Yaw += input.MouseDX * p.MouseSensitivity
	state.Pitch -= input.MouseDY * p.MouseSensitivity

	if state.Pitch > p.PitchLimit {
		state.Pitch = p.PitchLimit
	}
	if state.Pitch < -p.PitchLimit {
		state.Pitch = -p.PitchLimit
	}

	return state
}

// move tries each pressed direction in turn. A direction whose target is
// inside a wall is skipped; the others still apply.
func (p Params) move(state State, input Input, set walls.WallSet) State {
	speed := p.MoveSpeed
	if input.Sprint {
		speed = p.SprintSpeed
	}

	forward := geom.Heading(state.Yaw).Mul(speed)
	right := geom.Heading(state.Yaw + 90).Mul(speed)

	steps := []struct {
		pressed bool
		delta   geom.Vector
	}{
		{input.Forward, forward},
		{input.Back, forward.Mul(-1)},
		{input.Right, right},
		{input.Left, right.Mul(-1)},
	}

	for _, step := range steps {
		if !step.pressed {
			continue
		}

		target := state.Position.Add(step.delta)
		if collision.IsBlocked(target, set) {
			continue
		}
		state.Position = target
	}

	return state
}

func (p Params) fall(state State) State {
	if !state.Jumping {
		return state
	}

	state.VerticalSpeed += p.Gravity
	state.Position = state.Position.WithY(state.Position.Y() + state.VerticalSpeed)

	if state.Position.Y() <= 0 {
		state.Position = state.Position.WithY(0)
		state.Jumping = false
		state.VerticalSpeed = 0
	}

	return state
}

// Step advances the player by one frame.
func (p Params) Step(state State, input Input, set walls.WallSet) State {
	state = p.look(state, input)
	state = p.move(state, input, set)

	if input.Jump && !state.Jumping {
		state.Jumping = true
		state.VerticalSpeed = p.JumpSpeed
	}

	if input.ToggleCapture {
		state.MouseCaptured = !state.MouseCaptured
	}

	return p.fall(state)
}
