// Package input turns a yaml script of held keys and mouse movement into
// per-frame player input, so sessions can run without a window.
//
//	steps:
//	  - frames: 60
//	    forward: true
//	    mouseDX: 2
//	  - jump: true
package input

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/epjengine/epj/pkg/player"

	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("script has no steps")

// Step holds the same input for Frames frames. Frames defaults to 1.
type Step struct {
	Frames        int     `yaml:"frames"`
	Forward       bool    `yaml:"forward"`
	Back          bool    `yaml:"back"`
	Left          bool    `yaml:"left"`
	Right         bool    `yaml:"right"`
	Sprint        bool    `yaml:"sprint"`
	Jump          bool    `yaml:"jump"`
	ToggleCapture bool    `yaml:"toggleCapture"`
	MouseDX       float64 `yaml:"mouseDX"`
	MouseDY       float64 `yaml:"mouseDY"`
}

func (s Step) Input() player.Input {
	return player.Input{
		Forward:       s.Forward,
		Back:          s.Back,
		Left:          s.Left,
		Right:         s.Right,
		Sprint:        s.Sprint,
		Jump:          s.Jump,
		ToggleCapture: s.ToggleCapture,
		MouseDX:       s.MouseDX,
		MouseDY:       s.MouseDY,
	}
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes a script. Unknown keys are rejected so that typos in key
// names do not silently do nothing.
func Parse(data []byte) (*Script, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	script := Script{}
	if err := decoder.Decode(&script); err != nil {
		return nil, fmt.Errorf("could not decode script: %w", err)
	}

	if len(script.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	for i := range script.Steps {
		step := &script.Steps[i]
		if step.Frames < 0 {
			return nil, fmt.Errorf("step %d: frames must not be negative", i+1)
		}
		if step.Frames == 0 {
			step.Frames = 1
		}
	}

	return &script, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	script, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return script, nil
}

// NumFrames is the length of the script in frames.
func (s *Script) NumFrames() uint64 {
	var total uint64
	for _, step := range s.Steps {
		total += uint64(step.Frames)
	}
	return total
}

// Next returns the input for the given frame, and false once the script
// has ended.
func (s *Script) Next(frame uint64) (player.Input, bool) {
	for _, step := range s.Steps {
		length := uint64(step.Frames)
		if frame < length {
			return step.Input(), true
		}
		frame -= length
	}
	return player.Input{}, false
}
