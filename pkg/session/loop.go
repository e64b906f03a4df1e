// Package session runs the per-frame update of a single player walking
// around a fixed set of walls.
package session

import (
	"context"
	"time"

	"github.com/epjengine/epj/pkg/player"
	"github.com/epjengine/epj/pkg/utils"
	"github.com/epjengine/epj/pkg/walls"

	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/time/rate"
)

// Frame is published after every update.
type Frame struct {
	Number uint64
	Player player.State
}

// InputSource supplies the input for each frame. Returning false ends the
// session.
type InputSource interface {
	Next(frame uint64) (player.Input, bool)
}

type Options struct {
	// FrameRate caps updates per second. Zero runs as fast as possible.
	FrameRate   float64
	FPSInterval time.Duration
}

func DefaultOptions() Options {
	return Options{
		FrameRate:   60,
		FPSInterval: time.Second,
	}
}

type Session struct {
	Frames *utils.Topic[Frame]

	walls   walls.WallSet
	params  player.Params
	options Options

	mutex  deadlock.RWMutex
	state  player.State
	frame  uint64
	fps    int
	uptime time.Duration
}

func New(set walls.WallSet, params player.Params, options Options) *Session {
	return &Session{
		Frames:  utils.NewTopic[Frame](),
		walls:   set,
		params:  params,
		options: options,
		state:   player.NewState(params.Start),
	}
}

// Walls returns the level geometry. Callers must not modify it.
func (s *Session) Walls() walls.WallSet {
	return s.walls
}

// Player returns the player as of the last completed frame.
func (s *Session) Player() player.State {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state
}

func (s *Session) NumFrames() uint64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.frame
}

func (s *Session) FPS() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.fps
}

// Uptime is how long Run has been (or was) running.
func (s *Session) Uptime() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.uptime
}

func (s *Session) limiter() *rate.Limiter {
	if s.options.FrameRate <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(s.options.FrameRate), 1)
}

// Run updates the player once per frame until ctx is cancelled or inputs
// runs out, and returns the final player state. Cancellation is a normal
// way to close a session and is not reported as an error.
func (s *Session) Run(ctx context.Context, inputs InputSource) player.State {
	limiter := s.limiter()
	start := time.Now()
	counter := NewFPSCounter(s.options.FPSInterval, start)

	log.Info().
		Int("walls", len(s.walls)).
		Float64("frameRate", s.options.FrameRate).
		Msgf("session started at %s", s.Player())

	for {
		if err := limiter.Wait(ctx); err != nil {
			log.Debug().Err(err).Msg("session closed")
			break
		}

		s.mutex.RLock()
		state := s.state
		number := s.frame
		s.mutex.RUnlock()

		input, ok := inputs.Next(number)
		if !ok {
			break
		}

		state = s.params.Step(state, input, s.walls)
		now := time.Now()

		s.mutex.Lock()
		s.state = state
		s.frame++
		number = s.frame
		s.uptime = now.Sub(start)
		if fps, ok := counter.Tick(now); ok {
			s.fps = fps
			log.Debug().Int("fps", fps).Msg("frame rate")
		}
		s.mutex.Unlock()

		s.Frames.Publish(Frame{
			Number: number,
			Player: state,
		})
	}

	final := s.Player()
	log.Info().
		Uint64("frames", s.NumFrames()).
		Msgf("session ended at %s", final)

	return final
}
