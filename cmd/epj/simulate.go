package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/epjengine/epj/pkg/input"
	"github.com/epjengine/epj/pkg/session"

	"github.com/rs/zerolog/log"
)

// logFrames traces the player once per second of simulated time.
func logFrames(s *session.Session, frameRate float64) {
	every := uint64(frameRate)
	if every == 0 {
		every = 60
	}

	frames := s.Frames.Subscribe(16)
	go func() {
		for frame := range frames.Recv() {
			if frame.Number%every != 0 {
				continue
			}
			log.Debug().
				Uint64("frame", frame.Number).
				Bool("jumping", frame.Player.Jumping).
				Msg(frame.Player.String())
		}
	}()
}

func simulateCommand(flags LevelFlags, scriptPath string) error {
	settings, err := loadConfig(flags)
	if err != nil {
		return err
	}

	script, err := input.Load(scriptPath)
	if err != nil {
		return err
	}

	level, err := buildLevel(settings)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info().Msgf("terminating: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	s := session.New(
		level.Walls,
		settings.Player.Params(),
		settings.Loop.Options(),
	)
	logFrames(s, settings.Loop.FrameRate)

	log.Info().
		Uint64("frames", script.NumFrames()).
		Msgf("playing %s", scriptPath)

	final := s.Run(ctx, script)

	fmt.Printf(
		"%d frames in %s: %s\n",
		s.NumFrames(),
		s.Uptime(),
		final,
	)

	return nil
}
