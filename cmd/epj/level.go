package main

import (
	"github.com/epjengine/epj/pkg/config"
	"github.com/epjengine/epj/pkg/layout"
	"github.com/epjengine/epj/pkg/walls"

	"github.com/rs/zerolog/log"
)

type Level struct {
	Seed        int64
	Fingerprint uint64
	Walls       walls.WallSet
}

func loadConfig(flags LevelFlags) (*config.Config, error) {
	settings, err := config.Process(flags.Configs)
	if err != nil {
		return nil, err
	}

	if flags.Seed != 0 {
		settings.Layout.Seed = flags.Seed
	}

	if flags.Policy != "" {
		settings.Layout.Policy = flags.Policy
	}

	return settings, nil
}

func buildLevel(settings *config.Config) (*Level, error) {
	seed := layout.ResolveSeed(settings.Layout.Seed)
	generator := settings.Layout.Generator()

	log.Info().
		Str("policy", string(generator.Policy)).
		Int64("seed", seed).
		Msg("generating level")

	set, err := layout.Generate(generator, layout.NewSource(seed))
	if err != nil {
		return nil, err
	}

	fingerprint, err := set.Fingerprint()
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("walls", len(set)).
		Str("fingerprint", formatFingerprint(fingerprint)).
		Msg("generated level")

	return &Level{
		Seed:        seed,
		Fingerprint: fingerprint,
		Walls:       set,
	}, nil
}
