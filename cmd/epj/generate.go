package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type wallDump struct {
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Z        float64 `json:"z" yaml:"z"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Depth    float64 `json:"depth" yaml:"depth"`
	Rotation float64 `json:"rotation" yaml:"rotation"`
}

type levelDump struct {
	Seed        int64      `json:"seed" yaml:"seed"`
	Fingerprint string     `json:"fingerprint" yaml:"fingerprint"`
	Walls       []wallDump `json:"walls" yaml:"walls"`
}

func formatFingerprint(fingerprint uint64) string {
	return fmt.Sprintf("%016x", fingerprint)
}

func dumpLevel(level *Level) levelDump {
	dump := levelDump{
		Seed:        level.Seed,
		Fingerprint: formatFingerprint(level.Fingerprint),
		Walls:       make([]wallDump, 0, len(level.Walls)),
	}

	for _, wall := range level.Walls {
		dump.Walls = append(dump.Walls, wallDump{
			X:        wall.X,
			Y:        wall.Y,
			Z:        wall.Z,
			Width:    wall.Width,
			Height:   wall.Height,
			Depth:    wall.Depth,
			Rotation: wall.Rotation.Degrees(),
		})
	}

	return dump
}

func writeLevel(out io.Writer, level *Level, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(dumpLevel(level))
	case "yaml":
		encoder := yaml.NewEncoder(out)
		defer encoder.Close()
		return encoder.Encode(dumpLevel(level))
	case "text":
		fmt.Fprintf(
			out,
			"seed %d, %d walls, fingerprint %s\n",
			level.Seed,
			len(level.Walls),
			formatFingerprint(level.Fingerprint),
		)
		for i, wall := range level.Walls {
			fmt.Fprintf(out, "%5d %s\n", i, wall)
		}
		return nil
	}

	return fmt.Errorf("unknown format %q", format)
}

func generateCommand(flags LevelFlags, format string) error {
	settings, err := loadConfig(flags)
	if err != nil {
		return err
	}

	level, err := buildLevel(settings)
	if err != nil {
		return err
	}

	return writeLevel(os.Stdout, level, format)
}
