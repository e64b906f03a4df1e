package main

import (
	"fmt"
	"os"
	"time"

	"github.com/epjengine/epj/pkg/config"
	"github.com/epjengine/epj/pkg/version"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LevelFlags struct {
	Configs []string `arg:"" optional:"" name:"configs" help:"Configuration files, applied in order on top of the defaults." type:"existingfile"`
	Seed    int64    `help:"Random seed. Overrides the configured seed." short:"s"`
	Policy  string   `help:"Layout policy: grid, scatter or fixed. Overrides the configured policy." short:"p"`
}

var CLI struct {
	Version kong.VersionFlag `help:"Print version information and exit." short:"v"`
	Debug   bool             `help:"Whether to enable debug logging."`

	Generate struct {
		LevelFlags `embed:""`
		Format string `help:"Output format." enum:"text,json,yaml" default:"text" short:"f"`
	} `cmd:"" help:"Generate a level and print its walls."`

	Simulate struct {
		LevelFlags `embed:""`
		Script string `help:"Input script to play back." type:"existingfile" required:""`
	} `cmd:"" help:"Generate a level and walk it headless with a scripted input."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if len(os.Args) == 1 {
		err := generateCommand(LevelFlags{}, "text")
		if err != nil {
			writeError(err)
		}
		return
	}

	ctx := kong.Parse(&CLI,
		kong.Name("epj"),
		kong.Description("a procedural wall-layout walking simulator"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf(
				"epj %s (commit %s, built %s)",
				version.Version,
				version.GitCommit,
				version.BuildTime,
			),
		},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	var err error
	switch ctx.Command() {
	case "generate", "generate <configs>":
		err = generateCommand(CLI.Generate.LevelFlags, CLI.Generate.Format)
	case "simulate", "simulate <configs>":
		err = simulateCommand(CLI.Simulate.LevelFlags, CLI.Simulate.Script)
	case "config":
		_, err = os.Stdout.Write(config.DEFAULT)
	}

	if err != nil {
		writeError(err)
	}
}
