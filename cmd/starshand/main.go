package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/lox/starshand/cmd/starshand/shared"
	"github.com/lox/starshand/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"starshand.hcl" type:"path" help:"Path to the HCL config file"`
	LogLevel string `help:"Override the configured log level (debug, info, warn, error)"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Parse   ParseCmd         `cmd:"" help:"Parse hand history files and print a one-line summary per hand"`
	Render  RenderCmd        `cmd:"" help:"Render hands for the terminal"`
	Export  ExportCmd        `cmd:"" help:"Export hands as JSON or PHH"`
	Notes   NotesCmd         `cmd:"" help:"Read and edit a PokerStars player notes file"`
}

// setup loads the config file and builds the logger from it.
func (g *Globals) setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	level := cfg.Log.Level
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	logger, err := shared.SetupLogger(g.stderr(), level, cfg.Log.Format)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger, nil
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.Stderr == nil {
		return os.Stderr
	}
	return g.Stderr
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("starshand"),
		kong.Description("Parse PokerStars tournament hand histories"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals, &cli.Notes)
	ctx.FatalIfErrorf(err)
}
