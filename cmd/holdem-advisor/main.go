package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-advisor/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to HCL config file" default:"holdem-advisor.hcl" type:"path"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `name:"no-color" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Classify ClassifyCmd `cmd:"" help:"Classify exactly five cards"`
	Best     BestCmd     `cmd:"" help:"Find the best five-card hand from seven cards"`
	Preflop  PreflopCmd  `cmd:"" help:"Score a starting hand"`
	Draw     DrawCmd     `cmd:"" help:"Detect flush and straight draws"`
	Equity   EquityCmd   `cmd:"" help:"Estimate equity against random opponents"`
	Play     PlayCmd     `cmd:"" help:"Play an advised hand street by street"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	out    io.Writer
	logger *log.Logger
	cfg    *config.Config
	clock  quartz.Clock
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("holdem-advisor"),
		kong.Description("Texas Hold'em hand evaluation, equity and starting-hand advice"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}
}

func main() {
	var cli CLI
	parser := kong.Must(&cli, options()...)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = execute(ctx, &cli.Globals, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
}

// execute loads configuration, sets up logging and runs the selected command.
func execute(ctx *kong.Context, globals *Globals, stdout, stderr io.Writer) error {
	if globals.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(globals.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", globals.Config, err)
	}

	level := cfg.Advisor.Level()
	if globals.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "holdem-advisor",
	})
	logger.Debug("Loaded config", "path", globals.Config, "opponents", cfg.Advisor.Opponents, "trials", cfg.Advisor.Trials)

	return ctx.Run(&runContext{
		out:    stdout,
		logger: logger,
		cfg:    cfg,
		clock:  quartz.NewReal(),
	})
}

// seed picks the flag value, then the configured seed, then the clock.
func (rc *runContext) seed(flag *int64) int64 {
	if flag != nil {
		return *flag
	}
	if rc.cfg.Advisor.Seed != 0 {
		return rc.cfg.Advisor.Seed
	}
	return rc.clock.Now().UnixNano()
}
