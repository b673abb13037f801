package main

import (
	"errors"
	"flag"
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("tada", flag.ContinueOnError)
	fs.Usage = func() { cli.PrintHelp(os.Stderr) }
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}
	ui.SetTheme(cfg.Theme)

	// Hand the remaining args to the CLI runner.
	os.Exit(cli.Run(fs.Args(), cli.Options{Config: cfg}))
}
