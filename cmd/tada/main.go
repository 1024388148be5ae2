package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}

	// Root flags (apply to every subcommand); they override the environment.
	theme := flag.String("theme", cfg.Theme, "color theme: classic|neon|mono")
	exportFmt := flag.String("export", "", "write the final list on exit: json|csv|pdf")
	out := flag.String("out", "", "export path")
	flag.Parse()

	if err := ui.SetTheme(*theme); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	closeLog, err := cli.SetupLogging(cfg.DebugLog)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		closeLog()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Export: *exportFmt,
		Out:    *out,
		Money:  ui.NewMoney(cfg.Locale, cfg.Currency),
	})
	closeLog()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
