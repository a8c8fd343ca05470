package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"

	"cashbook/internal/config"
	"cashbook/internal/gateway"
	"cashbook/internal/render"
	"cashbook/internal/usecase"
)

type teaCmd struct {
	cups int
	copy bool
}

func (*teaCmd) Name() string     { return "tea" }
func (*teaCmd) Synopsis() string { return "scale the tea recipe to a number of cups" }
func (*teaCmd) Usage() string {
	return `tea [-cups <n>] [-copy]

  Shows ingredients and steps for <n> cups (1 to 20).
`
}

func (c *teaCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.cups, "cups", usecase.DefaultCups, "number of cups, clamped to 1..20")
	f.BoolVar(&c.copy, "copy", false, "copy the ingredient list to the clipboard")
}

func (c *teaCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	// The recipe needs no store.
	a := &app{cfg: cfg, logger: newLogger(cfg.Debug || *debug)}

	scaler := usecase.NewRecipeScaler(gateway.NewSystemClipboard(os.Stderr))
	scaler.SetCups(c.cups)

	a.printMarkdown(render.RecipeMarkdown(scaler.Cups(), scaler.Ingredients(), scaler.Extras(), scaler.Steps()))

	if c.copy {
		if _, err := scaler.Export(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Copy failed: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Ingredients copied to clipboard.")
		}
	}
	return subcommands.ExitSuccess
}

type timerCmd struct {
	duration time.Duration
}

func (*timerCmd) Name() string     { return "timer" }
func (*timerCmd) Synopsis() string { return "count down the tea rest time" }
func (*timerCmd) Usage() string {
	return `timer [-d <duration>]

  Counts down in the terminal and rings the bell when done. Ctrl-C stops it.
`
}

func (c *timerCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.duration, "d", usecase.RestDuration, "countdown length")
}

func (c *timerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.duration < time.Second {
		fmt.Fprintln(os.Stderr, "duration must be at least one second")
		return subcommands.ExitUsageError
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	timer := usecase.NewBrewTimer(c.duration)
	fmt.Printf("\r%s", timer)
	err := timer.Run(ctx, ticker.C, func(t *usecase.BrewTimer) {
		fmt.Printf("\r%s", t)
	})
	if err != nil {
		fmt.Printf("\nStopped with %s left.\n", timer)
		return subcommands.ExitFailure
	}

	fmt.Println("\a\nTea is ready.")
	return subcommands.ExitSuccess
}
