package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"cashbook/internal/domain"
	"cashbook/internal/render"
)

type countCmd struct {
	tally *string
}

func (*countCmd) Name() string     { return "count" }
func (*countCmd) Synopsis() string { return "set note counts for one or more denominations" }
func (*countCmd) Usage() string {
	return `count [-tally <amount>] <note>=<count> ...

  Sets the count for each listed denomination and shows the updated totals.
  <note> is a face value (500, 200, 100, 50, 20, 10) or a row index (0-5).
  Non-digit characters in <count> are ignored; an empty count clears the row.

  Example: cashbook count 500=2 100=1 -tally 1100
`
}

func (c *countCmd) SetFlags(f *flag.FlagSet) {
	f.Func("tally", "also set the tally to this amount", func(s string) error {
		c.tally = &s
		return nil
	})
}

func (c *countCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 && c.tally == nil {
		fmt.Fprintln(os.Stderr, "at least one <note>=<count> pair is required")
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	denominations := a.ledger.Denominations()
	for _, arg := range f.Args() {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "invalid argument %q, expected <note>=<count>\n", arg)
			return subcommands.ExitUsageError
		}
		index, err := denominationIndex(denominations, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitUsageError
		}
		if err := a.ledger.SetCount(ctx, index, raw); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving count: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if c.tally != nil {
		if err := a.ledger.SetTally(ctx, *c.tally); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving tally: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printLedger(a)
	return subcommands.ExitSuccess
}

// denominationIndex resolves a face value first, then a row index.
func denominationIndex(denominations []domain.Denomination, key string) (int, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "₹")
	n, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown denomination %q", key)
	}
	for i, d := range denominations {
		if d.FaceValue == n {
			return i, nil
		}
	}
	if n >= 0 && n < int64(len(denominations)) {
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: %q is neither a note value nor a row index", domain.ErrIndexOutOfRange, key)
}

type tallyCmd struct{}

func (*tallyCmd) Name() string     { return "tally" }
func (*tallyCmd) Synopsis() string { return "set the tally to reconcile against" }
func (*tallyCmd) Usage() string {
	return `tally [<amount>]

  Sets the tally (e.g. the register reading). Without an amount the tally is cleared.
`
}

func (*tallyCmd) SetFlags(*flag.FlagSet) {}

func (*tallyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "tally takes at most one amount")
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := a.ledger.SetTally(ctx, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving tally: %v\n", err)
		return subcommands.ExitFailure
	}

	printLedger(a)
	return subcommands.ExitSuccess
}

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the current count and totals" }
func (*showCmd) Usage() string {
	return `show

  Displays the denomination grid, totals, amount in words and the difference to the tally.
`
}

func (*showCmd) SetFlags(*flag.FlagSet) {}

func (*showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	printLedger(a)
	return subcommands.ExitSuccess
}

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear all counts and the tally" }
func (*resetCmd) Usage() string {
	return `reset

  Clears every count and the tally. History is kept.
`
}

func (*resetCmd) SetFlags(*flag.FlagSet) {}

func (*resetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := a.ledger.Reset(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting count: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Count cleared.")
	return subcommands.ExitSuccess
}

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "save the count to history and copy it" }
func (*exportCmd) Usage() string {
	return `export

  Prints the breakdown, appends it to the history and copies it to the clipboard.
`
}

func (*exportCmd) SetFlags(*flag.FlagSet) {}

func (*exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	result := a.ledger.Export(ctx)
	fmt.Println(result.Text)

	if result.CopyErr != nil {
		fmt.Fprintf(os.Stderr, "Copy failed: %v\n", result.CopyErr)
	} else {
		fmt.Fprintln(os.Stderr, "Copied to clipboard.")
	}

	if result.PersistErr != nil {
		fmt.Fprintf(os.Stderr, "Error saving history entry %d: %v\n", result.Entry.ID, result.PersistErr)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Saved as entry %d.\n", result.Entry.ID)
	return subcommands.ExitSuccess
}

func printLedger(a *app) {
	l := a.ledger
	a.printMarkdown(render.LedgerMarkdown(l.LineItems(), l.Totals(), l.State().Tally, l.Formatter()))
}
