package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"

	"cashbook/internal/domain"
	"cashbook/internal/gateway"
	"cashbook/internal/render"
)

type historyCmd struct {
	format string
	output string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list exported counts" }
func (*historyCmd) Usage() string {
	return `history [-format text|json|yaml|csv] [-o <file>]

  Lists the saved counts, most recent first.
  With -o the listing is written to a file instead of stdout.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "output format: text, json, yaml or csv")
	f.StringVar(&c.output, "o", "", "write to this file instead of stdout")
}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.format {
	case "text", "json", "yaml", "csv":
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	entries := a.history.Entries()

	out := os.Stdout
	if c.output != "" {
		if c.format == "csv" {
			// The repository owns the file for CSV.
			if err := gateway.NewCSVHistoryRepository().WriteHistory(ctx, c.output, entries); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing history: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Fprintf(os.Stderr, "Wrote %d entries to %s\n", len(entries), c.output)
			return subcommands.ExitSuccess
		}
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	switch c.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		err = errors.Join(enc.Encode(entries), enc.Close())
	case "csv":
		err = gateway.NewCSVHistoryRepository().EncodeHistory(ctx, out, entries)
	default:
		md := render.HistoryMarkdown(entries, a.ledger.Formatter())
		if c.output != "" {
			_, err = fmt.Fprint(out, md)
		} else {
			a.printMarkdown(md)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing history: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type copyCmd struct{}

func (*copyCmd) Name() string     { return "copy" }
func (*copyCmd) Synopsis() string { return "copy a saved count to the clipboard again" }
func (*copyCmd) Usage() string {
	return `copy <id>

  Prints the breakdown stored with history entry <id> and copies it to the clipboard.
`
}

func (*copyCmd) SetFlags(*flag.FlagSet) {}

func (*copyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, status := entryID(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	text, err := a.ledger.CopyEntry(ctx, id)
	if errors.Is(err, domain.ErrEntryNotFound) {
		fmt.Fprintf(os.Stderr, "No history entry %d\n", id)
		return subcommands.ExitFailure
	}
	fmt.Println(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Copy failed: %v\n", err)
		return subcommands.ExitSuccess
	}
	fmt.Fprintln(os.Stderr, "Copied to clipboard.")
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete one history entry" }
func (*deleteCmd) Usage() string {
	return `delete <id>

  Removes history entry <id>. Deleting an unknown id does nothing.
`
}

func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, status := entryID(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	before := a.history.Len()
	if err := a.history.Remove(ctx, id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting entry %d: %v\n", id, err)
		return subcommands.ExitFailure
	}
	if a.history.Len() == before {
		fmt.Printf("No history entry %d.\n", id)
	} else {
		fmt.Printf("Deleted entry %d.\n", id)
	}
	return subcommands.ExitSuccess
}

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all history entries" }
func (*clearCmd) Usage() string {
	return `clear

  Removes every history entry. The current count is kept.
`
}

func (*clearCmd) SetFlags(*flag.FlagSet) {}

func (*clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	n := a.history.Len()
	if err := a.history.Clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %d entries.\n", n)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the history with a CSV backup" }
func (*importCmd) Usage() string {
	return `import <file.csv>

  Replaces the whole history with the entries of a file written by
  'history -format csv'.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one CSV file is required")
		return subcommands.ExitUsageError
	}

	entries, err := gateway.NewCSVHistoryRepository().ReadHistory(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := a.history.Replace(ctx, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving history: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d entries.\n", len(entries))
	return subcommands.ExitSuccess
}

func entryID(f *flag.FlagSet) (int64, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one entry id is required")
		return 0, subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid entry id %q\n", f.Arg(0))
		return 0, subcommands.ExitUsageError
	}
	return id, subcommands.ExitSuccess
}
