// Command cashbook counts a cash drawer by denomination, reconciles it against a
// tally, keeps a history of exported counts and scales a tea recipe.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&countCmd{}, "ledger")
	commander.Register(&tallyCmd{}, "ledger")
	commander.Register(&showCmd{}, "ledger")
	commander.Register(&resetCmd{}, "ledger")
	commander.Register(&exportCmd{}, "ledger")

	commander.Register(&historyCmd{}, "history")
	commander.Register(&copyCmd{}, "history")
	commander.Register(&deleteCmd{}, "history")
	commander.Register(&clearCmd{}, "history")
	commander.Register(&importCmd{}, "history")

	commander.Register(&teaCmd{}, "recipe")
	commander.Register(&timerCmd{}, "recipe")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
