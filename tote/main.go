// Command tote computes the dividends of pari-mutuel betting pools.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tote/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// exits when invoked by the shell to complete the command line.
	cmd.Completion().Complete(path.Base(os.Args[0]))

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
