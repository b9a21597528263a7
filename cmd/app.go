// Package cmd implements the CLI application to compute pool dividends.
package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
)

// EnvVerbose turns on debug logs when set to a non empty value.
const EnvVerbose = "TOTE_VERBOSE"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose prints debug logs to stderr.
var Verbose = flag.Bool("v", os.Getenv(EnvVerbose) != "", "print debug logs to stderr")

// stdin, stdout and stderr are swapped by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&calcCmd{},
	&productsCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	for _, command := range Commands {
		c.Register(command, "")
	}
}
