package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/tote"
	"github.com/etnz/tote/renderer"
	"github.com/google/subcommands"
)

// prompt is shown when bets are typed interactively.
const prompt = "\nPlease enter the bet(s), enter the result as the last input/line to calculate the dividends:\n"

type calcCmd struct {
	strict bool
	format string
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the dividends from bet and result lines" }
func (*calcCmd) Usage() string {
	return `tote calc [-strict] [-format text|markdown|json] [<file>...]

  Reads bet lines then a result line, from the files in order or from the
  standard input, and prints the dividend of each product.

  Lines look like "bet:w:1:100" or "result:1:2:3", see 'tote topic input'.

`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "fail on lines that are not a valid bet or result")
	f.StringVar(&c.format, "format", "text", "output format: text, markdown or json")
}

func (c *calcCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := renderer.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	input, closeInput, err := openInput(f.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeInput()

	log := newLogger(*Verbose)
	defer log.Sync()

	s := tote.Session{Strict: c.strict, Log: log}
	report, err := s.Run(ctx, input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if format == renderer.Markdown {
		printMarkdown(renderer.ReportMarkdown(report))
		return subcommands.ExitSuccess
	}
	if err := renderer.Render(stdout, report, format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// openInput chains the files into a single stream of lines, or returns stdin when there are none.
func openInput(filenames []string) (io.Reader, func(), error) {
	if len(filenames) == 0 {
		if isTerminal(stdin) {
			fmt.Fprint(stderr, prompt)
		}
		return stdin, func() {}, nil
	}

	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	readers := make([]io.Reader, 0, 2*len(filenames))
	for _, filename := range filenames {
		f, err := os.Open(filename)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
		}
		files = append(files, f)
		// a file without final newline must not merge its last line with the next file.
		readers = append(readers, f, strings.NewReader("\n"))
	}
	return io.MultiReader(readers...), closeAll, nil
}
