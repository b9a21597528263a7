package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printMarkdown prints md to stdout, styled when stdout is a terminal.
func printMarkdown(md string) {
	if !isTerminal(stdout) {
		io.WriteString(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			io.WriteString(stdout, out)
			return
		}
	}
	fmt.Fprintf(stderr, "Warning: cannot style markdown: %v\n", err)
	io.WriteString(stdout, md)
}
