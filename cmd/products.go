package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tote"
	"github.com/etnz/tote/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the betting products and their commission" }
func (*productsCmd) Usage() string {
	return `tote products

  Lists the products that can be bet on, in report order.
`
}

func (*productsCmd) SetFlags(f *flag.FlagSet) {}

func (*productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.ProductsMarkdown(tote.Products()))
	return subcommands.ExitSuccess
}
