package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/eportfolio/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct{}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "unrealized gain of each investment and of the portfolio" }
func (*gainsCmd) Usage() string {
	return `epf gains

  Displays, for each investment, its market value minus its book value, and the total.
`
}

func (*gainsCmd) SetFlags(f *flag.FlagSet) {}

func (*gainsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := OpenPortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Gains(p.IndividualGains(), p.TotalGain()))
	return subcommands.ExitSuccess
}
