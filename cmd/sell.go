package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/eportfolio/renderer"
	"github.com/google/subcommands"
)

type sellCmd struct {
	symbol   string
	quantity int
	price    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units to trim or close a position" }
func (*sellCmd) Usage() string {
	return `epf sell -s <symbol> -q <quantity> -p <price>

  Sells units of a held investment and reports the proceeds and the realized gain.
  Selling all the units removes the investment from the portfolio.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Investment symbol")
	f.IntVar(&c.quantity, "q", 0, "Number of units to sell")
	f.StringVar(&c.price, "p", "", "Price per unit")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	price, err := parseMoney("p", c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := OpenPortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	sale, err := p.Sell(c.symbol, c.quantity, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SavePortfolio(ctx, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Sale(sale))
	return subcommands.ExitSuccess
}
