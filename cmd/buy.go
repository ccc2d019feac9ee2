package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/eportfolio"
	"github.com/google/subcommands"
)

type buyCmd struct {
	kind     string
	symbol   string
	name     string
	quantity int
	price    string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy units to open or add to a position" }
func (*buyCmd) Usage() string {
	return `epf buy -t <stock|mutualfund> -s <symbol> -n <name> -q <quantity> -p <price>

  Buys units of a stock or a mutual fund. If the symbol is already held, the
  units are added to the existing position, which must be of the same type.
  A new position's book value includes the transaction fee.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "stock", "Investment type (stock, mutualfund)")
	f.StringVar(&c.symbol, "s", "", "Investment symbol")
	f.StringVar(&c.name, "n", "", "Investment name, required for a new position")
	f.IntVar(&c.quantity, "q", 0, "Number of units")
	f.StringVar(&c.price, "p", "", "Price per unit")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity <= 0 || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	kind, err := eportfolio.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	h, err := p.Buy(kind, c.symbol, c.name, c.quantity, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error buying %q: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}
	if err := SavePortfolio(ctx, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %d units of %s at %s. Now holding %d units, book value %s.\n",
		c.quantity, h.Symbol(), price, h.Quantity(), h.BookValue())
	return subcommands.ExitSuccess
}
