package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/eportfolio"
	"github.com/google/subcommands"
)

type updateCmd struct {
	symbol string
	price  string
	quotes string
	path   string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update the price of investments" }
func (*updateCmd) Usage() string {
	return `epf update -s <symbol> -p <price>
epf update -quotes <file.json> [-path <jsonpath>]

  Updates the price of a single investment, or of every investment listed in
  a JSON quotes file. The JSONPath expression must select an object mapping
  symbols to prices.

Usage Examples:
# quotes.json: {"data": {"quotes": {"ABC": 12.5, "XYZ": "101.20"}}}
$ epf update -quotes quotes.json -path '$.data.quotes'
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Investment symbol")
	f.StringVar(&c.price, "p", "", "New price per unit")
	f.StringVar(&c.quotes, "quotes", "", "JSON file of latest prices")
	f.StringVar(&c.path, "path", "$", "JSONPath expression selecting the symbol to price object in the quotes file")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	single := c.symbol != "" || c.price != ""
	if single == (c.quotes != "") || (single && (c.symbol == "" || c.price == "")) {
		f.Usage()
		return subcommands.ExitUsageError
	}

	p, err := OpenPortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	var status subcommands.ExitStatus
	if single {
		status = c.updateOne(p)
	} else {
		status = c.updateAll(p)
	}
	if status != subcommands.ExitSuccess {
		return status
	}

	if err := SavePortfolio(ctx, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *updateCmd) updateOne(p *eportfolio.Portfolio) subcommands.ExitStatus {
	price, err := parseMoney("p", c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	h, ok := p.Find(c.symbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %v with symbol %q\n", eportfolio.ErrNotFound, c.symbol)
		return subcommands.ExitFailure
	}
	if err := p.UpdatePrice(h, price); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating %q: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Investment price updated successfully: %s is now %s.\n", h.Symbol(), h.Price())
	return subcommands.ExitSuccess
}

func (c *updateCmd) updateAll(p *eportfolio.Portfolio) subcommands.ExitStatus {
	f, err := os.Open(c.quotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening quotes file %q: %v\n", c.quotes, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	prices, err := eportfolio.DecodeQuotes(f, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading quotes file %q: %v\n", c.quotes, err)
		return subcommands.ExitFailure
	}
	updated, err := p.Reprice(prices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating prices: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, symbol := range updated {
		h, _ := p.Find(symbol)
		fmt.Printf("%s is now %s\n", h.Symbol(), h.Price())
	}
	fmt.Printf("Updated %d of %d investments.\n", len(updated), p.Len())
	return subcommands.ExitSuccess
}
