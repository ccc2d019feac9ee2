package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/eportfolio"
	"github.com/etnz/eportfolio/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	symbol string
	low    string
	high   string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search investments by keywords" }
func (*searchCmd) Usage() string {
	return `epf search [-s <symbol>] [-low <price>] [-high <price>] <keywords...>

  Lists the investments whose name or symbol contains all the keywords,
  optionally narrowed down to a symbol and a price range (inclusive).
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Only keep the investment with this symbol")
	f.StringVar(&c.low, "low", "", "Minimum price")
	f.StringVar(&c.high, "high", "", "Maximum price")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one keyword is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	filter := eportfolio.Filter{Symbol: c.symbol}
	var err error
	if c.low != "" {
		if filter.Low, err = parseMoney("low", c.low); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.high != "" {
		if filter.High, err = parseMoney("high", c.high); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if filter.Low.IsPositive() && filter.High.IsPositive() && filter.Low.GreaterThan(filter.High) {
		fmt.Fprintln(os.Stderr, "Error: minimum price cannot be greater than maximum price.")
		return subcommands.ExitUsageError
	}

	p, err := OpenPortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	results := eportfolio.Select(p.Search(query), filter)
	printMarkdown(renderer.SearchResults(query, results))
	return subcommands.ExitSuccess
}
