package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/eportfolio/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	json bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all investments" }
func (*listCmd) Usage() string {
	return `epf list [-json]

  Lists all investments in portfolio order. With -json, prints one JSON object per line.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print JSON lines instead of a table")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := OpenPortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.json {
		printMarkdown(renderer.Holdings(p.Holdings()))
		return subcommands.ExitSuccess
	}

	enc := json.NewEncoder(os.Stdout)
	for _, h := range p.Holdings() {
		if err := enc.Encode(h); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding %q: %v\n", h.Symbol(), err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
