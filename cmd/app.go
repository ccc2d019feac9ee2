// Package cmd implements the CLI application to manage a portfolio of stocks and mutual funds.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/eportfolio"
	"github.com/etnz/eportfolio/sqlite"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands, a main package registers them.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&updateCmd{},
	&gainsCmd{},
	&searchCmd{},
	&listCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const (
	envPortfolioFile = "EPF_PORTFOLIO_FILE"
	envLogLevel      = "EPF_LOG_LEVEL"

	defaultPortfolioFile = "portfolio.txt"
)

var portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio file. A .db or .sqlite extension selects a SQLite database. Defaults to $"+envPortfolioFile+" or "+defaultPortfolioFile)
var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error). Defaults to $"+envLogLevel+" or warn")
var raw = flag.Bool("raw", false, "Print raw markdown instead of styled terminal output")

// LoadEnv loads a .env file from the working directory, if any.
// Variables already set in the environment take precedence.
func LoadEnv() {
	_ = godotenv.Load()
}

// PortfolioFile returns the portfolio file to work on.
func PortfolioFile() string {
	if *portfolioFile != "" {
		return *portfolioFile
	}
	if v := os.Getenv(envPortfolioFile); v != "" {
		return v
	}
	return defaultPortfolioFile
}

// Logger returns the logger for diagnostics, writing to stderr.
func Logger() zerolog.Logger {
	level := *logLevel
	if level == "" {
		level = os.Getenv(envLogLevel)
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func isDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return true
	}
	return false
}

// OpenPortfolio loads the portfolio from the portfolio file.
func OpenPortfolio(ctx context.Context) (*eportfolio.Portfolio, error) {
	return openPortfolio(ctx, Logger())
}

func openPortfolio(ctx context.Context, log zerolog.Logger) (*eportfolio.Portfolio, error) {
	path := PortfolioFile()
	if !isDatabase(path) {
		return eportfolio.LoadFile(path, log)
	}

	holdings, err := sqlite.Load(ctx, path, log.With().Str("database", path).Logger())
	if err != nil {
		return nil, fmt.Errorf("could not load portfolio database %q: %w", path, err)
	}
	p := eportfolio.New()
	if err := p.Load(holdings...); err != nil {
		return nil, fmt.Errorf("could not load portfolio database %q: %w", path, err)
	}
	return p, nil
}

// SavePortfolio writes the portfolio back to the portfolio file.
func SavePortfolio(ctx context.Context, p *eportfolio.Portfolio) error {
	path := PortfolioFile()
	if isDatabase(path) {
		return sqlite.Save(ctx, path, p.Holdings())
	}
	return eportfolio.SaveFile(path, p)
}

// printMarkdown prints md styled for the terminal, or raw with -raw.
func printMarkdown(md string) {
	if *raw {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseMoney parses a price flag, it must be positive.
func parseMoney(name, s string) (eportfolio.Money, error) {
	m, err := eportfolio.ParseMoney(s)
	if err != nil {
		return m, fmt.Errorf("-%s: %w", name, err)
	}
	if !m.IsPositive() {
		return m, fmt.Errorf("-%s: must be greater than 0", name)
	}
	return m, nil
}
