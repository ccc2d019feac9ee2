package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/eportfolio"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// usePortfolioFile points the global portfolio file flag to path for the test.
func usePortfolioFile(t *testing.T, path string) {
	t.Helper()
	oldFile, oldRaw := portfolioFile, raw
	rawOutput := true
	portfolioFile, raw = &path, &rawOutput
	t.Cleanup(func() { portfolioFile, raw = oldFile, oldRaw })
}

// run executes cmd with args and returns its exit status.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: invalid arguments %v: %v", cmd.Name(), args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func loadPortfolio(t *testing.T) *eportfolio.Portfolio {
	t.Helper()
	p, err := openPortfolio(context.Background(), zerolog.Nop())
	if err != nil {
		t.Fatalf("openPortfolio() error = %v", err)
	}
	return p
}

func TestCommands(t *testing.T) {
	for _, file := range []string{"portfolio.txt", "portfolio.db"} {
		t.Run(file, func(t *testing.T) {
			usePortfolioFile(t, filepath.Join(t.TempDir(), file))

			steps := []struct {
				cmd  subcommands.Command
				args []string
			}{
				{&buyCmd{}, []string{"-s", "ABC", "-n", "Alpha Beta Corp", "-q", "100", "-p", "10"}},
				{&buyCmd{}, []string{"-t", "mutualfund", "-s", "TGF", "-n", "Tech Growth Fund", "-q", "10", "-p", "20"}},
				{&sellCmd{}, []string{"-s", "abc", "-q", "50", "-p", "12"}},
				{&updateCmd{}, []string{"-s", "TGF", "-p", "25"}},
				{&gainsCmd{}, nil},
				{&searchCmd{}, []string{"tech"}},
				{&listCmd{}, []string{"-json"}},
			}
			for _, s := range steps {
				if status := run(t, s.cmd, s.args...); status != subcommands.ExitSuccess {
					t.Fatalf("%s %v = %v, want success", s.cmd.Name(), s.args, status)
				}
			}

			p := loadPortfolio(t)
			abc, ok := p.Find("ABC")
			if !ok || abc.Quantity() != 50 || abc.BookValue().Fixed() != "505.00" {
				t.Errorf("ABC = %v, want 50 units with a book value of 505.00", abc)
			}
			tgf, ok := p.Find("TGF")
			if !ok || tgf.Kind() != eportfolio.MutualFund || tgf.Price().Fixed() != "25.00" {
				t.Errorf("TGF = %v, want a mutual fund priced 25.00", tgf)
			}
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	usePortfolioFile(t, filepath.Join(t.TempDir(), "portfolio.txt"))
	if status := run(t, &buyCmd{}, "-s", "ABC", "-n", "Alpha", "-q", "10", "-p", "10"); status != subcommands.ExitSuccess {
		t.Fatalf("buy = %v, want success", status)
	}

	testCases := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want subcommands.ExitStatus
	}{
		{"buy without symbol", &buyCmd{}, []string{"-q", "1", "-p", "1"}, subcommands.ExitUsageError},
		{"buy unknown type", &buyCmd{}, []string{"-t", "bond", "-s", "B", "-n", "B", "-q", "1", "-p", "1"}, subcommands.ExitUsageError},
		{"buy zero price", &buyCmd{}, []string{"-s", "B", "-n", "B", "-q", "1", "-p", "0"}, subcommands.ExitUsageError},
		{"buy other type", &buyCmd{}, []string{"-t", "mutualfund", "-s", "ABC", "-q", "1", "-p", "1"}, subcommands.ExitFailure},
		{"buy new without name", &buyCmd{}, []string{"-s", "NEW", "-q", "1", "-p", "1"}, subcommands.ExitFailure},
		{"sell unknown", &sellCmd{}, []string{"-s", "XYZ", "-q", "1", "-p", "1"}, subcommands.ExitFailure},
		{"sell too many", &sellCmd{}, []string{"-s", "ABC", "-q", "11", "-p", "1"}, subcommands.ExitFailure},
		{"update unknown", &updateCmd{}, []string{"-s", "XYZ", "-p", "1"}, subcommands.ExitFailure},
		{"update both modes", &updateCmd{}, []string{"-s", "ABC", "-p", "1", "-quotes", "q.json"}, subcommands.ExitUsageError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status := run(t, tc.cmd, tc.args...); status != tc.want {
				t.Errorf("%s %v = %v, want %v", tc.cmd.Name(), tc.args, status, tc.want)
			}
		})
	}

	h, _ := loadPortfolio(t).Find("ABC")
	if h.Quantity() != 10 || h.Price().Fixed() != "10.00" {
		t.Errorf("failed commands changed ABC: %v", h)
	}
}

func TestUpdateCmd_Quotes(t *testing.T) {
	dir := t.TempDir()
	usePortfolioFile(t, filepath.Join(dir, "portfolio.txt"))
	for _, args := range [][]string{
		{"-s", "ABC", "-n", "Alpha", "-q", "10", "-p", "10"},
		{"-s", "XYZ", "-n", "Xylo", "-q", "10", "-p", "10"},
	} {
		if status := run(t, &buyCmd{}, args...); status != subcommands.ExitSuccess {
			t.Fatalf("buy %v = %v", args, status)
		}
	}

	quotes := filepath.Join(dir, "quotes.json")
	if err := os.WriteFile(quotes, []byte(`{"data": {"quotes": {"xyz": "11.5", "OTHER": 3}}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if status := run(t, &updateCmd{}, "-quotes", quotes, "-path", "$.data.quotes"); status != subcommands.ExitSuccess {
		t.Fatalf("update -quotes = %v, want success", status)
	}

	p := loadPortfolio(t)
	for symbol, want := range map[string]string{"ABC": "10.00", "XYZ": "11.50"} {
		if h, _ := p.Find(symbol); h.Price().Fixed() != want {
			t.Errorf("%s price = %s, want %s", symbol, h.Price().Fixed(), want)
		}
	}
}

func TestPortfolioFile(t *testing.T) {
	old := portfolioFile
	t.Cleanup(func() { portfolioFile = old })
	empty := ""
	portfolioFile = &empty

	t.Setenv(envPortfolioFile, "")
	if got := PortfolioFile(); got != defaultPortfolioFile {
		t.Errorf("PortfolioFile() = %q, want %q", got, defaultPortfolioFile)
	}
	t.Setenv(envPortfolioFile, "from-env.db")
	if got := PortfolioFile(); got != "from-env.db" {
		t.Errorf("PortfolioFile() = %q, want from-env.db", got)
	}
	if !isDatabase(PortfolioFile()) || isDatabase("portfolio.txt") || !isDatabase("x.SQLITE") {
		t.Error("isDatabase() does not recognize database extensions")
	}
	flagValue := "from-flag.txt"
	portfolioFile = &flagValue
	if got := PortfolioFile(); !strings.HasSuffix(got, "from-flag.txt") {
		t.Errorf("PortfolioFile() = %q, want from-flag.txt", got)
	}
}
