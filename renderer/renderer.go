// Package renderer turns portfolio data into markdown documents, ready to be
// printed raw or styled for a terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/eportfolio"
)

// cell escapes text so that it fits in a markdown table cell.
var cell = strings.NewReplacer("|", `\|`, "\n", " ").Replace

// Holdings renders the list of holdings as a table.
func Holdings(holdings []*eportfolio.Holding) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Portfolio\n\n")
	if len(holdings) == 0 {
		fmt.Fprint(&b, "The portfolio is empty.\n")
		return b.String()
	}
	holdingsTable(&b, holdings)
	return b.String()
}

func holdingsTable(b *strings.Builder, holdings []*eportfolio.Holding) {
	fmt.Fprintln(b, "| Symbol | Name | Type | Quantity | Price | Book Value | Market Value |")
	fmt.Fprintln(b, "|:---|:---|:---|---:|---:|---:|---:|")
	for _, h := range holdings {
		fmt.Fprintf(b, "| %s | %s | %s | %d | %s | %s | %s |\n",
			cell(h.Symbol()), cell(h.Name()), h.Kind(), h.Quantity(), h.Price(), h.BookValue(), h.MarketValue())
	}
}

// Gains renders the gain of each holding followed by the total.
func Gains(gains []eportfolio.Gain, total eportfolio.Money) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Gains\n\n")
	fmt.Fprintln(&b, "| Name | Symbol | Gain |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, g := range gains {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(g.Name), cell(g.Symbol), g.Gain.SignedString())
	}
	fmt.Fprintf(&b, "| **%s** | | **%s** |\n", "Total", total.SignedString())
	return b.String()
}

// Sale renders the outcome of a sale.
func Sale(s eportfolio.Sale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sold %d units of %s\n\n", s.Quantity, s.Symbol)
	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Payment | %s |\n", s.Payment)
	fmt.Fprintf(&b, "| Fee | %s |\n", s.Fee.Neg())
	fmt.Fprintf(&b, "| **Proceeds** | **%s** |\n", s.Proceeds)
	fmt.Fprintf(&b, "| Gain | %s |\n", s.Gain.SignedString())
	if s.Removed {
		fmt.Fprintf(&b, "\nInvestment with symbol '%s' fully sold and removed from portfolio.\n", s.Symbol)
	}
	return b.String()
}

// SearchResults renders the holdings found for a query.
func SearchResults(query string, holdings []*eportfolio.Holding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search results for %q\n\n", query)
	if len(holdings) == 0 {
		fmt.Fprint(&b, "No investments found.\n")
		return b.String()
	}
	holdingsTable(&b, holdings)
	return b.String()
}
