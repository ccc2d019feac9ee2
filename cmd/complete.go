package cmd

import (
	"context"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
)

// Completion describes the commands and their flags for shell completion.
func Completion() *complete.Command {
	symbols := complete.PredictFunc(predictSymbols)
	prices := predict.Something
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*"),
			"log-level":      predict.Set{"debug", "info", "warn", "error"},
			"raw":            nil,
		},
		Sub: map[string]*complete.Command{
			"buy": {Flags: map[string]complete.Predictor{
				"t": predict.Set{"stock", "mutualfund"},
				"s": symbols,
				"n": predict.Something,
				"q": predict.Something,
				"p": prices,
			}},
			"sell": {Flags: map[string]complete.Predictor{
				"s": symbols,
				"q": predict.Something,
				"p": prices,
			}},
			"update": {Flags: map[string]complete.Predictor{
				"s":      symbols,
				"p":      prices,
				"quotes": predict.Files("*.json"),
				"path":   predict.Something,
			}},
			"gains": {},
			"search": {Flags: map[string]complete.Predictor{
				"s":    symbols,
				"low":  prices,
				"high": prices,
			}},
			"list": {Flags: map[string]complete.Predictor{
				"json": nil,
			}},
		},
	}
}

// predictSymbols completes the symbols held in the portfolio file.
func predictSymbols(prefix string) []string {
	p, err := openPortfolio(context.Background(), zerolog.Nop())
	if err != nil {
		return nil
	}
	var symbols []string
	for _, h := range p.Holdings() {
		symbols = append(symbols, h.Symbol())
	}
	return symbols
}
