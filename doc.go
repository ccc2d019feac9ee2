// Package eportfolio manages a small investment portfolio of stocks and
// mutual funds.
//
// A Portfolio keeps its holdings in insertion order, one per symbol, and a
// keyword index over their names and symbols for search. Amounts are exact
// decimals (see Money); a transaction fee is added to the book value when a
// position is opened and deducted from the payment when units are sold:
//   - Buy opens a position or adds units to an existing one.
//   - Sell reports the proceeds and the realized gain, and removes a fully
//     sold position.
//   - UpdatePrice and Reprice set the latest prices.
//   - TotalGain and IndividualGains report unrealized gains.
//   - Search and Select find holdings by keywords, symbol and price range.
//
// Portfolios are persisted in a human-readable text file (see DecodeHoldings
// and EncodeHoldings). Package sqlite offers a database alternative.
//
// This package is the foundational logic of the `epf` command-line tool.
package eportfolio
