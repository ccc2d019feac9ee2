package eportfolio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// The portfolio file is human-readable: one block of `key = "value"` lines per
// holding, blocks separated by a blank line.
//
//	type = "stock"
//	symbol = "ABC"
//	name = "Alpha Beta Corp"
//	quantity = "100"
//	price = "10"
//	bookValue = "1009.99"
//
// Decoding tolerates bad blocks: each one is logged and skipped, the rest of
// the file is still loaded.

const (
	attrType      = "type"
	attrSymbol    = "symbol"
	attrName      = "name"
	attrQuantity  = "quantity"
	attrPrice     = "price"
	attrBookValue = "bookValue"
)

var requiredAttrs = []string{attrType, attrSymbol, attrName, attrQuantity, attrPrice, attrBookValue}

// quotes normalizes typographic quotes that editors like to insert.
var quotes = strings.NewReplacer("“", `"`, "”", `"`)

// block is the raw content of a holding entry in the file.
type block struct {
	line   int // line number of the first attribute, for diagnostics
	values map[string]string
	err    error // first syntax error found in the block
}

// holding builds and validates the holding described by the block.
func (b *block) holding() (*Holding, error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, attr := range requiredAttrs {
		if _, ok := b.values[attr]; !ok {
			return nil, fmt.Errorf("missing %q", attr)
		}
	}
	kind, err := ParseKind(b.values[attrType])
	if err != nil {
		return nil, err
	}
	quantity, err := strconv.Atoi(b.values[attrQuantity])
	if err != nil {
		return nil, fmt.Errorf("invalid %q: %w", attrQuantity, err)
	}
	price, err := ParseMoney(b.values[attrPrice])
	if err != nil {
		return nil, fmt.Errorf("invalid %q: %w", attrPrice, err)
	}
	bookValue, err := ParseMoney(b.values[attrBookValue])
	if err != nil {
		return nil, fmt.Errorf("invalid %q: %w", attrBookValue, err)
	}
	return NewHolding(kind, b.values[attrSymbol], b.values[attrName], quantity, price, bookValue)
}

// parseAttr splits a `key = "value"` line.
func parseAttr(line string) (key, value string, err error) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", fmt.Errorf("expecting 'key = \"value\"', got %q", line)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if unquoted, err := strconv.Unquote(value); err == nil {
		value = unquoted
	} else {
		value = strings.Trim(value, `"`)
	}
	return key, strings.TrimSpace(value), nil
}

// DecodeHoldings reads holdings in the portfolio file format.
//
// Invalid entries, including a symbol already decoded, are logged as warnings
// on log and skipped. The returned error is only about reading r.
func DecodeHoldings(r io.Reader, log zerolog.Logger) ([]*Holding, error) {
	var holdings []*Holding
	symbols := make(map[string]bool)

	var current *block
	flush := func() {
		if current == nil {
			return
		}
		b := current
		current = nil
		h, err := b.holding()
		if err == nil && symbols[strings.ToLower(h.symbol)] {
			err = fmt.Errorf("symbol %q is already defined", h.symbol)
		}
		if err != nil {
			log.Warn().Int("line", b.line).Str("symbol", b.values[attrSymbol]).Err(err).Msg("skipping invalid investment entry")
			return
		}
		symbols[strings.ToLower(h.symbol)] = true
		holdings = append(holdings, h)
	}

	readLine := func(n int, text string) {
		line := strings.TrimSpace(quotes.Replace(text))
		if line == "" {
			flush()
			return
		}
		if current == nil {
			current = &block{line: n, values: make(map[string]string)}
		}
		key, value, err := parseAttr(line)
		if err != nil {
			if current.err == nil {
				current.err = fmt.Errorf("line %d: %w", n, err)
			}
			return
		}
		current.values[key] = value
	}

	// bufio.Reader has no line length limit, unlike bufio.Scanner.
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading portfolio: %w", err)
		}
		if text != "" {
			readLine(n, text)
		}
		if err != nil {
			break
		}
	}
	// the last entry may not be followed by a blank line.
	flush()
	return holdings, nil
}

// EncodeHoldings writes holdings in the portfolio file format.
func EncodeHoldings(w io.Writer, holdings []*Holding) error {
	bw := bufio.NewWriter(w)
	for _, h := range holdings {
		fmt.Fprintf(bw, "%s = %q\n", attrType, h.kind.String())
		fmt.Fprintf(bw, "%s = %q\n", attrSymbol, h.symbol)
		fmt.Fprintf(bw, "%s = %q\n", attrName, h.name)
		fmt.Fprintf(bw, "%s = \"%d\"\n", attrQuantity, h.quantity)
		fmt.Fprintf(bw, "%s = %q\n", attrPrice, h.price.Decimal().String())
		fmt.Fprintf(bw, "%s = %q\n", attrBookValue, h.bookValue.Fixed())
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// LoadFile decodes the portfolio file at path. A missing file is an empty
// portfolio, the file is created on save.
func LoadFile(path string, log zerolog.Logger) (*Portfolio, error) {
	p := New()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("file", path).Msg("portfolio file not found, a new file will be created upon saving")
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	holdings, err := DecodeHoldings(f, log.With().Str("file", path).Logger())
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", path, err)
	}
	if err := p.Load(holdings...); err != nil {
		return nil, fmt.Errorf("could not load portfolio file %q: %w", path, err)
	}
	return p, nil
}

// SaveFile writes the portfolio to path, replacing its content.
func SaveFile(path string, p *Portfolio) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", path, err)
	}
	if err := EncodeHoldings(f, p.Holdings()); err != nil {
		f.Close()
		return fmt.Errorf("error writing portfolio file %q: %w", path, err)
	}
	return f.Close()
}
