package importer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"

	"github.com/guttosm/sharedesk/internal/domain/models"
	"github.com/guttosm/sharedesk/internal/storage"
)

// expectedHeaders is the exact column layout of a daily price file.
var expectedHeaders = []string{
	"symbol",
	"price",
	"change_percentage",
	"volume",
	"market_cap",
	"pe_ratio",
	"book_value",
}

// priceRow mirrors one CSV line. Every cell is read as text so that empty
// cells can become NULL instead of zero.
type priceRow struct {
	Symbol           string `csv:"symbol"`
	Price            string `csv:"price"`
	ChangePercentage string `csv:"change_percentage"`
	Volume           string `csv:"volume"`
	MarketCap        string `csv:"market_cap"`
	PERatio          string `csv:"pe_ratio"`
	BookValue        string `csv:"book_value"`
}

// loadFile validates and parses one price file and resolves every symbol to
// a company id. It fails on a header mismatch, a malformed number, a blank
// symbol or a symbol that does not belong to any company. It never writes;
// persisting the result is left to a single ImportDay call.
func loadFile(ctx context.Context, path string, tradeDate time.Time, repo storage.PricesRepository) ([]models.PriceSnapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	if err := checkHeader(raw); err != nil {
		return nil, err
	}

	var rows []*priceRow
	if err := gocsv.Unmarshal(bytes.NewReader(raw), &rows); err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	snapshots := make([]models.PriceSnapshot, 0, len(rows))
	symbols := make([]string, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // header is line 1
		p, sym, err := row.toSnapshot(tradeDate)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		snapshots = append(snapshots, p)
		symbols = append(symbols, sym)
	}
	if len(snapshots) == 0 {
		return snapshots, nil
	}

	ids, err := repo.CompanyIDsBySymbol(ctx, dedupe(symbols))
	if err != nil {
		return nil, fmt.Errorf("resolve symbols: %w", err)
	}
	var unknown []string
	for i, sym := range symbols {
		id, ok := ids[sym]
		if !ok {
			unknown = append(unknown, sym)
			continue
		}
		snapshots[i].CompanyID = id
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown symbols: %s", strings.Join(dedupe(unknown), ", "))
	}

	return snapshots, nil
}

func checkHeader(raw []byte) error {
	first, _, _ := bytes.Cut(raw, []byte("\n"))
	header := strings.Split(strings.TrimRight(string(first), "\r"), ",")
	if len(header) != len(expectedHeaders) {
		return fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}
	return nil
}

// toSnapshot converts a row into a snapshot without a company id; the
// returned symbol is upper-cased for lookup.
func (r *priceRow) toSnapshot(tradeDate time.Time) (models.PriceSnapshot, string, error) {
	p := models.PriceSnapshot{TradeDate: null.TimeFrom(tradeDate)}

	sym := strings.ToUpper(strings.TrimSpace(r.Symbol))
	if sym == "" {
		return p, "", fmt.Errorf("symbol is required")
	}

	var err error
	if p.Price, err = parseDecimal("price", r.Price); err != nil {
		return p, sym, err
	}
	if p.ChangePercentage, err = parseDecimal("change_percentage", r.ChangePercentage); err != nil {
		return p, sym, err
	}
	if p.MarketCap, err = parseDecimal("market_cap", r.MarketCap); err != nil {
		return p, sym, err
	}
	if p.PERatio, err = parseDecimal("pe_ratio", r.PERatio); err != nil {
		return p, sym, err
	}
	if p.BookValue, err = parseDecimal("book_value", r.BookValue); err != nil {
		return p, sym, err
	}
	if s := strings.TrimSpace(r.Volume); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p, sym, fmt.Errorf("invalid volume %q: %w", s, err)
		}
		p.Volume = null.IntFrom(v)
	}
	return p, sym, nil
}

// parseDecimal maps an empty cell to NULL.
func parseDecimal(field, s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return decimal.NewNullDecimal(d), nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
