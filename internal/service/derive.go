package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/guttosm/sharedesk/internal/domain/models"
)

// sortPricesDesc returns a copy of prices ordered by trade_date, most recent
// first. Equal dates keep their retrieval order; undated snapshots go last.
func sortPricesDesc(prices []models.PriceSnapshot) []models.PriceSnapshot {
	out := append(make([]models.PriceSnapshot, 0, len(prices)), prices...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].TradeDate, out[j].TradeDate
		if !a.Valid || !b.Valid {
			return a.Valid && !b.Valid
		}
		return a.Time.After(b.Time)
	})
	return out
}

// sortShareholdingsDesc orders by as_of_date with the same rules as sortPricesDesc.
func sortShareholdingsDesc(holdings []models.ShareholdingSnapshot) []models.ShareholdingSnapshot {
	out := append(make([]models.ShareholdingSnapshot, 0, len(holdings)), holdings...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].AsOfDate, out[j].AsOfDate
		if !a.Valid || !b.Valid {
			return a.Valid && !b.Valid
		}
		return a.Time.After(b.Time)
	})
	return out
}

// latestPriceFold picks the most recent snapshot without sorting. A winner
// without a trade_date loses to any candidate; among dated snapshots only a
// strictly later one replaces the current winner. Returns nil when empty.
func latestPriceFold(prices []models.PriceSnapshot) *models.PriceSnapshot {
	var latest *models.PriceSnapshot
	for i := range prices {
		p := &prices[i]
		if latest == nil || !latest.TradeDate.Valid ||
			(p.TradeDate.Valid && p.TradeDate.Time.After(latest.TradeDate.Time)) {
			latest = p
		}
	}
	if latest == nil {
		return nil
	}
	cp := *latest
	return &cp
}

// buildDetail assembles the denormalized detail read model.
func buildDetail(
	company models.Company,
	prices []models.PriceSnapshot,
	holdings []models.ShareholdingSnapshot,
	members []models.BoardMember,
	subsidiaries []models.Subsidiary,
	highlights []models.Highlight,
) *models.CompanyDetail {
	d := &models.CompanyDetail{
		Company:       company,
		StockPrices:   sortPricesDesc(prices),
		Shareholdings: sortShareholdingsDesc(holdings),
		BoardMembers:  nonNil(members),
		Subsidiaries:  nonNil(subsidiaries),
		Highlights:    nonNil(highlights),
	}

	if len(d.StockPrices) > 0 {
		lp := d.StockPrices[0]
		d.LatestPrice = &lp
		d.MarketCap = models.FigureOf(lp.MarketCap)
	}
	if len(d.Shareholdings) > 0 {
		ls := d.Shareholdings[0]
		d.LatestShareholding = &ls
	}
	return d
}

// summarize renders a company and its latest snapshot (possibly nil) as a
// listing row. A missing price renders as "N/A", a missing change as 0.
func summarize(c models.Company, latest *models.PriceSnapshot) models.CompanySummary {
	s := models.CompanySummary{
		ID:               c.ID,
		Name:             c.Name,
		Symbol:           c.Symbol,
		Logo:             c.Logo,
		ChangePercentage: models.NumberOf(decimal.Zero),
	}
	if latest == nil {
		return s
	}
	s.Price = models.FigureOf(latest.Price)
	if latest.ChangePercentage.Valid {
		s.ChangePercentage = models.NumberOf(latest.ChangePercentage.Decimal)
	}
	s.TradeDate = latest.TradeDate
	s.Volume = latest.Volume
	s.MarketCap = models.FigureOf(latest.MarketCap)
	return s
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
