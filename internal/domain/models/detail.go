package models

import "github.com/guregu/null/v6"

// CompanyDetail is the denormalized read model served by the detail endpoint.
// Company fields are flattened into the top-level JSON object.
//
// swagger:model CompanyDetail
type CompanyDetail struct {
	Company

	StockPrices   []PriceSnapshot        `json:"stock_prices"`
	Shareholdings []ShareholdingSnapshot `json:"shareholdings"`
	BoardMembers  []BoardMember          `json:"board_members"`
	Subsidiaries  []Subsidiary           `json:"subsidiaries"`
	Highlights    []Highlight            `json:"highlights"`

	LatestPrice        *PriceSnapshot        `json:"latest_price"`
	LatestShareholding *ShareholdingSnapshot `json:"latest_shareholding"`
	MarketCap          Figure                `json:"market_cap" swaggertype:"string" example:"N/A"`
}

// CompanySummary is one row of the listing and search endpoints.
//
// swagger:model CompanySummary
type CompanySummary struct {
	ID               int64           `json:"id" example:"42"`
	Name             string          `json:"name" example:"Acme Ltd"`
	Symbol           null.String     `json:"symbol" swaggertype:"string" example:"ACME"`
	Logo             null.String     `json:"logo" swaggertype:"string"`
	Price            Figure          `json:"price" swaggertype:"string" example:"110.50"`
	ChangePercentage Number          `json:"change_percentage" swaggertype:"number" example:"0"`
	TradeDate        null.Time       `json:"trade_date" swaggertype:"string"`
	Volume           null.Int        `json:"volume" swaggertype:"integer"`
	MarketCap        Figure          `json:"market_cap" swaggertype:"string" example:"N/A"`
}
