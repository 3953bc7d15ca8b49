package models

import (
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// Company is the root record of every detail response. All child collections
// reference it through company_id.
//
// swagger:model Company
type Company struct {
	ID                int64               `json:"id" example:"42"`
	Name              string              `json:"name" example:"Acme Ltd"`
	Symbol            null.String         `json:"symbol" swaggertype:"string" example:"ACME"`
	Sector            null.String         `json:"sector" swaggertype:"string" example:"Fintech"`
	FaceValue         decimal.NullDecimal `json:"face_value" swaggertype:"string" example:"10"`
	About             null.String         `json:"about" swaggertype:"string"`
	Logo              null.String         `json:"logo" swaggertype:"string"`
	CIN               null.String         `json:"cin" swaggertype:"string"`
	RegisteredOffice  null.String         `json:"registered_office" swaggertype:"string"`
	IncorporationDate null.Time           `json:"incorporation_date" swaggertype:"string"`
}

// PriceSnapshot is one dated price observation of a company.
// Several snapshots may share a trade_date; the store does not enforce uniqueness.
type PriceSnapshot struct {
	ID               int64               `json:"id"`
	CompanyID        int64               `json:"company_id"`
	Price            decimal.NullDecimal `json:"price" swaggertype:"string" example:"110.50"`
	ChangePercentage decimal.NullDecimal `json:"change_percentage" swaggertype:"string" example:"2.35"`
	TradeDate        null.Time           `json:"trade_date" swaggertype:"string" example:"2024-03-01T00:00:00Z"`
	Volume           null.Int            `json:"volume" swaggertype:"integer"`
	MarketCap        decimal.NullDecimal `json:"market_cap" swaggertype:"string"`
	PERatio          decimal.NullDecimal `json:"pe_ratio" swaggertype:"string"`
	BookValue        decimal.NullDecimal `json:"book_value" swaggertype:"string"`
}

// ShareholdingSnapshot is the holding of one investor category as of a date.
type ShareholdingSnapshot struct {
	ID         int64               `json:"id"`
	CompanyID  int64               `json:"company_id"`
	Category   string              `json:"category" example:"Promoters"`
	Shares     null.Int            `json:"shares" swaggertype:"integer"`
	Percentage decimal.NullDecimal `json:"percentage" swaggertype:"string" example:"51.20"`
	AsOfDate   null.Time           `json:"as_of_date" swaggertype:"string"`
}

type BoardMember struct {
	ID        int64       `json:"id"`
	CompanyID int64       `json:"company_id"`
	Name      string      `json:"name"`
	Position  null.String `json:"position" swaggertype:"string"`
	Category  null.String `json:"category" swaggertype:"string"`
}

type Subsidiary struct {
	ID                  int64               `json:"id"`
	CompanyID           int64               `json:"company_id"`
	Name                string              `json:"name"`
	RelationshipType    null.String         `json:"relationship_type" swaggertype:"string"`
	OwnershipPercentage decimal.NullDecimal `json:"ownership_percentage" swaggertype:"string"`
}

type Highlight struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Highlight string `json:"highlight"`
}

// CompanyWithPrices is the read model used by listing and search: a root
// record plus its price snapshots in store order.
type CompanyWithPrices struct {
	Company
	Prices []PriceSnapshot
}
