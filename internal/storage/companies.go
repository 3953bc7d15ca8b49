package storage

import (
	"context"
	"database/sql"
	"strings"

	pq "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/guttosm/sharedesk/internal/domain/models"
)

// CompanyRepository is the read boundary of the company aggregator.
//
// Child collections are returned in retrieval order (ascending id); derivation
// of "latest" values is left to the service layer.
type CompanyRepository interface {
	FindCompanies(ctx context.Context, identifier string) ([]models.Company, error)
	ListPrices(ctx context.Context, companyID int64) ([]models.PriceSnapshot, error)
	ListShareholdings(ctx context.Context, companyID int64) ([]models.ShareholdingSnapshot, error)
	ListBoardMembers(ctx context.Context, companyID int64) ([]models.BoardMember, error)
	ListSubsidiaries(ctx context.Context, companyID int64) ([]models.Subsidiary, error)
	ListHighlights(ctx context.Context, companyID int64) ([]models.Highlight, error)
	ListCompaniesWithPrices(ctx context.Context) ([]models.CompanyWithPrices, error)
	SearchCompanies(ctx context.Context, query string, limit int) ([]models.CompanyWithPrices, error)
}

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) CompanyRepository {
	return &companyRepository{db: db}
}

const companyColumns = `c.id, c.name, c.symbol, c.sector, c.face_value, c.about, c.logo, c.cin, c.registered_office, c.incorporation_date`

const priceColumns = `p.id, p.company_id, p.price, p.change_percentage, p.trade_date, p.volume, p.market_cap, p.pe_ratio, p.book_value`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner, extra ...any) (models.Company, error) {
	var c models.Company
	dest := []any{
		&c.ID, &c.Name, &c.Symbol, &c.Sector, &c.FaceValue,
		&c.About, &c.Logo, &c.CIN, &c.RegisteredOffice, &c.IncorporationDate,
	}
	err := row.Scan(append(dest, extra...)...)
	return c, err
}

func priceDest(p *models.PriceSnapshot) []any {
	return []any{
		&p.ID, &p.CompanyID, &p.Price, &p.ChangePercentage, &p.TradeDate,
		&p.Volume, &p.MarketCap, &p.PERatio, &p.BookValue,
	}
}

// FindCompanies returns every company whose name equals identifier or whose
// id renders as identifier. Name matches come first, then ascending id, so
// callers that take the first row get a deterministic canonical record.
func (r *companyRepository) FindCompanies(ctx context.Context, identifier string) ([]models.Company, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+companyColumns+`
		FROM companies c
		WHERE c.name = $1 OR CAST(c.id AS TEXT) = $1
		ORDER BY (c.name = $1) DESC, c.id ASC
	`, identifier)
	if err != nil {
		return nil, errors.Wrap(err, "query companies")
	}
	defer func() { _ = rows.Close() }()

	var out []models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan company")
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "iterate companies")
}

func (r *companyRepository) ListPrices(ctx context.Context, companyID int64) ([]models.PriceSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+priceColumns+`
		FROM stock_prices p
		WHERE p.company_id = $1
		ORDER BY p.id ASC
	`, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "query stock_prices")
	}
	defer func() { _ = rows.Close() }()

	out := []models.PriceSnapshot{}
	for rows.Next() {
		var p models.PriceSnapshot
		if err := rows.Scan(priceDest(&p)...); err != nil {
			return nil, errors.Wrap(err, "scan stock_price")
		}
		out = append(out, p)
	}
	return out, errors.Wrap(rows.Err(), "iterate stock_prices")
}

func (r *companyRepository) ListShareholdings(ctx context.Context, companyID int64) ([]models.ShareholdingSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, company_id, category, shares, percentage, as_of_date
		FROM shareholdings
		WHERE company_id = $1
		ORDER BY id ASC
	`, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "query shareholdings")
	}
	defer func() { _ = rows.Close() }()

	out := []models.ShareholdingSnapshot{}
	for rows.Next() {
		var s models.ShareholdingSnapshot
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Category, &s.Shares, &s.Percentage, &s.AsOfDate); err != nil {
			return nil, errors.Wrap(err, "scan shareholding")
		}
		out = append(out, s)
	}
	return out, errors.Wrap(rows.Err(), "iterate shareholdings")
}

func (r *companyRepository) ListBoardMembers(ctx context.Context, companyID int64) ([]models.BoardMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, company_id, name, position, category
		FROM board_members
		WHERE company_id = $1
		ORDER BY id ASC
	`, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "query board_members")
	}
	defer func() { _ = rows.Close() }()

	out := []models.BoardMember{}
	for rows.Next() {
		var m models.BoardMember
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Name, &m.Position, &m.Category); err != nil {
			return nil, errors.Wrap(err, "scan board_member")
		}
		out = append(out, m)
	}
	return out, errors.Wrap(rows.Err(), "iterate board_members")
}

func (r *companyRepository) ListSubsidiaries(ctx context.Context, companyID int64) ([]models.Subsidiary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, company_id, name, relationship_type, ownership_percentage
		FROM subsidiaries
		WHERE company_id = $1
		ORDER BY id ASC
	`, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "query subsidiaries")
	}
	defer func() { _ = rows.Close() }()

	out := []models.Subsidiary{}
	for rows.Next() {
		var s models.Subsidiary
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.RelationshipType, &s.OwnershipPercentage); err != nil {
			return nil, errors.Wrap(err, "scan subsidiary")
		}
		out = append(out, s)
	}
	return out, errors.Wrap(rows.Err(), "iterate subsidiaries")
}

func (r *companyRepository) ListHighlights(ctx context.Context, companyID int64) ([]models.Highlight, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, company_id, highlight
		FROM company_highlights
		WHERE company_id = $1
		ORDER BY id ASC
	`, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "query company_highlights")
	}
	defer func() { _ = rows.Close() }()

	out := []models.Highlight{}
	for rows.Next() {
		var h models.Highlight
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.Highlight); err != nil {
			return nil, errors.Wrap(err, "scan highlight")
		}
		out = append(out, h)
	}
	return out, errors.Wrap(rows.Err(), "iterate company_highlights")
}

// ListCompaniesWithPrices returns every company with its price snapshots in a
// single LEFT JOIN. Companies without snapshots are kept with an empty slice;
// filtering is a service concern.
func (r *companyRepository) ListCompaniesWithPrices(ctx context.Context) ([]models.CompanyWithPrices, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+companyColumns+`, `+priceColumns+`
		FROM companies c
		LEFT JOIN stock_prices p ON p.company_id = c.id
		ORDER BY c.id ASC, p.id ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query companies with prices")
	}
	defer func() { _ = rows.Close() }()

	out := []models.CompanyWithPrices{}
	index := map[int64]int{}
	for rows.Next() {
		var (
			p         models.PriceSnapshot
			priceID   sql.NullInt64
			companyFK sql.NullInt64
		)
		dest := priceDest(&p)
		dest[0], dest[1] = &priceID, &companyFK

		c, err := scanCompany(rows, dest...)
		if err != nil {
			return nil, errors.Wrap(err, "scan company with price")
		}

		i, seen := index[c.ID]
		if !seen {
			out = append(out, models.CompanyWithPrices{Company: c, Prices: []models.PriceSnapshot{}})
			i = len(out) - 1
			index[c.ID] = i
		}
		if priceID.Valid {
			p.ID = priceID.Int64
			p.CompanyID = c.ID
			out[i].Prices = append(out[i].Prices, p)
		}
	}
	return out, errors.Wrap(rows.Err(), "iterate companies with prices")
}

// SearchCompanies matches query as a case-insensitive substring of name or
// symbol, ordered by name and bounded by limit. Prices of the hits are loaded
// in a second query, most recent trade_date first.
func (r *companyRepository) SearchCompanies(ctx context.Context, query string, limit int) ([]models.CompanyWithPrices, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+companyColumns+`
		FROM companies c
		WHERE c.name ILIKE $1 OR c.symbol ILIKE $1
		ORDER BY c.name ASC
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, errors.Wrap(err, "search companies")
	}

	out := []models.CompanyWithPrices{}
	index := map[int64]int{}
	var ids []int64
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "scan company")
		}
		index[c.ID] = len(out)
		ids = append(ids, c.ID)
		out = append(out, models.CompanyWithPrices{Company: c, Prices: []models.PriceSnapshot{}})
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, errors.Wrap(err, "iterate companies")
	}
	_ = rows.Close()

	if len(ids) == 0 {
		return out, nil
	}

	prices, err := r.db.QueryContext(ctx, `
		SELECT `+priceColumns+`
		FROM stock_prices p
		WHERE p.company_id = ANY($1)
		ORDER BY p.company_id, p.trade_date DESC NULLS LAST, p.id ASC
	`, pq.Array(ids))
	if err != nil {
		return nil, errors.Wrap(err, "query search prices")
	}
	defer func() { _ = prices.Close() }()

	for prices.Next() {
		var p models.PriceSnapshot
		if err := prices.Scan(priceDest(&p)...); err != nil {
			return nil, errors.Wrap(err, "scan search price")
		}
		if i, ok := index[p.CompanyID]; ok {
			out[i].Prices = append(out[i].Prices, p)
		}
	}
	return out, errors.Wrap(prices.Err(), "iterate search prices")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input literal inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
