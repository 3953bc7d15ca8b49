package storage

import (
	"context"
	"database/sql"
	"time"

	pq "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/guttosm/sharedesk/internal/domain/models"
)

// PricesRepository covers the write side of price history used by the importer.
type PricesRepository interface {
	CompanyIDsBySymbol(ctx context.Context, symbols []string) (map[string]int64, error)
	HasImportForDate(ctx context.Context, date time.Time) (bool, error)
	ImportDay(ctx context.Context, day DayImport) error
}

// DayImport is one trade date's worth of snapshots read from a single file.
type DayImport struct {
	Date      time.Time
	Filename  string
	Snapshots []models.PriceSnapshot
	Replace   bool // delete the date's existing snapshots first
	BatchSize int  // rows per COPY; <= 0 means a single COPY
}

type pricesRepository struct {
	db *sql.DB
}

func NewPricesRepository(db *sql.DB) PricesRepository {
	return &pricesRepository{db: db}
}

// CompanyIDsBySymbol resolves ticker symbols (case-insensitive) to company ids.
// Symbols without a company are absent from the result.
func (r *pricesRepository) CompanyIDsBySymbol(ctx context.Context, symbols []string) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT UPPER(symbol), id
		FROM companies
		WHERE UPPER(symbol) = ANY($1)
		ORDER BY id ASC
	`, pq.Array(symbols))
	if err != nil {
		return nil, errors.Wrap(err, "query company symbols")
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]int64, len(symbols))
	for rows.Next() {
		var (
			sym string
			id  int64
		)
		if err := rows.Scan(&sym, &id); err != nil {
			return nil, errors.Wrap(err, "scan company symbol")
		}
		if _, dup := out[sym]; !dup {
			out[sym] = id
		}
	}
	return out, errors.Wrap(rows.Err(), "iterate company symbols")
}

// HasImportForDate checks if a price file was already imported for a trade date.
func (r *pricesRepository) HasImportForDate(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM import_log WHERE trade_date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "check import_log")
	}
	return exists, nil
}

// ImportDay writes a trade date in one transaction: the optional delete, every
// COPY batch and the import_log entry commit together or not at all.
func (r *pricesRepository) ImportDay(ctx context.Context, day DayImport) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() { _ = tx.Rollback() }()

	if day.Replace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM stock_prices WHERE trade_date = $1`, day.Date); err != nil {
			return errors.Wrap(err, "delete stock_prices")
		}
	}

	batch := day.BatchSize
	if batch <= 0 {
		batch = len(day.Snapshots)
	}
	for start := 0; start < len(day.Snapshots); start += batch {
		end := min(start+batch, len(day.Snapshots))
		if err := copyPrices(ctx, tx, day.Snapshots[start:end]); err != nil {
			return errors.Wrapf(err, "rows %d-%d", start+1, end)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO import_log (trade_date, filename, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (trade_date)
		DO UPDATE SET filename = EXCLUDED.filename,
					  row_count = EXCLUDED.row_count,
					  imported_at = NOW()
	`, day.Date, day.Filename, len(day.Snapshots)); err != nil {
		return errors.Wrap(err, "upsert import_log")
	}

	return errors.Wrap(tx.Commit(), "commit")
}

// copyPrices streams snapshots into stock_prices with COPY inside tx.
func copyPrices(ctx context.Context, tx *sql.Tx, snapshots []models.PriceSnapshot) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"stock_prices",
		"company_id",
		"price",
		"change_percentage",
		"trade_date",
		"volume",
		"market_cap",
		"pe_ratio",
		"book_value",
	))
	if err != nil {
		return errors.Wrap(err, "prepare copy")
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range snapshots {
		if _, err := stmt.ExecContext(ctx,
			p.CompanyID,
			p.Price,
			p.ChangePercentage,
			p.TradeDate,
			p.Volume,
			p.MarketCap,
			p.PERatio,
			p.BookValue,
		); err != nil {
			return errors.Wrap(err, "copy row")
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return errors.Wrap(err, "flush copy")
	}
	return errors.Wrap(stmt.Close(), "close copy")
}
