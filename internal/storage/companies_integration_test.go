//go:build integration
// +build integration

package storage_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/guregu/null/v6"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/sharedesk/internal/app"
	"github.com/guttosm/sharedesk/internal/domain/models"
	"github.com/guttosm/sharedesk/internal/storage"
)

// startPostgres spins up a Postgres container with the schema applied.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "sharedesk",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=sharedesk sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	db, err := sql.Open("postgres", fmt.Sprintf("postgres://postgres:postgres@%s:%s/sharedesk?sslmode=disable", host, port.Port()))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := app.Migrate(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	return db
}

func TestRepositories_Integration(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	if _, err := db.Exec(`INSERT INTO companies (id, name, symbol) VALUES (1, 'Acme Ltd', 'ACME'), (2, '100% Pure_Co', 'PURE'), (3, 'Zeta', NULL)`); err != nil {
		t.Fatalf("seed companies: %v", err)
	}

	prices := storage.NewPricesRepository(db)
	companies := storage.NewCompanyRepository(db)
	d1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	ids, err := prices.CompanyIDsBySymbol(ctx, []string{"ACME", "PURE", "NOPE"})
	if err != nil {
		t.Fatalf("resolve symbols: %v", err)
	}
	if len(ids) != 2 || ids["ACME"] != 1 || ids["PURE"] != 2 {
		t.Fatalf("unexpected ids: %v", ids)
	}

	snap := func(company int64, price string, d time.Time) models.PriceSnapshot {
		return models.PriceSnapshot{
			CompanyID: company,
			Price:     decimal.NewNullDecimal(decimal.RequireFromString(price)),
			TradeDate: null.TimeFrom(d),
			Volume:    null.IntFrom(10),
		}
	}
	if err := prices.ImportDay(ctx, storage.DayImport{
		Date:      d1,
		Filename:  "2024-03-01_prices.csv",
		Snapshots: []models.PriceSnapshot{snap(1, "100", d1), snap(2, "7", d1)},
		BatchSize: 1,
	}); err != nil {
		t.Fatalf("import %v: %v", d1, err)
	}
	if err := prices.ImportDay(ctx, storage.DayImport{
		Date:      d2,
		Filename:  "2024-03-02_prices.csv",
		Snapshots: []models.PriceSnapshot{snap(1, "110.5", d2)},
	}); err != nil {
		t.Fatalf("import %v: %v", d2, err)
	}
	if ok, err := prices.HasImportForDate(ctx, d2); err != nil || !ok {
		t.Fatalf("expected import for %v: %v %v", d2, ok, err)
	}

	t.Run("find by name and id", func(t *testing.T) {
		for _, ident := range []string{"Acme Ltd", "1"} {
			rows, err := companies.FindCompanies(ctx, ident)
			if err != nil || len(rows) != 1 || rows[0].ID != 1 {
				t.Fatalf("%q: %v %+v", ident, err, rows)
			}
		}
	})

	t.Run("child collections are empty, not nil", func(t *testing.T) {
		h, err := companies.ListHighlights(ctx, 3)
		if err != nil || h == nil || len(h) != 0 {
			t.Fatalf("highlights: %v %v", h, err)
		}
	})

	t.Run("listing joins prices", func(t *testing.T) {
		rows, err := companies.ListCompaniesWithPrices(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(rows) != 3 || len(rows[0].Prices) != 2 || len(rows[2].Prices) != 0 {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		rows, err := companies.SearchCompanies(ctx, "100%", 5)
		if err != nil || len(rows) != 1 || rows[0].ID != 2 {
			t.Fatalf("search: %v %+v", err, rows)
		}
		rows, err = companies.SearchCompanies(ctx, "acme", 5)
		if err != nil || len(rows) != 1 || !rows[0].Prices[0].TradeDate.Time.Equal(d2) {
			t.Fatalf("search prices must be newest first: %v %+v", err, rows)
		}
	})

	t.Run("failed import leaves the date untouched", func(t *testing.T) {
		err := prices.ImportDay(ctx, storage.DayImport{
			Date:      d1,
			Filename:  "2024-03-01_prices.csv",
			Snapshots: []models.PriceSnapshot{snap(1, "101", d1), snap(999, "1", d1)},
			Replace:   true,
			BatchSize: 1,
		})
		if err == nil {
			t.Fatalf("expected foreign key failure")
		}
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM stock_prices WHERE trade_date = $1`, d1).Scan(&n); err != nil || n != 2 {
			t.Fatalf("expected the original 2 rows for %v, got %d (%v)", d1, n, err)
		}
	})

	t.Run("force reload replaces a date", func(t *testing.T) {
		err := prices.ImportDay(ctx, storage.DayImport{
			Date:      d1,
			Filename:  "2024-03-01_prices.csv",
			Snapshots: []models.PriceSnapshot{snap(1, "101", d1)},
			Replace:   true,
		})
		if err != nil {
			t.Fatalf("replace: %v", err)
		}
		var n, logged int
		if err := db.QueryRow(`SELECT COUNT(*) FROM stock_prices WHERE trade_date = $1`, d1).Scan(&n); err != nil || n != 1 {
			t.Fatalf("expected 1 row for %v, got %d (%v)", d1, n, err)
		}
		if err := db.QueryRow(`SELECT row_count FROM import_log WHERE trade_date = $1`, d1).Scan(&logged); err != nil || logged != 1 {
			t.Fatalf("import log row_count = %d (%v)", logged, err)
		}
	})

	t.Run("names are unique", func(t *testing.T) {
		if _, err := db.Exec(`INSERT INTO companies (name) VALUES ('Acme Ltd')`); err == nil {
			t.Fatalf("duplicate company name accepted")
		}
	})
}
