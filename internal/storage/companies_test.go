package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

var companyCols = []string{"id", "name", "symbol", "sector", "face_value", "about", "logo", "cin", "registered_office", "incorporation_date"}

var priceCols = []string{"id", "company_id", "price", "change_percentage", "trade_date", "volume", "market_cap", "pe_ratio", "book_value"}

func newMockCompanyRepo(t *testing.T) (*companyRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	return &companyRepository{db: db}, mock, func() { _ = db.Close() }
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindCompanies_SQLMock(t *testing.T) {
	cases := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		wantLen int
		wantErr bool
	}{
		{
			name: "single row",
			rows: sqlmock.NewRows(companyCols).
				AddRow(int64(1), "Acme Ltd", "ACME", "Fintech", "10", "about", nil, "U123", "Mumbai", day(2001, 5, 4)),
			wantLen: 1,
		},
		{
			name: "fan-out keeps store order",
			rows: sqlmock.NewRows(companyCols).
				AddRow(int64(1), "Acme Ltd", "ACME", nil, nil, nil, nil, nil, nil, nil).
				AddRow(int64(7), "Acme Ltd", "ACM2", nil, nil, nil, nil, nil, nil, nil),
			wantLen: 2,
		},
		{name: "none", rows: sqlmock.NewRows(companyCols), wantLen: 0},
		{name: "query error", err: dummyErr{}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockCompanyRepo(t)
			defer done()

			exp := mock.ExpectQuery(`FROM companies c\s+WHERE c.name = \$1 OR CAST\(c.id AS TEXT\) = \$1`).WithArgs("Acme Ltd")
			if tc.err != nil {
				exp.WillReturnError(tc.err)
			} else {
				exp.WillReturnRows(tc.rows)
			}

			out, err := repo.FindCompanies(context.Background(), "Acme Ltd")
			if tc.wantErr {
				if err == nil || !errors.Is(err, tc.err) {
					t.Fatalf("want wrapped %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(out) != tc.wantLen {
				t.Fatalf("len=%d want %d", len(out), tc.wantLen)
			}
			if tc.wantLen > 0 && out[0].ID != 1 {
				t.Fatalf("first row should be id=1, got %d", out[0].ID)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestFindCompanies_ScansNullableColumns(t *testing.T) {
	repo, mock, done := newMockCompanyRepo(t)
	defer done()

	mock.ExpectQuery(`FROM companies c`).WithArgs("42").WillReturnRows(
		sqlmock.NewRows(companyCols).AddRow(int64(42), "Beta Corp", nil, nil, "1.50", nil, nil, nil, nil, nil),
	)

	out, err := repo.FindCompanies(context.Background(), "42")
	if err != nil || len(out) != 1 {
		t.Fatalf("out=%+v err=%v", out, err)
	}
	c := out[0]
	if c.Symbol.Valid || c.IncorporationDate.Valid {
		t.Fatalf("expected NULL columns to stay invalid: %+v", c)
	}
	if !c.FaceValue.Valid || c.FaceValue.Decimal.String() != "1.5" {
		t.Fatalf("face value not scanned precisely: %+v", c.FaceValue)
	}
}

func TestListChildren_SQLMock(t *testing.T) {
	repo, mock, done := newMockCompanyRepo(t)
	defer done()
	ctx := context.Background()

	mock.ExpectQuery(`FROM stock_prices p\s+WHERE p.company_id = \$1`).WithArgs(int64(1)).WillReturnRows(
		sqlmock.NewRows(priceCols).
			AddRow(int64(10), int64(1), "100", "1.5", day(2024, 1, 1), int64(500), "1000000", "12.1", "45").
			AddRow(int64(11), int64(1), "110", nil, day(2024, 3, 1), nil, nil, nil, nil),
	)
	mock.ExpectQuery(`FROM shareholdings`).WithArgs(int64(1)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "company_id", "category", "shares", "percentage", "as_of_date"}).
			AddRow(int64(1), int64(1), "Promoters", int64(1000), "51.20", day(2024, 3, 31)),
	)
	mock.ExpectQuery(`FROM board_members`).WithArgs(int64(1)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "company_id", "name", "position", "category"}).
			AddRow(int64(1), int64(1), "A. Person", "Chair", "Independent"),
	)
	mock.ExpectQuery(`FROM subsidiaries`).WithArgs(int64(1)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "company_id", "name", "relationship_type", "ownership_percentage"}),
	)
	mock.ExpectQuery(`FROM company_highlights`).WithArgs(int64(1)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "company_id", "highlight"}).AddRow(int64(1), int64(1), "Profitable since 2019"),
	)

	prices, err := repo.ListPrices(ctx, 1)
	if err != nil || len(prices) != 2 {
		t.Fatalf("prices=%+v err=%v", prices, err)
	}
	if prices[1].ChangePercentage.Valid || !prices[1].TradeDate.Valid {
		t.Fatalf("unexpected nullability: %+v", prices[1])
	}
	holdings, err := repo.ListShareholdings(ctx, 1)
	if err != nil || len(holdings) != 1 || holdings[0].Percentage.Decimal.String() != "51.2" {
		t.Fatalf("holdings=%+v err=%v", holdings, err)
	}
	members, err := repo.ListBoardMembers(ctx, 1)
	if err != nil || len(members) != 1 {
		t.Fatalf("members=%+v err=%v", members, err)
	}
	subs, err := repo.ListSubsidiaries(ctx, 1)
	if err != nil || subs == nil || len(subs) != 0 {
		t.Fatalf("subsidiaries should be an empty non-nil slice, got %#v err=%v", subs, err)
	}
	hl, err := repo.ListHighlights(ctx, 1)
	if err != nil || len(hl) != 1 {
		t.Fatalf("highlights=%+v err=%v", hl, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListCompaniesWithPrices_GroupsJoinRows(t *testing.T) {
	repo, mock, done := newMockCompanyRepo(t)
	defer done()

	cols := append(append([]string{}, companyCols...), priceCols...)
	mock.ExpectQuery(`LEFT JOIN stock_prices p ON p.company_id = c.id`).WillReturnRows(
		sqlmock.NewRows(cols).
			AddRow(int64(1), "Acme Ltd", "ACME", nil, nil, nil, nil, nil, nil, nil,
				int64(10), int64(1), "100", "0.5", day(2024, 1, 1), nil, nil, nil, nil).
			AddRow(int64(1), "Acme Ltd", "ACME", nil, nil, nil, nil, nil, nil, nil,
				int64(11), int64(1), "110", "1.0", day(2024, 3, 1), nil, nil, nil, nil).
			AddRow(int64(2), "Beta Corp", "BETA", nil, nil, nil, nil, nil, nil, nil,
				nil, nil, nil, nil, nil, nil, nil, nil, nil),
	)

	out, err := repo.ListCompaniesWithPrices(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 companies, got %d", len(out))
	}
	if out[0].ID != 1 || len(out[0].Prices) != 2 || out[0].Prices[1].ID != 11 {
		t.Fatalf("unexpected first company: %+v", out[0])
	}
	if out[1].ID != 2 || out[1].Prices == nil || len(out[1].Prices) != 0 {
		t.Fatalf("company without prices should carry an empty slice: %+v", out[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListCompaniesWithPrices_QueryError(t *testing.T) {
	repo, mock, done := newMockCompanyRepo(t)
	defer done()

	mock.ExpectQuery(`LEFT JOIN stock_prices`).WillReturnError(dummyErr{})
	if _, err := repo.ListCompaniesWithPrices(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSearchCompanies_SQLMock(t *testing.T) {
	repo, mock, done := newMockCompanyRepo(t)
	defer done()

	mock.ExpectQuery(`WHERE c.name ILIKE \$1 OR c.symbol ILIKE \$1\s+ORDER BY c.name ASC\s+LIMIT \$2`).
		WithArgs("%ac\\%me%", 5).
		WillReturnRows(sqlmock.NewRows(companyCols).
			AddRow(int64(3), "Ac%me Industries", "ACIN", nil, nil, nil, nil, nil, nil, nil).
			AddRow(int64(1), "Ac%me Ltd", "ACME", nil, nil, nil, nil, nil, nil, nil))
	mock.ExpectQuery(`FROM stock_prices p\s+WHERE p.company_id = ANY\(\$1\)`).
		WillReturnRows(sqlmock.NewRows(priceCols).
			AddRow(int64(11), int64(1), "110", "1.0", day(2024, 3, 1), nil, nil, nil, nil).
			AddRow(int64(10), int64(1), "100", "0.5", day(2024, 1, 1), nil, nil, nil, nil))

	out, err := repo.SearchCompanies(context.Background(), "ac%me", 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Ac%me Industries" {
		t.Fatalf("store order must be preserved: %+v", out)
	}
	if len(out[0].Prices) != 0 || len(out[1].Prices) != 2 || out[1].Prices[0].ID != 11 {
		t.Fatalf("prices not attached to the right hits: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchCompanies_NoMatchSkipsPriceQuery(t *testing.T) {
	repo, mock, done := newMockCompanyRepo(t)
	defer done()

	mock.ExpectQuery(`ILIKE`).WithArgs("%zzz%", 5).WillReturnRows(sqlmock.NewRows(companyCols))

	out, err := repo.SearchCompanies(context.Background(), "zzz", 5)
	if err != nil || out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil result, got %#v err=%v", out, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"acme":  "acme",
		"50%":   `50\%`,
		"a_b":   `a\_b`,
		`c:\x`:  `c:\\x`,
		"%_%":   `\%\_\%`,
		"":      "",
		"Tata ": "Tata ",
	}
	for in, want := range cases {
		if got := escapeLike(in); got != want {
			t.Fatalf("escapeLike(%q)=%q want %q", in, got, want)
		}
	}
}

func TestNewCompanyRepository_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if NewCompanyRepository(db) == nil {
		t.Fatalf("expected non-nil repository")
	}
}
