package fund

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/fundlist/internal/platform/db"
	"github.com/ferdiebergado/fundlist/internal/query"
)

var _ Repository = &PostgresRepository{}

var ErrQueryFailed = errors.New("fund repository: query failed")

// Columns maps fund fields to columns of the funds table.
var Columns = query.Columns{
	FieldID:            "id",
	FieldSchemeCode:    "scheme_code",
	FieldISIN:          "isin",
	FieldName:          "name",
	FieldFundHouse:     "fund_house",
	FieldCategory:      "category",
	FieldSubCategory:   "sub_category",
	FieldPlan:          "plan",
	FieldOption:        "option",
	FieldRiskLevel:     "risk_level",
	FieldNAV:           "nav",
	FieldAUM:           "aum",
	FieldExpenseRatio:  "expense_ratio",
	FieldReturns1Y:     "returns_1y",
	FieldReturns3Y:     "returns_3y",
	FieldReturns5Y:     "returns_5y",
	FieldRating:        "rating",
	FieldMinInvestment: "min_investment",
	FieldLaunchDate:    "launch_date",
	FieldUpdatedAt:     "updated_at",
}

// fundColumns is the select list, in the order scanFund reads it.
const fundColumns = `id, scheme_code, isin, name, fund_house, category, sub_category, plan, "option", risk_level,
nav, aum, expense_ratio, returns_1y, returns_3y, returns_5y, rating, min_investment, launch_date, updated_at`

type PostgresRepository struct {
	db *sql.DB
}

func NewRepository(dbConn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: dbConn}
}

// executor returns the transaction carried by ctx, if any.
//
//nolint:ireturn //Either a *sql.Tx or a *sql.DB.
func (r *PostgresRepository) executor(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

func where(f *query.Filter) (string, []any, error) {
	clause, args, err := query.Where(f, Columns)
	if err != nil {
		return "", nil, err
	}
	if clause == "" {
		return "", nil, nil
	}
	return " WHERE " + clause, args, nil
}

func (r *PostgresRepository) Find(ctx context.Context, q Query) ([]Fund, error) {
	whereSQL, args, err := where(q.Filter)
	if err != nil {
		return nil, fmt.Errorf("find funds: %w", err)
	}

	orderBy, err := query.OrderBy(q.Sort, Columns)
	if err != nil {
		return nil, fmt.Errorf("find funds: %w", err)
	}

	n := len(args)
	stmt := fmt.Sprintf("SELECT %s FROM funds%s ORDER BY %s LIMIT $%d OFFSET $%d",
		fundColumns, whereSQL, orderBy, n+1, n+2)
	args = append(args, q.Page.Size, q.Page.Offset())

	rows, err := r.executor(ctx).QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: find funds: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	funds := make([]Fund, 0, q.Page.Size)
	for rows.Next() {
		f, err := scanFund(rows)
		if err != nil {
			return nil, fmt.Errorf("fund repository: scan row: %w", err)
		}
		funds = append(funds, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fund repository: iterate over fund rows: %w", err)
	}

	return funds, nil
}

func scanFund(rows *sql.Rows) (Fund, error) {
	var (
		f          Fund
		isin       sql.NullString
		subCat     sql.NullString
		expenseRat sql.NullFloat64
	)
	err := rows.Scan(&f.ID, &f.SchemeCode, &isin, &f.Name, &f.FundHouse, &f.Category, &subCat,
		&f.Plan, &f.Option, &f.RiskLevel, &f.NAV, &f.AUM, &expenseRat,
		&f.Returns1Y, &f.Returns3Y, &f.Returns5Y, &f.Rating, &f.MinInvestment, &f.LaunchDate, &f.UpdatedAt)
	f.ISIN = isin.String
	f.SubCategory = subCat.String
	f.ExpenseRatio = expenseRat.Float64
	return f, err
}

func (r *PostgresRepository) Count(ctx context.Context, f *query.Filter) (int, error) {
	whereSQL, args, err := where(f)
	if err != nil {
		return 0, fmt.Errorf("count funds: %w", err)
	}

	var total int
	row := r.executor(ctx).QueryRowContext(ctx, "SELECT COUNT(*) FROM funds"+whereSQL, args...)
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: count funds: %w", ErrQueryFailed, err)
	}
	return total, nil
}

// Facet counts the funds per distinct non-empty value of field, most frequent first.
func (r *PostgresRepository) Facet(ctx context.Context, field string, f *query.Filter) ([]FacetBucket, error) {
	col, ok := Columns[field]
	if !ok {
		return nil, fmt.Errorf("facet %q: %w", field, query.ErrUnknownField)
	}
	col = query.QuoteIdent(col)

	whereSQL, args, err := where(f)
	if err != nil {
		return nil, fmt.Errorf("facet %s: %w", field, err)
	}

	cond := fmt.Sprintf("%s IS NOT NULL AND %s <> ''", col, col)
	if whereSQL == "" {
		whereSQL = " WHERE " + cond
	} else {
		whereSQL += " AND " + cond
	}

	stmt := fmt.Sprintf("SELECT %s, COUNT(*) FROM funds%s GROUP BY %s ORDER BY COUNT(*) DESC, %s ASC",
		col, whereSQL, col, col)
	rows, err := r.executor(ctx).QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: facet %s: %w", ErrQueryFailed, field, err)
	}
	defer rows.Close()

	var buckets []FacetBucket
	for rows.Next() {
		var b FacetBucket
		if err := rows.Scan(&b.Value, &b.Count); err != nil {
			return nil, fmt.Errorf("fund repository: scan facet row: %w", err)
		}
		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fund repository: iterate over facet rows: %w", err)
	}

	return buckets, nil
}

const queryStats = `
SELECT MIN(aum)::float8, MAX(aum)::float8, MIN(expense_ratio)::float8, MAX(expense_ratio)::float8
FROM funds`

func (r *PostgresRepository) Stats(ctx context.Context, f *query.Filter) (Stats, error) {
	whereSQL, args, err := where(f)
	if err != nil {
		return Stats{}, fmt.Errorf("fund stats: %w", err)
	}

	var s Stats
	row := r.executor(ctx).QueryRowContext(ctx, queryStats+whereSQL, args...)
	if err := row.Scan(&s.AUM.Min, &s.AUM.Max, &s.ExpenseRatio.Min, &s.ExpenseRatio.Max); err != nil {
		return Stats{}, fmt.Errorf("%w: fund stats: %w", ErrQueryFailed, err)
	}
	return s, nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

const querySaveFund = `
INSERT INTO funds (id, scheme_code, isin, name, fund_house, category, sub_category, plan, "option", risk_level,
nav, aum, expense_ratio, returns_1y, returns_3y, returns_5y, rating, min_investment, launch_date, updated_at)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8, $9, $10,
$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
ON CONFLICT (id) DO UPDATE SET
scheme_code = EXCLUDED.scheme_code, isin = EXCLUDED.isin, name = EXCLUDED.name,
fund_house = EXCLUDED.fund_house, category = EXCLUDED.category, sub_category = EXCLUDED.sub_category,
plan = EXCLUDED.plan, "option" = EXCLUDED."option", risk_level = EXCLUDED.risk_level,
nav = EXCLUDED.nav, aum = EXCLUDED.aum, expense_ratio = EXCLUDED.expense_ratio,
returns_1y = EXCLUDED.returns_1y, returns_3y = EXCLUDED.returns_3y, returns_5y = EXCLUDED.returns_5y,
rating = EXCLUDED.rating, min_investment = EXCLUDED.min_investment,
launch_date = EXCLUDED.launch_date, updated_at = EXCLUDED.updated_at
`

// Save upserts funds by id. Run it inside a transaction to make the batch atomic.
func (r *PostgresRepository) Save(ctx context.Context, funds []Fund) error {
	exec := r.executor(ctx)
	for _, f := range funds {
		f.normalize()
		_, err := exec.ExecContext(ctx, querySaveFund,
			f.ID, f.SchemeCode, f.ISIN, f.Name, f.FundHouse, f.Category, f.SubCategory,
			f.Plan, f.Option, f.RiskLevel,
			f.NAV, f.AUM, f.ExpenseRatio, f.Returns1Y, f.Returns3Y, f.Returns5Y,
			f.Rating, f.MinInvestment, f.LaunchDate, f.UpdatedAt)
		if err != nil {
			return fmt.Errorf("%w: save fund %s: %w", ErrQueryFailed, f.ID, err)
		}
	}
	return nil
}
