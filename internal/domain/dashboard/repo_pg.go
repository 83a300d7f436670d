package dashboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dencare/dencare/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) RevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	var err error
	switch {
	case to.IsZero() && from.IsZero():
		err = r.conn(ctx).QueryRow(ctx, `
			SELECT COALESCE(SUM(price), 0) FROM consultation
			WHERE status = 'Completed'`).Scan(&total)
	case to.IsZero():
		err = r.conn(ctx).QueryRow(ctx, `
			SELECT COALESCE(SUM(price), 0) FROM consultation
			WHERE status = 'Completed' AND date >= $1`, from).Scan(&total)
	default:
		err = r.conn(ctx).QueryRow(ctx, `
			SELECT COALESCE(SUM(price), 0) FROM consultation
			WHERE status = 'Completed' AND date >= $1 AND date < $2`, from, to).Scan(&total)
	}
	return total, err
}

func (r *repoPG) MonthlyRevenue(ctx context.Context, year int) ([]MonthRevenue, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT EXTRACT(MONTH FROM date)::int AS month, COALESCE(SUM(price), 0)
		FROM consultation
		WHERE status = 'Completed' AND EXTRACT(YEAR FROM date)::int = $1
		GROUP BY month ORDER BY month`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []MonthRevenue
	for rows.Next() {
		var m MonthRevenue
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

func (r *repoPG) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT status, COUNT(*) FROM consultation GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
