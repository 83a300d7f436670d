package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	// RevenueBetween sums completed-consultation prices for dates in
	// [from, to). A zero `to` means no upper bound.
	RevenueBetween(ctx context.Context, from, to time.Time) (float64, error)
	MonthlyRevenue(ctx context.Context, year int) ([]MonthRevenue, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}
