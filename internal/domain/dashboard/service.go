package dashboard

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Revenue assembles the dashboard for the given year; a zero year means the
// current one. Today/this-month/this-year windows are computed in UTC.
func (s *Service) Revenue(ctx context.Context, year int) (*Summary, error) {
	now := s.now().UTC()
	if year == 0 {
		year = now.Year()
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)

	today, err := s.repo.RevenueBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	thisMonth, err := s.repo.RevenueBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	thisYear, err := s.repo.RevenueBetween(ctx, yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}
	allTime, err := s.repo.RevenueBetween(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	byMonth, err := s.repo.MonthlyRevenue(ctx, year)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Today:          today,
		ThisMonth:      thisMonth,
		ThisYear:       thisYear,
		AllTime:        allTime,
		ByMonth:        byMonth,
		Year:           year,
		CountsByStatus: counts,
	}, nil
}
