package service

import (
	"context"
	"time"

	"github.com/sangkips/salesledger/internal/domain/enum"
	"github.com/sangkips/salesledger/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// RevenueService computes revenue series over sales
type RevenueService struct {
	saleRepo repository.SaleRepository
}

// NewRevenueService creates a new revenue service
func NewRevenueService(saleRepo repository.SaleRepository) *RevenueService {
	return &RevenueService{saleRepo: saleRepo}
}

// RevenueQuery represents the revenue analysis input
type RevenueQuery struct {
	StartDate  time.Time
	EndDate    time.Time
	ProductID  *uint
	CategoryID *uint
}

// RevenuePoint is the summed revenue of one period
type RevenuePoint struct {
	Period  enum.RevenuePeriod `json:"period"`
	Revenue float64            `json:"revenue"`
}

// Analyze returns the daily, weekly, monthly and annual revenue for the query,
// in that order. A start date after the end date is not rejected: the daily
// window is then empty and the other windows are unaffected.
func (s *RevenueService) Analyze(ctx context.Context, query *RevenueQuery) ([]RevenuePoint, error) {
	base := repository.SaleFilter{
		ProductID:  query.ProductID,
		CategoryID: query.CategoryID,
	}

	windows := DeriveWindows(query.StartDate.UTC(), query.EndDate.UTC())
	points := make([]RevenuePoint, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	for i, w := range windows {
		g.Go(func() error {
			revenue, err := s.saleRepo.SumRevenue(gctx, base.WithWindow(w.Start, w.End))
			if err != nil {
				return err
			}
			points[i] = RevenuePoint{Period: w.Period, Revenue: revenue}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}
