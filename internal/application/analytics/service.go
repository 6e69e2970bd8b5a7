package analytics

import (
	"context"
	"fmt"

	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/analytics"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/repository"
)

type Service struct {
	repo repository.AnalyticsRepository
}

func NewService(repo repository.AnalyticsRepository) *Service {
	return &Service{repo: repo}
}

// Report runs the three aggregations over the same date range.
func (s *Service) Report(ctx context.Context, r analytics.DateRange) (*analytics.Report, error) {
	summary, err := s.repo.Summary(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("analytics summary: %w", err)
	}

	weeks, err := s.repo.OrdersPerWeek(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("analytics weeks: %w", err)
	}

	top, err := s.repo.TopProducts(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("analytics top products: %w", err)
	}

	return &analytics.Report{
		Summary:       summary,
		OrdersPerWeek: weeks,
		TopProducts:   top,
	}, nil
}
