package catalog

import (
	"context"
	"fmt"

	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/catalog"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/repository"
)

type Service struct {
	products repository.ProductRepository
}

func NewService(products repository.ProductRepository) *Service {
	return &Service{products: products}
}

// Menu returns the active catalog ordered by id.
func (s *Service) Menu(ctx context.Context) ([]catalog.Product, error) {
	products, err := s.products.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
