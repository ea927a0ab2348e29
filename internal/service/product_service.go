package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/Lixing-Zhang/product-catalog/internal/models"
	"github.com/Lixing-Zhang/product-catalog/internal/repository"
)

var (
	ErrInvalidMaxPrice = errors.New("max_price must be a number")
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns products whose name contains query, ignoring case.
// An empty query matches every product.
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	needle := strings.ToLower(query)
	return s.repo.Scan(ctx, func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

// Filter returns products matching every constraint set in f.
// Category comparison is exact and case-sensitive.
func (s *ProductService) Filter(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	if f.MaxPrice != nil && (math.IsNaN(*f.MaxPrice) || math.IsInf(*f.MaxPrice, 0)) {
		return nil, ErrInvalidMaxPrice
	}

	return s.repo.Scan(ctx, func(p models.Product) bool {
		if f.Category != nil && p.Category != *f.Category {
			return false
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			return false
		}
		return true
	})
}
