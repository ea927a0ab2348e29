package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/product-catalog/internal/catalog"
	"github.com/Lixing-Zhang/product-catalog/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Scan(ctx context.Context, keep func(models.Product) bool) ([]models.Product, error)
}

// CatalogProductRepository serves products from a loaded catalog snapshot
type CatalogProductRepository struct {
	catalog *catalog.Catalog
}

// NewCatalogProductRepository creates a repository over an already loaded catalog
func NewCatalogProductRepository(c *catalog.Catalog) *CatalogProductRepository {
	return &CatalogProductRepository{
		catalog: c,
	}
}

// GetAll returns all products in catalog order
func (r *CatalogProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.catalog.Products(), nil
}

// GetByID returns a product by its ID
func (r *CatalogProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, exists := r.catalog.Lookup(id)
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Scan returns, in catalog order, every product keep accepts.
// The result is never nil.
func (r *CatalogProductRepository) Scan(ctx context.Context, keep func(models.Product) bool) ([]models.Product, error) {
	results := make([]models.Product, 0)
	var err error
	r.catalog.Each(func(p models.Product) bool {
		if err = ctx.Err(); err != nil {
			return false
		}
		if keep(p) {
			results = append(results, p)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
