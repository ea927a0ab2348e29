// Package catalog loads the static product catalog that backs every query.
//
// A Catalog is built once at startup and never changes afterwards, so it can
// be shared by any number of concurrent readers without locking.
package catalog

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Lixing-Zhang/product-catalog/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrFileAccess is returned when the catalog file cannot be opened or read
	ErrFileAccess = errors.New("catalog file not accessible")
	// ErrParse is returned when the catalog content does not match the expected schema
	ErrParse = errors.New("catalog parse failed")
)

// Catalog is an immutable, ordered snapshot of products
type Catalog struct {
	id       uuid.UUID
	source   string
	loadedAt time.Time
	products []models.Product
	index    map[int64]int
}

// document mirrors the on-disk layout: {"products": [...]}
type document struct {
	Products *[]record `json:"products"`
}

// record uses pointers so missing fields can be told apart from zero values
type record struct {
	ID       *int64   `json:"id"`
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}

// Load reads and parses the catalog file at path.
// Files ending in .gz are decompressed first.
func Load(path string) (*Catalog, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.source = path
	return c, nil
}

// Parse builds a catalog from an in-memory JSON source
func Parse(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return parse(data)
}

func readFile(path string) ([]byte, error) {
	if !strings.HasSuffix(path, ".gz") {
		return os.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gzReader, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	return io.ReadAll(gzReader)
}

func parse(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.Products == nil {
		return nil, fmt.Errorf("%w: missing top-level \"products\" array", ErrParse)
	}

	records := *doc.Products
	products := make([]models.Product, 0, len(records))
	index := make(map[int64]int, len(records))

	for i, rec := range records {
		p, err := rec.toProduct()
		if err != nil {
			return nil, fmt.Errorf("%w: product at index %d: %w", ErrParse, i, err)
		}
		if _, dup := index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %d at index %d", ErrParse, p.ID, i)
		}
		index[p.ID] = len(products)
		products = append(products, p)
	}

	return &Catalog{
		id:       uuid.New(),
		loadedAt: time.Now().UTC(),
		products: products,
		index:    index,
	}, nil
}

func (r record) toProduct() (models.Product, error) {
	switch {
	case r.ID == nil:
		return models.Product{}, errors.New("missing field \"id\"")
	case r.Name == nil:
		return models.Product{}, errors.New("missing field \"name\"")
	case r.Category == nil:
		return models.Product{}, errors.New("missing field \"category\"")
	case r.Price == nil:
		return models.Product{}, errors.New("missing field \"price\"")
	case *r.Price < 0:
		return models.Product{}, fmt.Errorf("negative price %v", *r.Price)
	}

	return models.Product{
		ID:       *r.ID,
		Name:     *r.Name,
		Category: *r.Category,
		Price:    *r.Price,
	}, nil
}

// Products returns a copy of the catalog in load order
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Each calls fn for every product in load order until fn returns false.
// It avoids the copy made by Products for scans that keep only a subset.
func (c *Catalog) Each(fn func(models.Product) bool) {
	for _, p := range c.products {
		if !fn(p) {
			return
		}
	}
}

// Lookup returns the product with the given id
func (c *Catalog) Lookup(id int64) (models.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products
func (c *Catalog) Len() int { return len(c.products) }

// ID identifies this snapshot; it changes every time a catalog is loaded
func (c *Catalog) ID() string { return c.id.String() }

// Source is the file the catalog was loaded from, empty for Parse
func (c *Catalog) Source() string { return c.source }

// LoadedAt is when the snapshot was built
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }
