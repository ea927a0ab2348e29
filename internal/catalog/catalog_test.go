package catalog

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/product-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Success(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "testdata", "products.json"))
	require.NoError(t, err)

	products := c.Products()
	require.Len(t, products, 3)
	assert.Equal(t, 3, c.Len())

	// order mirrors the file
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Sony Headphones", products[0].Name)
	assert.Equal(t, "electronics", products[0].Category)
	assert.Equal(t, 2999.0, products[0].Price)
	assert.Equal(t, int64(2), products[1].ID)
	assert.Equal(t, int64(3), products[2].ID)

	assert.NotEmpty(t, c.ID())
	assert.False(t, c.LoadedAt().IsZero())
	assert.Contains(t, c.Source(), "products.json")
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileAccess)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrParse)

	// a directory cannot be read as a file
	_, err = Load(t.TempDir())
	assert.ErrorIs(t, err, ErrFileAccess)
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"malformed json", `{"products": [`, ""},
		{"not an object", `[1, 2, 3]`, ""},
		{"missing products key", `{"items": []}`, "products"},
		{"products is null", `{"products": null}`, "products"},
		{"products not an array", `{"products": {"id": 1}}`, ""},
		{"string id", `{"products": [{"id": "1", "name": "a", "category": "b", "price": 1}]}`, ""},
		{"fractional id", `{"products": [{"id": 1.5, "name": "a", "category": "b", "price": 1}]}`, ""},
		{"missing id", `{"products": [{"name": "a", "category": "b", "price": 1}]}`, `"id"`},
		{"missing name", `{"products": [{"id": 1, "category": "b", "price": 1}]}`, `"name"`},
		{"missing category", `{"products": [{"id": 1, "name": "a", "price": 1}]}`, `"category"`},
		{"missing price", `{"products": [{"id": 1, "name": "a", "category": "b"}]}`, `"price"`},
		{"negative price", `{"products": [{"id": 1, "name": "a", "category": "b", "price": -1}]}`, "negative price"},
		{"duplicate id", `{"products": [
			{"id": 1, "name": "a", "category": "b", "price": 1},
			{"id": 1, "name": "c", "category": "d", "price": 2}
		]}`, "duplicate product id 1"},
		{"trailing garbage", `{"products": []} extra`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.NotErrorIs(t, err, ErrFileAccess)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestParse_EmptyArray(t *testing.T) {
	c, err := Parse(strings.NewReader(`{"products": []}`))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.NotNil(t, c.Products())
	assert.Empty(t, c.Source())
}

func TestParse_IgnoresUnknownFields(t *testing.T) {
	c, err := Parse(strings.NewReader(`{"version": 2, "products": [
		{"id": 7, "name": "Lamp", "category": "home", "price": 0, "stock": 3}
	]}`))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 0.0, c.Products()[0].Price)
}

func TestCatalog_ProductsReturnsCopy(t *testing.T) {
	c, err := Parse(strings.NewReader(`{"products": [{"id": 1, "name": "Pen", "category": "stationery", "price": 10}]}`))
	require.NoError(t, err)

	first := c.Products()
	first[0].Name = "mutated"

	assert.Equal(t, "Pen", c.Products()[0].Name)
	p, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Pen", p.Name)
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "testdata", "products.json"))
	require.NoError(t, err)

	p, ok := c.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, "Notebook", p.Name)

	_, ok = c.Lookup(99)
	assert.False(t, ok)
}

func TestCatalog_Each(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "testdata", "products.json"))
	require.NoError(t, err)

	var ids []int64
	c.Each(func(p models.Product) bool {
		ids = append(ids, p.ID)
		return len(ids) < 2
	})
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestLoad_DistinctSnapshotIDs(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "products.json")

	a, err := Load(path)
	require.NoError(t, err)
	b, err := Load(path)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.Products(), b.Products())
}

func TestLoad_ErrorMentionsPath(t *testing.T) {
	path := writeCatalog(t, `{}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), path), err.Error())
	assert.True(t, errors.Is(err, ErrParse))
}

func TestLoad_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(`{"products": [{"id": 9, "name": "Desk Lamp", "category": "home", "price": 899}]}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Desk Lamp", c.Products()[0].Name)
}

func TestLoad_GzipCorrupt(t *testing.T) {
	path := writeCatalog(t, "")
	gzPath := path + ".gz"
	require.NoError(t, os.WriteFile(gzPath, []byte(`{"products": []}`), 0644))

	_, err := Load(gzPath)
	assert.ErrorIs(t, err, ErrFileAccess)
}
