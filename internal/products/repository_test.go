package products

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/shopassist-backend/pkg/db/dbtest"
	"github.com/angelmondragon/shopassist-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func seedProducts(t *testing.T, repo *Repository) []models.Product {
	t.Helper()
	rows := []models.Product{
		{Name: "Laptop Pro X", Category: "Electronics", Price: decimal.RequireFromString("1200.00"), Description: strPtr("Powerful laptop for professionals.")},
		{Name: "Python Programming Book", Category: "Books", Price: decimal.RequireFromString("45.99"), Description: strPtr("A comprehensive guide.")},
		{Name: "Denim Jeans", Category: "Apparel", Price: decimal.RequireFromString("65.00")},
		{Name: "Gaming Laptops Bundle", Category: "Electronics", Price: decimal.RequireFromString("999.99"), Description: strPtr("100% value")},
	}
	require.NoError(t, repo.CreateBatch(context.Background(), rows))
	var out []models.Product
	require.NoError(t, repo.db.Order("id ASC").Find(&out).Error)
	return out
}

func TestRepositoryListAndFind(t *testing.T) {
	repo := NewRepository(dbtest.New(t).DB())
	ctx := context.Background()
	seeded := seedProducts(t, repo)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Laptop Pro X", rows[0].Name)
	assert.True(t, rows[1].Price.Equal(decimal.RequireFromString("45.99")))

	found, err := repo.FindByID(ctx, seeded[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "Denim Jeans", found.Name)
	assert.Nil(t, found.Description)

	_, err = repo.FindByID(ctx, 9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestRepositorySearchMatchesAnyTermAcrossColumns(t *testing.T) {
	repo := NewRepository(dbtest.New(t).DB())
	ctx := context.Background()
	seedProducts(t, repo)

	rows, err := repo.Search(ctx, []string{"laptop", "laptops"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Laptop Pro X", rows[0].Name)
	assert.Equal(t, "Gaming Laptops Bundle", rows[1].Name)

	rows, err = repo.Search(ctx, []string{"books"})
	require.NoError(t, err)
	require.Len(t, rows, 1, "category match")

	rows, err = repo.Search(ctx, []string{"comprehensive"})
	require.NoError(t, err)
	require.Len(t, rows, 1, "description match")

	rows, err = repo.Search(ctx, []string{"toaster"})
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = repo.Search(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRepositorySearchEscapesWildcards(t *testing.T) {
	repo := NewRepository(dbtest.New(t).DB())
	seedProducts(t, repo)

	rows, err := repo.Search(context.Background(), []string{"%"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gaming Laptops Bundle", rows[0].Name)

	rows, err = repo.Search(context.Background(), []string{"_"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRepositoryDistinctCategoriesSorted(t *testing.T) {
	repo := NewRepository(dbtest.New(t).DB())
	ctx := context.Background()

	categories, err := repo.DistinctCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	seedProducts(t, repo)
	categories, err = repo.DistinctCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apparel", "Books", "Electronics"}, categories)
}

func TestServiceListMapsProducts(t *testing.T) {
	repo := NewRepository(dbtest.New(t).DB())
	seedProducts(t, repo)

	svc, err := NewService(repo)
	require.NoError(t, err)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, 45.99, items[1].Price)
	assert.Equal(t, "A comprehensive guide.", *items[1].Description)

	_, err = NewService(nil)
	require.Error(t, err)
}

func TestServiceListEmptyCatalogIsEmptySlice(t *testing.T) {
	svc, err := NewService(NewRepository(dbtest.New(t).DB()))
	require.NoError(t, err)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
