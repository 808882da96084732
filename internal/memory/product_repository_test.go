package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
	apperrors "github.com/Kyle5427/web-data-management-system/internal/errors"
	"github.com/Kyle5427/web-data-management-system/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() domain.ProductInput {
	return domain.ProductInput{
		Name:        "Premium Wireless Headphones",
		Description: "High-fidelity audio",
		Price:       29999,
	}
}

func TestProductCreate(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	product, err := repo.Create(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, money.Cents(29999), product.Price)

	stored, err := repo.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, *product, *stored)
}

func TestProductCreate_Validation(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.ProductInput{Name: "", Description: "", Price: -1})
	require.Error(t, err)

	var structured *apperrors.Error
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, apperrors.TypeValidation, structured.Type)
	assert.Len(t, structured.Fields, 3)

	// Nothing was stored.
	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductList_InsertionOrder(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		input := validInput()
		input.Name = name
		_, err := repo.Create(ctx, input)
		require.NoError(t, err)
	}

	for range 2 { // stable across repeated calls
		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		for i, name := range names {
			assert.Equal(t, name, products[i].Name)
		}
	}
}

func TestProductUpdate_Partial(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, validInput())
	require.NoError(t, err)

	newPrice := money.Cents(19999)
	updated, err := repo.Update(ctx, created.ID, domain.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, newPrice, updated.Price)
}

func TestProductUpdate_NotFoundBeforeValidation(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	// The patch is invalid too, but the missing id wins.
	empty := ""
	_, err := repo.Update(ctx, 99, domain.ProductPatch{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUpdate_InvalidPatch(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, validInput())
	require.NoError(t, err)

	empty := ""
	_, err = repo.Update(ctx, created.ID, domain.ProductPatch{Description: &empty})
	var structured *apperrors.Error
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, apperrors.TypeValidation, structured.Type)

	// Record unchanged.
	stored, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Description, stored.Description)
}

func TestProductDelete(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrProductNotFound)
}

func TestProductDelete_NotFoundLeavesOthersIntact(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, validInput())
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID+1), domain.ErrProductNotFound)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductCreate_ConcurrentUniqueIDs(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			product, err := repo.Create(ctx, validInput())
			require.NoError(t, err)
			ids <- product.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
