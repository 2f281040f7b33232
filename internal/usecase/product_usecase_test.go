package usecase

import (
	"catalog_service/internal/domain"
	"catalog_service/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	repo := testutil.NewMemoryProductRepository()
	uc := NewProductUseCase(repo, testutil.QuietLogger())

	_, err := uc.CreateProduct(&domain.Product{Name: "", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.EqualError(t, err, "invalid product: name cannot be empty")

	_, err = uc.CreateProduct(&domain.Product{Name: "Laptop", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.Empty(t, repo.Created)

	created, err := uc.CreateProduct(&domain.Product{ID: 77, Name: " Laptop ", Description: "Dell XPS 13", Price: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Laptop", created.Name)
}

func TestUpdateProductSetsIDFromPath(t *testing.T) {
	repo := testutil.NewMemoryProductRepository()
	uc := NewProductUseCase(repo, testutil.QuietLogger())
	_, err := uc.CreateProduct(&domain.Product{Name: "Smartwatch", Price: 399.99})
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(1, &domain.Product{ID: 5, Name: "Smartwatch", Description: "Apple Watch Series 7", Price: 399.99})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)

	_, err = uc.UpdateProduct(0, &domain.Product{Name: "x"})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = uc.UpdateProduct(2, &domain.Product{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetAndDeleteRejectInvalidIDs(t *testing.T) {
	uc := NewProductUseCase(testutil.NewMemoryProductRepository(), testutil.QuietLogger())

	_, err := uc.GetProductByID(-1)
	assert.EqualError(t, err, "invalid product: id -1")
	assert.ErrorIs(t, uc.DeleteProduct(0), ErrInvalidProduct)
	assert.ErrorIs(t, uc.DeleteProduct(3), domain.ErrProductNotFound)
}

func TestListProducts(t *testing.T) {
	uc := NewProductUseCase(testutil.NewMemoryProductRepository(), testutil.QuietLogger())
	for _, name := range []string{"Laptop", "Headphones"} {
		_, err := uc.CreateProduct(&domain.Product{Name: name, Price: 1})
		require.NoError(t, err)
	}

	products, err := uc.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, "Headphones", products[1].Name)
}
