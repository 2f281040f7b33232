package seed

import (
	"bytes"
	"catalog_service/internal/domain"
	"catalog_service/internal/testutil"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSavesSampleProductsInOrder(t *testing.T) {
	repo := testutil.NewMemoryProductRepository()
	var out bytes.Buffer

	err := NewSampleDataLoader(repo, testutil.QuietLogger(), &out).Run("--ignored", "arg")
	require.NoError(t, err)

	expected := []domain.Product{
		{Name: "Laptop", Description: "Dell XPS 13", Price: 1299.99},
		{Name: "Smartphone", Description: "Samsung Galaxy S21", Price: 799.99},
		{Name: "Headphones", Description: "Sony WH-1000XM4", Price: 349.99},
		{Name: "Smartwatch", Description: "Apple Watch Series 7", Price: 399.99},
	}
	assert.Equal(t, expected, repo.Created)
	assert.Equal(t, "Sample data has been loaded!\n", out.String())

	stored, err := repo.ListProducts()
	require.NoError(t, err)
	require.Len(t, stored, 4)
	for i, p := range stored {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestRunPassesPricesThroughUnchanged(t *testing.T) {
	repo := testutil.NewMemoryProductRepository()

	require.NoError(t, NewSampleDataLoader(repo, testutil.QuietLogger(), &bytes.Buffer{}).Run())

	require.NotEmpty(t, repo.Created)
	assert.Equal(t, 1299.99, repo.Created[0].Price)
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	repo := testutil.NewMemoryProductRepository()
	repo.FailOnCreate = 2
	repo.CreateErr = errors.New("connection refused")
	var out bytes.Buffer

	err := NewSampleDataLoader(repo, testutil.QuietLogger(), &out).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.CreateErr)
	assert.Contains(t, err.Error(), "Smartphone")

	require.Len(t, repo.Created, 2)
	assert.Equal(t, "Laptop", repo.Created[0].Name)
	assert.Equal(t, "Smartphone", repo.Created[1].Name)
	assert.Empty(t, out.String())
}

func TestRunTwiceDuplicatesRecords(t *testing.T) {
	repo := testutil.NewMemoryProductRepository()
	loader := NewSampleDataLoader(repo, testutil.QuietLogger(), &bytes.Buffer{})

	require.NoError(t, loader.Run())
	require.NoError(t, loader.Run())

	stored, err := repo.ListProducts()
	require.NoError(t, err)
	assert.Len(t, stored, 8)
}

func TestSampleProductsReturnsFreshCopies(t *testing.T) {
	first := SampleProducts()
	first[0].Price = 1

	second := SampleProducts()
	assert.Equal(t, 1299.99, second[0].Price)
	assert.Zero(t, second[0].ID)
}
