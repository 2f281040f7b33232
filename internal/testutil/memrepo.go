// Package testutil holds in-memory stand-ins shared by package tests.
package testutil

import (
	"catalog_service/internal/domain"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// QuietLogger returns a logger that discards its output.
func QuietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// MemoryProductRepository is a domain.ProductRepository backed by a map.
// It enforces no uniqueness. When FailOnCreate is n > 0 the n-th
// CreateProduct call fails with CreateErr.
type MemoryProductRepository struct {
	mu           sync.Mutex
	nextID       int
	rows         map[int]domain.Product
	Created      []domain.Product
	FailOnCreate int
	CreateErr    error
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{rows: map[int]domain.Product{}}
}

func (r *MemoryProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Created = append(r.Created, *product)
	if r.FailOnCreate > 0 && len(r.Created) == r.FailOnCreate {
		return nil, r.CreateErr
	}
	r.nextID++
	product.ID = r.nextID
	r.rows[product.ID] = *product
	return product, nil
}

func (r *MemoryProductRepository) GetProductByID(id int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
	}
	return &p, nil
}

func (r *MemoryProductRepository) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[product.ID]; !ok {
		return nil, fmt.Errorf("product with id %d: %w", product.ID, domain.ErrProductNotFound)
	}
	r.rows[product.ID] = *product
	return product, nil
}

func (r *MemoryProductRepository) DeleteProduct(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
	}
	delete(r.rows, id)
	return nil
}

func (r *MemoryProductRepository) ListProducts() ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]domain.Product, 0, len(r.rows))
	for _, p := range r.rows {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}
