// domain/product.go
package domain

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductConflict   = errors.New("product already exists")
	ErrProductConstraint = errors.New("product data constraint violation")
)

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type ProductRepository interface {
	CreateProduct(product *Product) (*Product, error)
	GetProductByID(id int) (*Product, error)
	UpdateProduct(product *Product) (*Product, error)
	DeleteProduct(id int) error
	ListProducts() ([]Product, error)
}
