package service

import (
	"context"

	"product-catalog/internal/model"
)

// ProductService defines operations for product catalogue management.
type ProductService interface {
	// Create stores a new product and returns it with the assigned id.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by id.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves the products matching the given ids; ids with no
	// matching product are silently omitted.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// SearchByName retrieves products whose name contains the given text,
	// case-insensitively.
	SearchByName(ctx context.Context, pattern string) ([]model.Product, error)

	// GetByCategory retrieves all products in the given category.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)

	// Categories retrieves the distinct category values.
	Categories(ctx context.Context) ([]string, error)

	// GetSorted retrieves all products sorted ascending by the given
	// criteria, one of "originalprice", "name" or "temporaryprice"
	// (case-insensitive).
	GetSorted(ctx context.Context, criteria string) ([]model.Product, error)

	// Update replaces the product with the given id.
	Update(ctx context.Context, id string, product *model.Product) (*model.Product, error)

	// SetDiscount sets the temporary price of the product with the given id.
	SetDiscount(ctx context.Context, id string, temporaryPrice float64) (*model.Product, error)

	// Delete removes the product with the given id.
	Delete(ctx context.Context, id string) error
}
