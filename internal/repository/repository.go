package repository

import (
	"context"

	"product-catalog/internal/model"
)

// ProductRepository defines the interface for product data access operations.
//
// Absence of a document is signalled with a nil result (or false for Delete),
// never an error; errors mean the store itself faulted, including ids that
// are not valid for the underlying id type.
type ProductRepository interface {
	// Create inserts a new product and returns it with the store-assigned id.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its id, or nil when absent.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves the subset of products matching the given ids.
	// Ids with no matching document are silently omitted from the result.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// SearchByName retrieves products whose name matches the given pattern,
	// case-insensitively. The pattern is applied as a regular expression.
	SearchByName(ctx context.Context, pattern string) ([]model.Product, error)

	// GetByCategory retrieves all products in the given category.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)

	// Categories retrieves the distinct category values across all products.
	Categories(ctx context.Context) ([]string, error)

	// GetAllSorted retrieves all products ordered ascending by the given
	// column. The column must come from a fixed allow-list; it is never
	// caller-supplied text.
	GetAllSorted(ctx context.Context, column string) ([]model.Product, error)

	// Update replaces every mutable field of the product with the given id
	// and returns the updated document, or nil when absent.
	Update(ctx context.Context, id string, product *model.Product) (*model.Product, error)

	// SetDiscount updates only the temporary price of the product with the
	// given id and returns the updated document, or nil when absent.
	SetDiscount(ctx context.Context, id string, temporaryPrice float64) (*model.Product, error)

	// Delete removes the product with the given id. It reports whether a
	// document was actually deleted.
	Delete(ctx context.Context, id string) (bool, error)
}
