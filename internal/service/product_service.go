package service

import (
	"context"
	"fmt"
	"strings"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"github.com/rs/zerolog"
)

// sortColumns maps the allowed sort criteria to store columns. The set is
// a fixed allow-list, not derived from the data model.
var sortColumns = map[string]string{
	"originalprice":  "original_price",
	"name":           "name",
	"temporaryprice": "temporary_price",
}

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create stores a new product and returns it with the assigned id.
func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Debug().Str("product_id", created.ID).Msg("product created")

	return created, nil
}

// GetAll retrieves all products.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return nonNil(products), nil
}

// GetByID retrieves a single product by id.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product id is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by id")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// GetByIDs retrieves the products matching the given ids.
func (s *productService) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to get products by ids")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("requested", len(ids)).
		Int("found", len(products)).
		Msg("retrieved products by ids")

	return nonNil(products), nil
}

// SearchByName retrieves products whose name contains the given text,
// case-insensitively. The text is applied as a regular expression as-is.
func (s *productService) SearchByName(ctx context.Context, pattern string) ([]model.Product, error) {
	if pattern == "" {
		return nil, model.ErrMissingName
	}

	products, err := s.productRepo.SearchByName(ctx, pattern)
	if err != nil {
		s.logger.Error().Err(err).Str("pattern", pattern).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return nonNil(products), nil
}

// GetByCategory retrieves all products in the given category.
func (s *productService) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.productRepo.GetByCategory(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to get products by category")
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}

	return nonNil(products), nil
}

// Categories retrieves the distinct category values.
func (s *productService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	if categories == nil {
		categories = []string{}
	}

	return categories, nil
}

// GetSorted retrieves all products sorted ascending by the given criteria.
func (s *productService) GetSorted(ctx context.Context, criteria string) ([]model.Product, error) {
	column, ok := sortColumns[strings.ToLower(criteria)]
	if !ok {
		s.logger.Warn().Str("criteria", criteria).Msg("invalid sort criteria")
		return nil, model.ErrInvalidSortCriteria
	}

	products, err := s.productRepo.GetAllSorted(ctx, column)
	if err != nil {
		s.logger.Error().Err(err).Str("criteria", criteria).Msg("failed to get sorted products")
		return nil, fmt.Errorf("failed to get sorted products: %w", err)
	}

	return nonNil(products), nil
}

// Update replaces the product with the given id.
func (s *productService) Update(ctx context.Context, id string, product *model.Product) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrMissingProductID
	}

	updated, err := s.productRepo.Update(ctx, id, product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if updated == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	return updated, nil
}

// SetDiscount sets the temporary price of the product with the given id.
// A zero temporary price is rejected as missing.
func (s *productService) SetDiscount(ctx context.Context, id string, temporaryPrice float64) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrMissingProductID
	}

	if temporaryPrice == 0 {
		return nil, model.ErrMissingDiscount
	}

	updated, err := s.productRepo.SetDiscount(ctx, id, temporaryPrice)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to set product discount")
		return nil, fmt.Errorf("failed to set discount: %w", err)
	}

	if updated == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found for discount")
		return nil, model.ErrProductNotFound
	}

	s.logger.Debug().
		Str("product_id", id).
		Float64("temporary_price", temporaryPrice).
		Msg("product discount updated")

	return updated, nil
}

// Delete removes the product with the given id.
func (s *productService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrProductNotFound
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Str("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	return nil
}

// nonNil normalises a nil slice to an empty one so list endpoints always
// serialise as a JSON array.
func nonNil(products []model.Product) []model.Product {
	if products == nil {
		return []model.Product{}
	}
	return products
}
