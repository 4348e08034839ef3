package repository

import (
	"context"
	"fmt"

	"product-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// collection is the fixed name of the product table.
const collection = "products"

const productColumns = "id, name, original_price, temporary_price, description, category, img_url"

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// parseID validates that an id has the format the store assigns. A
// malformed id is a store fault, not an absent document.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("malformed product id %q: %w", id, err)
	}
	return parsed.String(), nil
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.OriginalPrice, &p.TemporaryPrice, &p.Description, &p.Category, &p.ImgURL)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.OriginalPrice, &p.TemporaryPrice, &p.Description, &p.Category, &p.ImgURL)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Create inserts a new product and returns it with the store-assigned id.
func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	query := `
		INSERT INTO ` + collection + ` (id, name, original_price, temporary_price, description, category, img_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns

	id := uuid.NewString()
	created, err := scanProduct(r.pool.QueryRow(ctx, query,
		id, product.Name, product.OriginalPrice, product.TemporaryPrice,
		product.Description, product.Category, product.ImgURL))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return created, nil
}

// GetAll retrieves all products.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM ` + collection

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	return r.collectProducts(rows)
}

// GetByID retrieves a single product by its id.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + productColumns + ` FROM ` + collection + ` WHERE id = $1`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, parsed))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return product, nil
}

// GetByIDs retrieves the subset of products matching the given ids.
func (r *productRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	parsed := make([]string, 0, len(ids))
	for _, id := range ids {
		p, err := parseID(id)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, p)
	}

	query := `SELECT ` + productColumns + ` FROM ` + collection + ` WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, parsed)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by ids")
		return nil, fmt.Errorf("failed to query products by ids: %w", err)
	}

	return r.collectProducts(rows)
}

// SearchByName retrieves products whose name matches the pattern
// case-insensitively. The pattern is used as a regular expression as-is.
func (r *productRepository) SearchByName(ctx context.Context, pattern string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM ` + collection + ` WHERE name ~* $1`

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		r.logger.Error().Err(err).Str("pattern", pattern).Msg("failed to search products by name")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return r.collectProducts(rows)
}

// GetByCategory retrieves all products in the given category.
func (r *productRepository) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM ` + collection + ` WHERE category = $1`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		r.logger.Error().Err(err).Str("category", category).Msg("failed to query products by category")
		return nil, fmt.Errorf("failed to query products by category: %w", err)
	}

	return r.collectProducts(rows)
}

// Categories retrieves the distinct category values across all products.
func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM ` + collection

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query distinct categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetAllSorted retrieves all products ordered ascending by the given column.
// The column comes from the service layer's fixed allow-list, never from
// caller input, so interpolating it is safe.
func (r *productRepository) GetAllSorted(ctx context.Context, column string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM ` + collection + ` ORDER BY ` + column + ` ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Str("column", column).Msg("failed to query sorted products")
		return nil, fmt.Errorf("failed to query sorted products: %w", err)
	}

	return r.collectProducts(rows)
}

// Update replaces every mutable field of the product with the given id.
func (r *productRepository) Update(ctx context.Context, id string, product *model.Product) (*model.Product, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE ` + collection + `
		SET name = $2, original_price = $3, temporary_price = $4, description = $5, category = $6, img_url = $7
		WHERE id = $1
		RETURNING ` + productColumns

	updated, err := scanProduct(r.pool.QueryRow(ctx, query,
		parsed, product.Name, product.OriginalPrice, product.TemporaryPrice,
		product.Description, product.Category, product.ImgURL))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id).Msg("product not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return updated, nil
}

// SetDiscount updates only the temporary price of the product with the given id.
func (r *productRepository) SetDiscount(ctx context.Context, id string, temporaryPrice float64) (*model.Product, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE ` + collection + `
		SET temporary_price = $2
		WHERE id = $1
		RETURNING ` + productColumns

	updated, err := scanProduct(r.pool.QueryRow(ctx, query, parsed, temporaryPrice))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id).Msg("product not found for discount update")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product discount")
		return nil, fmt.Errorf("failed to update product discount: %w", err)
	}

	return updated, nil
}

// Delete removes the product with the given id.
func (r *productRepository) Delete(ctx context.Context, id string) (bool, error) {
	parsed, err := parseID(id)
	if err != nil {
		return false, err
	}

	query := `DELETE FROM ` + collection + ` WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, parsed)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
