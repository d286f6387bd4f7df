package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/database/postgres"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
)

const productsTable = "products"

type ProductRepository interface {
	GetByProjectAndSKU(ctx context.Context, projectID int, sku string) (*domain.Product, error)
	ListByProject(ctx context.Context, projectID int) ([]*domain.Product, error)
	SaveOrUpdate(ctx context.Context, product *domain.Product) error
	UpdateCostPrice(ctx context.Context, projectID int, sku string, costPrice float64) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetByProjectAndSKU(ctx context.Context, projectID int, sku string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("id, project_id, sku, name, cost_price, created_at, updated_at").
		From(productsTable).
		Where(squirrel.Eq{"project_id": projectID, "sku": sku}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	product := &domain.Product{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(
		&product.ID,
		&product.ProjectID,
		&product.SKU,
		&product.Name,
		&product.CostPrice,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning product: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListByProject(ctx context.Context, projectID int) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("id, project_id, sku, name, cost_price, created_at, updated_at").
		From(productsTable).
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("sku ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.ProjectID,
			&product.SKU,
			&product.Name,
			&product.CostPrice,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return products, nil
}

// SaveOrUpdate upserts a catalog entry. CostPrice is deliberately left out of
// the update set: catalog sync must not overwrite the user-maintained value.
func (r *productRepository) SaveOrUpdate(ctx context.Context, product *domain.Product) error {
	query := squirrel.StatementBuilder.
		Insert(productsTable).
		Columns("project_id", "sku", "name", "cost_price").
		Values(product.ProjectID, product.SKU, product.Name, product.CostPrice).
		Suffix(`
			ON CONFLICT (project_id, sku) DO UPDATE SET
				name = EXCLUDED.name,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *productRepository) UpdateCostPrice(ctx context.Context, projectID int, sku string, costPrice float64) error {
	query, args, err := squirrel.
		Update(productsTable).
		Set("cost_price", costPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"project_id": projectID, "sku": sku}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product not found: project %d sku %s", projectID, sku)
	}

	return nil
}
