package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/database/postgres"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
)

const skuDailiesTable = "sku_dailies"

type SkuDailyRepository interface {
	GetByProjectAndDate(ctx context.Context, projectID int, date time.Time) ([]*domain.SkuDaily, error)
	ReplaceForDay(ctx context.Context, projectID int, date time.Time, rows []*domain.SkuDaily) error
}

type skuDailyRepository struct {
	conn *postgres.Connection
}

func NewSkuDailyRepository(conn *postgres.Connection) SkuDailyRepository {
	return &skuDailyRepository{
		conn: conn,
	}
}

func (r *skuDailyRepository) GetByProjectAndDate(ctx context.Context, projectID int, date time.Time) ([]*domain.SkuDaily, error) {
	query, args, err := squirrel.
		Select("id, project_id, date, sku, quantity, revenue, fees, acquiring, logistics, returns").
		From(skuDailiesTable).
		Where(squirrel.Eq{"project_id": projectID, "date": date.Format("2006-01-02")}).
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

	entries := make([]*domain.SkuDaily, 0)
	for rows.Next() {
		entry := &domain.SkuDaily{}
		err := rows.Scan(
			&entry.ID,
			&entry.ProjectID,
			&entry.Date,
			&entry.SKU,
			&entry.Quantity,
			&entry.Revenue,
			&entry.Fees,
			&entry.Acquiring,
			&entry.Logistics,
			&entry.Returns,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning sku daily: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return entries, nil
}

// ReplaceForDay atomically swaps the per-SKU breakdown for one day. The old
// rows are deleted and the new set inserted inside a single transaction so a
// re-run never appends to a previous run's rows.
func (r *skuDailyRepository) ReplaceForDay(ctx context.Context, projectID int, date time.Time, entries []*domain.SkuDaily) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := squirrel.
			Delete(skuDailiesTable).
			Where(squirrel.Eq{"project_id": projectID, "date": date.Format("2006-01-02")}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("building delete query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("deleting previous rows: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		insert := squirrel.StatementBuilder.
			Insert(skuDailiesTable).
			Columns("project_id", "date", "sku", "quantity", "revenue", "fees", "acquiring", "logistics", "returns").
			PlaceholderFormat(squirrel.Dollar)

		for _, entry := range entries {
			insert = insert.Values(
				projectID,
				date.Format("2006-01-02"),
				entry.SKU,
				entry.Quantity,
				entry.Revenue,
				entry.Fees,
				entry.Acquiring,
				entry.Logistics,
				entry.Returns,
			)
		}

		insertQuery, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("building insert query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("inserting rows: %w", err)
		}

		return nil
	})
}
