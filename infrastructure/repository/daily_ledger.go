package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/database/postgres"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
)

const dailyLedgersTable = "daily_ledgers"

const dailyLedgerColumns = "id, project_id, date, revenue, orders, orders_created, orders_warehouse, orders_delivered, fees, acquiring, logistics, returns, created_at, updated_at"

type DailyLedgerRepository interface {
	GetByProjectAndDate(ctx context.Context, projectID int, date time.Time) (*domain.DailyLedger, error)
	GetByDateRange(ctx context.Context, projectID int, startDate, endDate time.Time) ([]*domain.DailyLedger, error)
	SaveOrUpdate(ctx context.Context, ledger *domain.DailyLedger) error
}

type dailyLedgerRepository struct {
	conn *postgres.Connection
}

func NewDailyLedgerRepository(conn *postgres.Connection) DailyLedgerRepository {
	return &dailyLedgerRepository{
		conn: conn,
	}
}

func (r *dailyLedgerRepository) GetByProjectAndDate(ctx context.Context, projectID int, date time.Time) (*domain.DailyLedger, error) {
	query, args, err := squirrel.
		Select(dailyLedgerColumns).
		From(dailyLedgersTable).
		Where(squirrel.Eq{"project_id": projectID, "date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	ledger, err := r.scanLedger(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning daily ledger: %w", err)
	}

	return ledger, nil
}

func (r *dailyLedgerRepository) GetByDateRange(ctx context.Context, projectID int, startDate, endDate time.Time) ([]*domain.DailyLedger, error) {
	query, args, err := squirrel.
		Select(dailyLedgerColumns).
		From(dailyLedgersTable).
		Where(squirrel.Eq{"project_id": projectID}).
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		OrderBy("date ASC").
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

	ledgers := make([]*domain.DailyLedger, 0)
	for rows.Next() {
		ledger := &domain.DailyLedger{}
		err := rows.Scan(
			&ledger.ID,
			&ledger.ProjectID,
			&ledger.Date,
			&ledger.Revenue,
			&ledger.Orders,
			&ledger.OrdersCreated,
			&ledger.OrdersWarehouse,
			&ledger.OrdersDelivered,
			&ledger.Fees,
			&ledger.Acquiring,
			&ledger.Logistics,
			&ledger.Returns,
			&ledger.CreatedAt,
			&ledger.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning daily ledger: %w", err)
		}
		ledgers = append(ledgers, ledger)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return ledgers, nil
}

func (r *dailyLedgerRepository) SaveOrUpdate(ctx context.Context, ledger *domain.DailyLedger) error {
	query := squirrel.StatementBuilder.
		Insert(dailyLedgersTable).
		Columns("project_id", "date", "revenue", "orders", "orders_created", "orders_warehouse", "orders_delivered", "fees", "acquiring", "logistics", "returns").
		Values(
			ledger.ProjectID,
			ledger.Date.Format("2006-01-02"),
			ledger.Revenue,
			ledger.Orders,
			ledger.OrdersCreated,
			ledger.OrdersWarehouse,
			ledger.OrdersDelivered,
			ledger.Fees,
			ledger.Acquiring,
			ledger.Logistics,
			ledger.Returns,
		).
		Suffix(`
			ON CONFLICT (project_id, date) DO UPDATE SET
				revenue = EXCLUDED.revenue,
				orders = EXCLUDED.orders,
				orders_created = EXCLUDED.orders_created,
				orders_warehouse = EXCLUDED.orders_warehouse,
				orders_delivered = EXCLUDED.orders_delivered,
				fees = EXCLUDED.fees,
				acquiring = EXCLUDED.acquiring,
				logistics = EXCLUDED.logistics,
				returns = EXCLUDED.returns,
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

func (r *dailyLedgerRepository) scanLedger(row *sql.Row) (*domain.DailyLedger, error) {
	ledger := &domain.DailyLedger{}

	err := row.Scan(
		&ledger.ID,
		&ledger.ProjectID,
		&ledger.Date,
		&ledger.Revenue,
		&ledger.Orders,
		&ledger.OrdersCreated,
		&ledger.OrdersWarehouse,
		&ledger.OrdersDelivered,
		&ledger.Fees,
		&ledger.Acquiring,
		&ledger.Logistics,
		&ledger.Returns,
		&ledger.CreatedAt,
		&ledger.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return ledger, nil
}
