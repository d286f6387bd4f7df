package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/database/postgres"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) getBy(ctx context.Context, cond squirrel.Eq) (*domain.User, error) {
	cond["deleted_at"] = nil

	query, args, err := squirrel.
		Select("id, name, email, password_hash, active, created_at, deleted_at").
		From(usersTable).
		Where(cond).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	user := &domain.User{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.CreatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(usersTable).
		Columns("name", "email", "password_hash", "active").
		Values(user.Name, user.Email, user.PasswordHash, user.Active).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	return user, nil
}
