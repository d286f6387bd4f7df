package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/database/postgres"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
)

const projectsTable = "projects"

type ProjectRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Project, error)
	ListActive(ctx context.Context) ([]*domain.Project, error)
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	query, args, err := squirrel.
		Select("id, name, active, created_at").
		From(projectsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	project := &domain.Project{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(&project.ID, &project.Name, &project.Active, &project.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	return project, nil
}

func (r *projectRepository) ListActive(ctx context.Context) ([]*domain.Project, error) {
	query, args, err := squirrel.
		Select("id, name, active, created_at").
		From(projectsTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
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

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project := &domain.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.Active, &project.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return projects, nil
}
