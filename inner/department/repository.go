package department

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) FindAll(ctx context.Context) ([]Entity, error) {
	var departments []Entity
	err := r.db.SelectContext(ctx, &departments, "SELECT id, name FROM department ORDER BY id")
	return departments, err
}

// Add создаёт отдел; если отдел с таким названием уже есть, возвращает его id
func (r *Repository) Add(ctx context.Context, department *Entity) error {
	return r.db.QueryRowxContext(ctx,
		"INSERT INTO department (name) VALUES ($1) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id",
		department.Name,
	).Scan(&department.Id)
}
