package employee

import (
	"context"
	"fmt"
	"strings"

	"crud/inner/database"

	"github.com/jmoiron/sqlx"
)

const selectEmployee = "SELECT e.id, e.name, e.gender, e.email, e.department_id, d.name AS department_name, e.created_at, e.updated_at" +
	" FROM employee e" +
	" LEFT JOIN department d ON d.id = e.department_id"

type Repository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// NameEqualTo условие точного (регистрозависимого) совпадения имени
func NameEqualTo(name string) *database.Criteria {
	return database.NewCriteria().AndEqualTo("e.name", name)
}

// IdIn условие принадлежности id набору
func IdIn(ids []int64) *database.Criteria {
	return database.NewCriteria().AndIn("e.id", ids)
}

func (r *Repository) FindById(ctx context.Context, id int64) (employee Entity, err error) {
	err = r.db.GetContext(ctx, &employee, selectEmployee+" WHERE e.id = $1", id)
	return employee, err
}

// Insert записывает только заданные колонки, остальные получают значения по умолчанию
func (r *Repository) Insert(ctx context.Context, employee *Entity) error {
	columns := []string{"name"}
	args := []any{employee.Name}
	if employee.Gender != nil {
		columns = append(columns, "gender")
		args = append(args, *employee.Gender)
	}
	if employee.Email != nil {
		columns = append(columns, "email")
		args = append(args, *employee.Email)
	}
	if employee.DepartmentId != nil {
		columns = append(columns, "department_id")
		args = append(args, *employee.DepartmentId)
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO employee (%s) VALUES (%s) RETURNING id",
		strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	return r.db.QueryRowxContext(ctx, query, args...).Scan(&employee.Id)
}

func (r *Repository) FindWithPagination(ctx context.Context, criteria *database.Criteria, limit, offset int) ([]Entity, error) {
	where, args := criteria.Where()
	next := criteria.NextPlaceholder()
	query := fmt.Sprintf("%s%s ORDER BY e.id LIMIT $%d OFFSET $%d", selectEmployee, where, next, next+1)
	args = append(args, limit, offset)

	var employees []Entity
	err := r.db.SelectContext(ctx, &employees, query, args...)
	return employees, err
}

func (r *Repository) CountByCriteria(ctx context.Context, criteria *database.Criteria) (int64, error) {
	where, args := criteria.Where()
	var count int64
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM employee e"+where, args...)
	return count, err
}

// UpdateSelective обновляет только заданные в patch колонки
func (r *Repository) UpdateSelective(ctx context.Context, id int64, patch Patch) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Gender != nil {
		set("gender", *patch.Gender)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.DepartmentId != nil {
		set("department_id", *patch.DepartmentId)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE employee SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args))
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) DeleteById(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM employee WHERE id = $1", id)
	return err
}

// DeleteByCriteria удаляет все строки, подходящие под условие, одним запросом.
// Пустое условие не допускается, чтобы не очистить таблицу целиком.
func (r *Repository) DeleteByCriteria(ctx context.Context, criteria *database.Criteria) error {
	if criteria.IsEmpty() {
		return fmt.Errorf("delete by criteria: empty criteria")
	}
	where, args := criteria.Where()
	_, err := r.db.ExecContext(ctx, "DELETE FROM employee AS e"+where, args...)
	return err
}
