package database

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Criteria набор условий для WHERE, объединённых через AND.
// Плейсхолдеры нумеруются в порядке добавления ($1, $2, ...).
// nil *Criteria означает выборку без условий.
type Criteria struct {
	conditions []string
	args       []any
}

func NewCriteria() *Criteria {
	return &Criteria{}
}

// AndEqualTo добавляет условие "column = value"
func (c *Criteria) AndEqualTo(column string, value any) *Criteria {
	c.args = append(c.args, value)
	c.conditions = append(c.conditions, fmt.Sprintf("%s = $%d", column, len(c.args)))
	return c
}

// AndNotEqualTo добавляет условие "column <> value"
func (c *Criteria) AndNotEqualTo(column string, value any) *Criteria {
	c.args = append(c.args, value)
	c.conditions = append(c.conditions, fmt.Sprintf("%s <> $%d", column, len(c.args)))
	return c
}

// AndIn добавляет условие "column = ANY(values)", values - срез, поддерживаемый pq.Array
func (c *Criteria) AndIn(column string, values any) *Criteria {
	c.args = append(c.args, pq.Array(values))
	c.conditions = append(c.conditions, fmt.Sprintf("%s = ANY ($%d)", column, len(c.args)))
	return c
}

func (c *Criteria) IsEmpty() bool {
	return c == nil || len(c.conditions) == 0
}

// Where возвращает " WHERE ..." (или пустую строку) и аргументы запроса
func (c *Criteria) Where() (string, []any) {
	if c.IsEmpty() {
		return "", nil
	}
	args := make([]any, len(c.args))
	copy(args, c.args)
	return " WHERE " + strings.Join(c.conditions, " AND "), args
}

// NextPlaceholder номер следующего свободного плейсхолдера,
// нужен для LIMIT/OFFSET и других параметров после условий
func (c *Criteria) NextPlaceholder() int {
	if c == nil {
		return 1
	}
	return len(c.args) + 1
}
