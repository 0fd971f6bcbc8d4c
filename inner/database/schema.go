package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema таблицы department и employee; повторное применение ничего не меняет
const Schema = `
CREATE TABLE IF NOT EXISTS department (
    id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS employee (
    id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
    name TEXT NOT NULL UNIQUE,
    gender CHAR(1) CHECK (gender IN ('M', 'F')),
    email TEXT,
    department_id BIGINT REFERENCES department(id) ON DELETE SET NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// ApplySchema создаёт таблицы, если их ещё нет
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
