package mcp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaRepo provides column metadata of the fitness tables.
type SchemaRepo interface {
	GetFitnessColumns(ctx context.Context) ([]SchemaColumn, error)
}

// SchemaColumn is one row of information_schema.columns.
type SchemaColumn struct {
	TableName  string
	ColumnName string
	DataType   string
	IsNullable string
	ColumnDef  *string
}

// users is left out, it only holds credentials.
var fitnessTables = []string{"profiles", "metric", "goal", "meal", "exercise"}

type poolSchemaRepo struct {
	pool *pgxpool.Pool
}

func NewPoolSchemaRepo(pool *pgxpool.Pool) SchemaRepo {
	return &poolSchemaRepo{pool: pool}
}

func (r *poolSchemaRepo) GetFitnessColumns(ctx context.Context) ([]SchemaColumn, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT table_name, column_name, data_type, is_nullable, column_default
			FROM information_schema.columns
			WHERE table_schema = 'public'
			  AND table_name = ANY($1)
			ORDER BY table_name, ordinal_position;`,
		fitnessTables,
	)
	if err != nil {
		return nil, fmt.Errorf("query information_schema: %w", err)
	}

	cols, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SchemaColumn, error) {
		var c SchemaColumn
		err := row.Scan(&c.TableName, &c.ColumnName, &c.DataType, &c.IsNullable, &c.ColumnDef)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect columns: %w", err)
	}

	return cols, nil
}
