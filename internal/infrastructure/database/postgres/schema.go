package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Constraint names follow PostgreSQL defaults; the repositories match on them.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id BIGSERIAL PRIMARY KEY,
		nombre VARCHAR(50) NOT NULL,
		descripcion VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id BIGSERIAL PRIMARY KEY,
		nombre VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		rut VARCHAR(20) NOT NULL UNIQUE,
		rol_id BIGINT REFERENCES roles(id)
	)`,
}

func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Error().Err(err).Str("component", "CreateSchema").Msg("")
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return nil
}
