package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"cat-gallery/internal/domain/cats"

	"github.com/jackc/pgx/v5/pgtype"
)

// CatsRepo lee el catálogo desde la tabla cats (solo lectura):
//
//	CREATE TABLE cats (
//		id          integer PRIMARY KEY,
//		name        text    NOT NULL,
//		image       text    NOT NULL,
//		age         text    NOT NULL,
//		personality text[]  NOT NULL DEFAULT '{}',
//		color       text    NOT NULL,
//		breed       text    NOT NULL
//	);
type CatsRepo struct {
	db   *sql.DB
	typs *pgtype.Map
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db, typs: pgtype.NewMap()}
}

func (r *CatsRepo) All(ctx context.Context) ([]cats.Cat, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, image, age,
			personality, color, breed
		FROM cats
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query cats: %w", err)
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		var c cats.Cat
		var personality []string
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Image,
			&c.Age,
			r.typs.SQLScanner(&personality),
			&c.Color,
			&c.Breed,
		); err != nil {
			return nil, fmt.Errorf("scan cat: %w", err)
		}

		// text[] NULL => lista vacía
		if personality == nil {
			personality = []string{}
		}
		c.Personality = personality

		out = append(out, c)
	}

	return out, rows.Err()
}
