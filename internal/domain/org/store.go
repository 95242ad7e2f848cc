package org

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateRole(ctx context.Context, name, description string) (*Lookup, error) {
	return s.create(ctx, "roles", name, description)
}

func (s *Store) UpdateRole(ctx context.Context, id, name, description string) (*Lookup, error) {
	return s.update(ctx, "roles", id, name, description)
}

func (s *Store) DeleteRole(ctx context.Context, id string) error {
	return s.delete(ctx, "roles", id)
}

func (s *Store) ListRoles(ctx context.Context) ([]Lookup, error) {
	return s.list(ctx, "roles")
}

func (s *Store) CreateDesignation(ctx context.Context, name, description string) (*Lookup, error) {
	return s.create(ctx, "designations", name, description)
}

func (s *Store) UpdateDesignation(ctx context.Context, id, name, description string) (*Lookup, error) {
	return s.update(ctx, "designations", id, name, description)
}

func (s *Store) DeleteDesignation(ctx context.Context, id string) error {
	return s.delete(ctx, "designations", id)
}

func (s *Store) ListDesignations(ctx context.Context) ([]Lookup, error) {
	return s.list(ctx, "designations")
}

// roles and designations share one table shape; table is always one of
// the two constants above, never caller input.
func (s *Store) create(ctx context.Context, table, name, description string) (*Lookup, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM "+table+" WHERE name = $1", name).Scan(&count); err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameTaken
	}

	var entry Lookup
	err := s.DB.QueryRow(ctx, "INSERT INTO "+table+" (name, description) VALUES ($1, $2) RETURNING id, name, description, created_at",
		name, description).Scan(&entry.ID, &entry.Name, &entry.Description, &entry.CreatedAt)
	if err != nil {
		return nil, mapNameConflict(err)
	}
	return &entry, nil
}

func (s *Store) update(ctx context.Context, table, id, name, description string) (*Lookup, error) {
	var entry Lookup
	err := s.DB.QueryRow(ctx, "UPDATE "+table+" SET name = $1, description = $2 WHERE id = $3 RETURNING id, name, description, created_at",
		name, description, id).Scan(&entry.ID, &entry.Name, &entry.Description, &entry.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, mapNameConflict(err)
	}
	return &entry, nil
}

func (s *Store) delete(ctx context.Context, table, id string) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return mapForeignKeyConflict(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) list(ctx context.Context, table string) ([]Lookup, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, description, created_at FROM "+table+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lookup
	for rows.Next() {
		var entry Lookup
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Description, &entry.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// The unique index on name is the authoritative guard; the pre-check in
// create only produces a friendlier error without a round trip race.
func mapNameConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrNameTaken
	}
	return err
}

// Employees point at designations and accounts at roles, so a delete
// can trip a foreign key. Surface that as ErrInUse instead of a raw
// driver error.
func mapForeignKeyConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrInUse
	}
	return err
}
