package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAccountNotFound covers both unknown and deactivated accounts.
var ErrAccountNotFound = errors.New("account not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// FindActiveByEmail loads the account snapshot and password hash for an
// active account.
func (s *Store) FindActiveByEmail(ctx context.Context, email string) (Snapshot, string, error) {
	var snap Snapshot
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT id, first_name, last_name, email, profile_url, COALESCE(employee_id::text, ''), password_hash
    FROM users
    WHERE email = $1 AND is_active = true
  `, email).Scan(&snap.ID, &snap.FirstName, &snap.LastName, &snap.Email, &snap.ProfileURL, &snap.EmployeeID, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Snapshot{}, "", ErrAccountNotFound
	}
	if err != nil {
		return Snapshot{}, "", err
	}

	roles, err := s.roleNames(ctx, snap.ID)
	if err != nil {
		return Snapshot{}, "", err
	}
	snap.Roles = roles
	return snap, hash, nil
}

// PasswordHashByEmail looks up any account by email, active or not. The
// reset flow must work for deactivated accounts too.
func (s *Store) PasswordHashByEmail(ctx context.Context, email string) (string, string, error) {
	var userID, hash string
	err := s.DB.QueryRow(ctx, "SELECT id, password_hash FROM users WHERE email = $1", email).Scan(&userID, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", ErrAccountNotFound
	}
	if err != nil {
		return "", "", err
	}
	return userID, hash, nil
}

func (s *Store) UpdatePassword(ctx context.Context, userID, hash string) error {
	cmd, err := s.DB.Exec(ctx, "UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2", hash, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (s *Store) roleNames(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.name
    FROM user_roles ur
    JOIN roles r ON ur.role_id = r.id
    WHERE ur.user_id = $1
    ORDER BY r.name
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
