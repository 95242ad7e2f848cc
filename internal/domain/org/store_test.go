package org

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapNameConflict(t *testing.T) {
	if got := mapNameConflict(&pgconn.PgError{Code: "23505"}); !errors.Is(got, ErrNameTaken) {
		t.Fatalf("unique violation: got %v want ErrNameTaken", got)
	}
	other := errors.New("connection reset")
	if got := mapNameConflict(other); got != other {
		t.Fatalf("unrelated error must pass through, got %v", got)
	}
}

func TestMapForeignKeyConflict(t *testing.T) {
	if got := mapForeignKeyConflict(&pgconn.PgError{Code: "23503"}); !errors.Is(got, ErrInUse) {
		t.Fatalf("foreign key violation: got %v want ErrInUse", got)
	}
	// Other constraint classes keep their driver error.
	if got := mapForeignKeyConflict(&pgconn.PgError{Code: "23505"}); errors.Is(got, ErrInUse) {
		t.Fatal("unique violation must not map to ErrInUse")
	}
	other := errors.New("connection reset")
	if got := mapForeignKeyConflict(other); got != other {
		t.Fatalf("unrelated error must pass through, got %v", got)
	}
}
