// Package org holds the lookup entities referenced by employees and
// accounts: designations (job titles) and roles (access assignments).
package org

import (
	"errors"
	"time"
)

var (
	// ErrNameTaken rejects a duplicate role or designation name.
	ErrNameTaken = errors.New("name already exists")
	// ErrNotFound is returned on update/delete of a missing entry.
	ErrNotFound = errors.New("not found")
	// ErrInUse rejects deleting an entry that employees or accounts
	// still reference.
	ErrInUse = errors.New("entry is still referenced")
)

// Lookup is one role or designation row; the two tables share a shape.
type Lookup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
