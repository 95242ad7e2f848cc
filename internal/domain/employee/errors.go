package employee

import "errors"

var (
	// ErrDesignationNotFound aborts creation when the named designation
	// does not exist.
	ErrDesignationNotFound = errors.New("designation not found")

	// ErrEmailExists aborts creation when the account email is taken.
	ErrEmailExists = errors.New("email already exists")

	// ErrNotFound is returned by reads, updates and deletes on a missing
	// employee.
	ErrNotFound = errors.New("employee not found")
)
