package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailTaken is returned when registration reuses an existing email.
	ErrEmailTaken = errors.New("Email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures never reveal which accounts exist.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	ErrTokenExpired = errors.New("Token expired")
	ErrTokenInvalid = errors.New("Invalid token")
	ErrUserNotFound = errors.New("User not found")

	// ErrNoFieldsToUpdate is returned by partial updates with an empty patch.
	ErrNoFieldsToUpdate = errors.New("No fields to update")

	// ErrNotFound is the sentinel wrapped by NotFound; match with errors.Is.
	ErrNotFound = errors.New("not found")
)

// NotFound builds a resource-specific not-found error, e.g. NotFound("Client")
// yields "Client not found" and still matches errors.Is(err, ErrNotFound).
func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// RoleInUseError rejects deletion of a role that team members still hold.
type RoleInUseError struct {
	Count int64
}

func (e *RoleInUseError) Error() string {
	return fmt.Sprintf("Cannot delete role: %d team member(s) assigned", e.Count)
}
