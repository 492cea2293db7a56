package domain

import (
	"fmt"
	"time"
)

const (
	MinAge = 0
	MaxAge = 150
)

// ValidationError marks schema-level check failures so the HTTP layer can
// tell them apart from store faults.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// User is the full view of a stored user record. ID and CreatedAt are
// assigned by the database exactly once, at creation.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest carries the caller-supplied fields of a new user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// Validate performs the schema-level checks before the record reaches the
// data access layer.
func (r *CreateUserRequest) Validate() error {
	if r.Name == "" {
		return validationErrorf("name is required")
	}
	if r.Email == "" {
		return validationErrorf("email is required")
	}
	if r.Age < MinAge || r.Age > MaxAge {
		return validationErrorf("age must be between %d and %d", MinAge, MaxAge)
	}
	return nil
}

// UpdateUserRequest carries a partial update. Nil fields are left untouched
// by the update; there is no way to clear a field.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Age   *int    `json:"age,omitempty"`
}

// Validate checks only the fields that are present.
func (r *UpdateUserRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return validationErrorf("name must not be empty")
	}
	if r.Email != nil && *r.Email == "" {
		return validationErrorf("email must not be empty")
	}
	if r.Age != nil && (*r.Age < MinAge || *r.Age > MaxAge) {
		return validationErrorf("age must be between %d and %d", MinAge, MaxAge)
	}
	return nil
}

// IsEmpty reports whether the update names no fields at all, in which case
// an update call degenerates to a plain fetch.
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Age == nil
}
