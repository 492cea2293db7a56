package out

import (
	"context"

	"github.com/KhoaNam225/comssa-backend-workshop/core/domain"
)

// UserRepository defines the interface for user persistence.
//
// Absence is a first-class outcome, not an error: lookups return (nil, nil)
// when no record matches, including when the given id is not a well-formed
// identifier for the store. Errors are reserved for store-level faults.
type UserRepository interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, req *domain.UpdateUserRequest) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
