package user

import (
	"context"

	"github.com/KhoaNam225/comssa-backend-workshop/core/domain"
	"github.com/KhoaNam225/comssa-backend-workshop/core/port/out"
)

// Service sits between the HTTP handlers and the user repository. It owns no
// state beyond the repository port; absent results pass through as nil.
type Service struct {
	userRepo out.UserRepository
}

func NewService(userRepo out.UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.userRepo.Create(ctx, req)
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, id string, req *domain.UpdateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.userRepo.Update(ctx, id, req)
}

func (s *Service) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.userRepo.Delete(ctx, id)
}
