package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KhoaNam225/comssa-backend-workshop/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memRepo is an in-memory UserRepository with the same absence semantics as
// the MongoDB adapter: malformed ids are not found, never errors.
type memRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*domain.User)}
}

func (r *memRepo) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := &domain.User{
		ID:        primitive.NewObjectID().Hex(),
		Name:      req.Name,
		Email:     req.Email,
		Age:       req.Age,
		CreatedAt: time.Now().UTC(),
	}
	r.users[u.ID] = u

	cp := *u
	return &cp, nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memRepo) Update(ctx context.Context, id string, req *domain.UpdateUserRequest) (*domain.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Age != nil {
		u.Age = *req.Age
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func TestCreateThenGet(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &domain.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Age: 30})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if created.ID == "" {
		t.Error("CreateUser() returned empty id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreateUser() returned zero created_at")
	}
	if created.Name != "Ada" || created.Email != "ada@example.com" || created.Age != 30 {
		t.Errorf("CreateUser() = %+v, input fields changed", created)
	}

	got, err := svc.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetUser() = nil for freshly created user")
	}
	if *got != *created {
		t.Errorf("GetUser() = %+v, want %+v", got, created)
	}
}

func TestCreateUser_Invalid(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.CreateUser(context.Background(), &domain.CreateUserRequest{Email: "ada@example.com", Age: 30})
	if err == nil {
		t.Fatal("CreateUser() with missing name succeeded")
	}
}

func TestGetUser_Absent(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		id   string
	}{
		{"malformed id", "not-an-id"},
		{"well-formed but absent", primitive.NewObjectID().Hex()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetUser(ctx, tt.id)
			if err != nil {
				t.Fatalf("GetUser() error = %v, absence must not be an error", err)
			}
			if got != nil {
				t.Errorf("GetUser() = %+v, want nil", got)
			}
		})
	}
}

func TestUpdateUser_Empty(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &domain.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Age: 30})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	updated, err := svc.UpdateUser(ctx, created.ID, &domain.UpdateUserRequest{})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated == nil || *updated != *created {
		t.Errorf("UpdateUser(empty) = %+v, want unchanged %+v", updated, created)
	}
}

func TestUpdateUser_SingleField(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &domain.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Age: 30})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	age := 31
	updated, err := svc.UpdateUser(ctx, created.ID, &domain.UpdateUserRequest{Age: &age})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated == nil {
		t.Fatal("UpdateUser() = nil for existing user")
	}
	if updated.Age != 31 {
		t.Errorf("Age = %d, want 31", updated.Age)
	}
	if updated.Name != created.Name || updated.Email != created.Email {
		t.Errorf("UpdateUser() changed untouched fields: %+v", updated)
	}

	got, err := svc.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got.Age != 31 {
		t.Errorf("persisted Age = %d, want 31", got.Age)
	}
}

func TestUpdateUser_Absent(t *testing.T) {
	svc := NewService(newMemRepo())

	age := 31
	updated, err := svc.UpdateUser(context.Background(), "not-an-id", &domain.UpdateUserRequest{Age: &age})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated != nil {
		t.Errorf("UpdateUser() = %+v, want nil for malformed id", updated)
	}
}

func TestDeleteUser_Twice(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &domain.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Age: 30})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	deleted, err := svc.DeleteUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if !deleted {
		t.Error("DeleteUser() = false on first delete")
	}

	deleted, err = svc.DeleteUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if deleted {
		t.Error("DeleteUser() = true on second delete")
	}
}

func TestListUsers_AfterCreatesAndDelete(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	const n = 5
	ids := make(map[string]bool, n)
	var victim string
	for i := 0; i < n; i++ {
		created, err := svc.CreateUser(ctx, &domain.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Age: 30 + i})
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		ids[created.ID] = true
		victim = created.ID
	}

	if _, err := svc.DeleteUser(ctx, victim); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	delete(ids, victim)

	users, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users) != n-1 {
		t.Fatalf("ListUsers() returned %d users, want %d", len(users), n-1)
	}
	for _, u := range users {
		if !ids[u.ID] {
			t.Errorf("ListUsers() returned unexpected user %s", u.ID)
		}
	}
}
