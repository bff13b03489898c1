package repositories

import (
	"MediHome/models"
	"context"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when no directory entry matches a lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the staff directory. The directory is fixed at startup;
// lookups are exact-match linear scans.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context) []models.User
}

type userRepository struct {
	users []models.User
}

// NewUserRepository builds a directory over the given users.
func NewUserRepository(users []models.User) UserRepository {
	return &userRepository{users: users}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *userRepository) GetAll(ctx context.Context) []models.User {
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}
