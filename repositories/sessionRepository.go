package repositories

import (
	"MediHome/cache"
	"MediHome/models"
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// sessionKey is the single fixed key the authenticated user is persisted
// under. Written on login, deleted on logout, read once at startup.
const sessionKey = "auth_user"

// SessionRepository persists the current authenticated user between runs.
// Absence of a stored user is not an error: Load returns (nil, nil).
type SessionRepository interface {
	Save(ctx context.Context, user *models.User) error
	Load(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository builds a SessionRepository backed by the shared cache.
func NewSessionRepository(cache *cache.Cache) SessionRepository {
	return &sessionRepository{cache: cache}
}

func (r *sessionRepository) Save(ctx context.Context, user *models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session user")
	}
	// No expiry: the session lives until logout.
	if err := r.cache.Set(ctx, sessionKey, userJSON, 0); err != nil {
		return errors.Wrap(err, "failed to persist session")
	}
	return nil
}

func (r *sessionRepository) Load(ctx context.Context) (*models.User, error) {
	stored, err := r.cache.Get(ctx, sessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stored session")
	}
	if stored == "" {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(stored), &user); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal stored session")
	}
	return &user, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.cache.Delete(ctx, sessionKey)
}
