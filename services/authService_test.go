package services

import (
	"MediHome/models"
	"MediHome/repositories"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySessionRepository keeps the persisted session in memory for tests.
type memorySessionRepository struct {
	user  *models.User
	saves int
}

func (m *memorySessionRepository) Save(ctx context.Context, user *models.User) error {
	u := *user
	m.user = &u
	m.saves++
	return nil
}

func (m *memorySessionRepository) Load(ctx context.Context) (*models.User, error) {
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

func (m *memorySessionRepository) Clear(ctx context.Context) error {
	m.user = nil
	return nil
}

func newTestAuthService() (AuthService, *memorySessionRepository) {
	sessions := &memorySessionRepository{}
	users := repositories.NewUserRepository(models.SeedUsers())
	return NewAuthService(users, sessions, 0), sessions
}

func TestLoginSuccess(t *testing.T) {
	auth, sessions := newTestAuthService()
	ctx := context.Background()

	ok := auth.Login(ctx, "ana@medical.com", "password")
	require.True(t, ok)

	snap := auth.Session()
	assert.Equal(t, SessionAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "1", snap.User.ID)
	assert.Equal(t, models.RoleCoordinator, snap.User.Role)
	assert.Empty(t, snap.Error)
	assert.False(t, snap.IsLoading)

	// The session was persisted for restore.
	require.NotNil(t, sessions.user)
	assert.Equal(t, "1", sessions.user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, sessions := newTestAuthService()
	ctx := context.Background()

	ok := auth.Login(ctx, "ana@medical.com", "wrong-password")
	require.False(t, ok)

	snap := auth.Session()
	assert.Equal(t, SessionUnauthenticated, snap.State)
	assert.Nil(t, snap.User)
	assert.Equal(t, "Invalid email or password", snap.Error)
	assert.Nil(t, sessions.user)
}

func TestLoginUnknownEmail(t *testing.T) {
	auth, sessions := newTestAuthService()

	ok := auth.Login(context.Background(), "nobody@medical.com", "password")
	require.False(t, ok)
	assert.Equal(t, "Invalid email or password", auth.Session().Error)
	assert.Nil(t, sessions.user)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	auth, _ := newTestAuthService()

	assert.False(t, auth.Login(context.Background(), "", "password"))
	assert.False(t, auth.Login(context.Background(), "ana@medical.com", ""))
	assert.Equal(t, "Invalid email or password", auth.Session().Error)
}

func TestClearErrorAfterFailedLogin(t *testing.T) {
	auth, _ := newTestAuthService()

	auth.Login(context.Background(), "ana@medical.com", "wrong-password")
	require.NotEmpty(t, auth.Session().Error)

	auth.ClearError()
	snap := auth.Session()
	assert.Empty(t, snap.Error)
	// Clearing the error does not change the session state.
	assert.Equal(t, SessionUnauthenticated, snap.State)
}

func TestLogoutClearsSession(t *testing.T) {
	auth, sessions := newTestAuthService()
	ctx := context.Background()

	require.True(t, auth.Login(ctx, "carlos@medical.com", "password"))
	auth.Logout(ctx)

	snap := auth.Session()
	assert.Equal(t, SessionUnauthenticated, snap.State)
	assert.Nil(t, snap.User)
	assert.Nil(t, sessions.user)

	// Logging out twice is harmless.
	auth.Logout(ctx)
	assert.Equal(t, SessionUnauthenticated, auth.Session().State)
}

func TestRestoreSession(t *testing.T) {
	auth, sessions := newTestAuthService()
	ctx := context.Background()

	// Nothing persisted: restore resolves to unauthenticated.
	assert.Equal(t, SessionUnknown, auth.Session().State)
	auth.RestoreSession(ctx)
	assert.Equal(t, SessionUnauthenticated, auth.Session().State)

	// A persisted user is restored without re-checking the credential.
	users := repositories.NewUserRepository(models.SeedUsers())
	maria, err := users.GetByID(ctx, "3")
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, maria))

	auth.RestoreSession(ctx)
	snap := auth.Session()
	assert.Equal(t, SessionAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "3", snap.User.ID)
	assert.Equal(t, models.RoleNurse, snap.User.Role)
}

func TestForgotPasswordWithoutMailConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	auth, _ := newTestAuthService()

	// Degrades to a simulated success and never reveals whether the
	// address exists.
	assert.True(t, auth.ForgotPassword(context.Background(), "ana@medical.com"))
	assert.True(t, auth.ForgotPassword(context.Background(), "nobody@medical.com"))
}

func TestGetUserByID(t *testing.T) {
	auth, _ := newTestAuthService()

	user, err := auth.GetUserByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Carlos García", user.Name)
	assert.Equal(t, models.RoleDoctor, user.Role)

	_, err = auth.GetUserByID(context.Background(), "99")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
