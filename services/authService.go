package services

import (
	"MediHome/models"
	"MediHome/repositories"
	"MediHome/utils"
	"context"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionState is the lifecycle state of the session.
type SessionState string

const (
	// SessionUnknown is only observable before RestoreSession has run.
	SessionUnknown         SessionState = "unknown"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)

// Failure messages surfaced to the presentation layer.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgLoginFailed        = "Login failed. Please try again."
)

// SessionSnapshot is a by-value view of the current session.
type SessionSnapshot struct {
	User      *models.User `json:"user,omitempty"`
	State     SessionState `json:"state"`
	IsLoading bool         `json:"is_loading"`
	Error     string       `json:"error,omitempty"`
}

// AuthService is the identity store: it owns the session, gates who may issue
// commands, and persists the last-known identity for restore. Operations
// never return internal errors; failures become messages on the session.
type AuthService interface {
	Login(ctx context.Context, email, password string) bool
	Logout(ctx context.Context)
	RestoreSession(ctx context.Context)
	ForgotPassword(ctx context.Context, email string) bool
	ClearError()
	Session() SessionSnapshot
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type authService struct {
	users    repositories.UserRepository
	sessions repositories.SessionRepository
	latency  time.Duration

	mu        sync.Mutex // serializes login/logout/restore
	stateMu   sync.RWMutex
	user      *models.User
	state     SessionState
	isLoading bool
	lastErr   string
}

// NewAuthService builds the identity store. latency is the simulated
// transport delay applied to login and recovery; pass zero to disable it.
func NewAuthService(users repositories.UserRepository, sessions repositories.SessionRepository, latency time.Duration) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		latency:  latency,
		state:    SessionUnknown,
	}
}

// Login looks the user up by exact email match and checks the credential.
// On success the user is persisted as the current session. On any mismatch
// the session stays unauthenticated with an error message set.
func (s *authService) Login(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	if err := utils.ValidateCredentials(email, password); err != nil {
		s.loginFailure(msgInvalidCredentials)
		return false
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.loginFailure(msgInvalidCredentials)
		return false
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.loginFailure(msgInvalidCredentials)
		return false
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		log.Printf("Failed to persist session: %v", err)
		s.loginFailure(msgLoginFailed)
		return false
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.user = user
	s.state = SessionAuthenticated
	s.lastErr = ""
	return true
}

// Logout clears the persisted session and the in-memory session. It never
// fails, even when no session existed.
func (s *authService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		log.Printf("Error during logout: %v", err)
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.user = nil
	s.state = SessionUnauthenticated
	s.lastErr = ""
}

// RestoreSession re-establishes the previously persisted user, if any,
// without re-validating the credential. It runs once at process start;
// absence of stored data leaves the session unauthenticated, not errored.
func (s *authService) RestoreSession(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.sessions.Load(ctx)
	if err != nil {
		log.Printf("Error loading stored session: %v", err)
		user = nil
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.user = user
	if user != nil {
		s.state = SessionAuthenticated
	} else {
		s.state = SessionUnauthenticated
	}
}

// ForgotPassword starts account recovery. When SMTP is configured a recovery
// code is generated, stored with a short TTL and emailed; otherwise the
// operation degrades to a simulated success. It reports success either way so
// the endpoint does not leak which emails exist.
func (s *authService) ForgotPassword(ctx context.Context, email string) bool {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	if os.Getenv("SMTP_HOST") == "" {
		return true
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return true
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, user.Email, code); err != nil {
		log.Printf("Failed to set reset code: %v", err)
		return true
	}
	if err := utils.SendResetCodeEmail(user.Email, code); err != nil {
		log.Printf("Failed to send reset code email: %v", err)
	}
	return true
}

// ClearError clears the session error message.
func (s *authService) ClearError() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.lastErr = ""
}

// Session returns a by-value snapshot of the current session.
func (s *authService) Session() SessionSnapshot {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	snap := SessionSnapshot{
		State:     s.state,
		IsLoading: s.isLoading,
		Error:     s.lastErr,
	}
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

// GetUserByID exposes directory lookups for presentation needs.
func (s *authService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *authService) setLoading(v bool) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.isLoading = v
}

func (s *authService) loginFailure(msg string) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.user = nil
	s.state = SessionUnauthenticated
	s.lastErr = msg
}
