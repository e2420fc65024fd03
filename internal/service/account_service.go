package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
	"github.com/pr-poehali-dev/online-shop-network/internal/storage"
	"github.com/pr-poehali-dev/online-shop-network/pkg/apierror"
)

// gatewayClient is the slice of the auth gateway client the service needs.
type gatewayClient interface {
	Register(ctx context.Context, username, email, password string) (model.Session, error)
	Login(ctx context.Context, login, password string) (model.Session, error)
}

// AccountService owns the session lifecycle: it is the gate that keeps the
// rest of the app locked to the auth surface until a session exists.
type AccountService struct {
	store   storage.Store
	gateway gatewayClient

	mu      sync.RWMutex
	session *model.Session
}

// NewAccountService consults the store once at startup; a persisted session
// resumes the authenticated state without a network call.
func NewAccountService(store storage.Store, gateway gatewayClient) *AccountService {
	svc := &AccountService{store: store, gateway: gateway}

	if session, ok := store.Load(); ok {
		svc.session = &session
		slog.Info("session restored", "username", session.User.Username)
	}

	return svc
}

// Current returns the active session, if any. Implements nav.SessionSource.
func (s *AccountService) Current() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return model.Session{}, false
	}
	return *s.session, true
}

// Register creates an account through the gateway and establishes the
// session. The confirmation check short-circuits before any network call.
func (s *AccountService) Register(ctx context.Context, username, email, password, confirm string) (model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return model.User{}, apierror.BadRequest("username, email and password are required")
	}
	if password != confirm {
		return model.User{}, apierror.New("BAD_REQUEST", "passwords do not match", "confirm_password", http.StatusBadRequest)
	}

	session, err := s.gateway.Register(ctx, username, email, password)
	if err != nil {
		return model.User{}, err
	}

	s.establish(session)
	return session.User, nil
}

// Login authenticates by username or email and establishes the session.
func (s *AccountService) Login(ctx context.Context, login, password string) (model.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return model.User{}, apierror.BadRequest("login and password are required")
	}

	session, err := s.gateway.Login(ctx, login, password)
	if err != nil {
		return model.User{}, err
	}

	s.establish(session)
	return session.User, nil
}

// Logout drops the session and clears the persisted entries. Idempotent.
func (s *AccountService) Logout() error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	return s.store.Clear()
}

func (s *AccountService) establish(session model.Session) {
	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()

	// The in-memory session stands even if persistence fails; the user is
	// authenticated for this run and only loses the restore-on-restart.
	if err := s.store.Save(session.Token, session.User); err != nil {
		slog.Warn("failed to persist session", "error", err)
	}
}
