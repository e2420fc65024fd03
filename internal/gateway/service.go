// Package gateway implements the remote auth endpoint the marketplace
// client talks to: one POST route dispatching on action, register and login
// against the users table.
package gateway

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
	"github.com/pr-poehali-dev/online-shop-network/internal/repository"
	"github.com/pr-poehali-dev/online-shop-network/pkg/apierror"
)

// userRepo is the slice of the repository the service needs.
type userRepo interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, username, email, passwordHash string) (repository.Account, error)
	FindByLogin(ctx context.Context, login string) (repository.Account, error)
}

type Service struct {
	users     userRepo
	jwtSecret []byte
}

func NewService(users userRepo, jwtSecret string) *Service {
	return &Service{users: users, jwtSecret: []byte(jwtSecret)}
}

// Register creates an account and returns a token plus the user record.
// Retried registers are not deduplicated beyond the uniqueness check, so a
// client that resends after a lost response may hit "User already exists".
func (s *Service) Register(ctx context.Context, username, email, password string) (model.AuthResponse, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return model.AuthResponse{}, apierror.BadRequest("Missing required fields")
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if exists {
		return model.AuthResponse{}, apierror.New("ALREADY_EXISTS", "User already exists", "", http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.AuthResponse{}, err
	}

	account, err := s.users.Create(ctx, username, email, string(hash))
	if err != nil {
		return model.AuthResponse{}, err
	}

	return s.respond(account)
}

// Login authenticates by username or email.
func (s *Service) Login(ctx context.Context, login, password string) (model.AuthResponse, error) {
	login = strings.TrimSpace(login)

	if login == "" || password == "" {
		return model.AuthResponse{}, apierror.BadRequest("Missing login or password")
	}

	account, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		return model.AuthResponse{}, invalidCredentials(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return model.AuthResponse{}, apierror.Unauthorized("Invalid credentials")
	}

	return s.respond(account)
}

func (s *Service) respond(account repository.Account) (model.AuthResponse, error) {
	token, err := s.mintToken(account)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: account.User()}, nil
}

// mintToken signs a token the client treats as opaque. Sessions never
// expire, so there is deliberately no exp claim.
func (s *Service) mintToken(account repository.Account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      account.ID,
		"username": account.Username,
		"isAdmin":  account.IsAdmin,
		"jti":      uuid.NewString(),
	})
	return token.SignedString(s.jwtSecret)
}

func invalidCredentials(err error) error {
	if errors.Is(err, model.ErrInvalidCredentials) {
		return apierror.Unauthorized("Invalid credentials")
	}
	return err
}
