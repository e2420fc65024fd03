package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
)

// Account is a stored user record. The password hash never leaves this
// layer except for verification in the gateway service.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// User strips the account down to its wire shape.
func (a Account) User() model.User {
	return model.User{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		IsAdmin:  a.IsAdmin,
	}
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// ExistsByUsernameOrEmail reports whether either identifier is taken.
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(username) = lower($1) OR lower(email) = lower($2))`,
		strings.TrimSpace(username), strings.TrimSpace(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (Account, error) {
	var a Account
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, username, email, password_hash, is_admin`,
		strings.TrimSpace(username), strings.TrimSpace(email), passwordHash).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.IsAdmin)
	if err != nil {
		return Account{}, fmt.Errorf("create user: %w", err)
	}
	return a, nil
}

// FindByLogin matches the identifier against username or email;
// disambiguation happens here and nowhere else.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (Account, error) {
	var a Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, is_admin
		 FROM users WHERE lower(username) = lower($1) OR lower(email) = lower($1)`,
		strings.TrimSpace(login)).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.IsAdmin)

	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, fmt.Errorf("find user by login: %w", err)
	}
	return a, nil
}
