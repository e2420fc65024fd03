// Package authclient talks to the remote auth gateway. Both operations are
// one-shot POSTs to a single fixed URL; there is no retry, timeout, or
// backoff, so a hung call blocks until the caller's context is cancelled.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
)

const (
	actionRegister = "register"
	actionLogin    = "login"
)

type Client struct {
	url        string
	httpClient *http.Client
}

// New creates a gateway client. httpClient may be nil, in which case a
// default client with no deadline is used.
func New(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{url: url, httpClient: httpClient}
}

// Register creates an account and returns the established session. A retried
// register is not idempotent from the client's point of view; the server may
// create duplicate accounts.
func (c *Client) Register(ctx context.Context, username, email, password string) (model.Session, error) {
	return c.post(ctx, model.GatewayRequest{
		Action:   actionRegister,
		Username: username,
		Email:    email,
		Password: password,
	}, "Registration failed")
}

// Login authenticates by username or email; disambiguation is entirely
// server-side.
func (c *Client) Login(ctx context.Context, login, password string) (model.Session, error) {
	return c.post(ctx, model.GatewayRequest{
		Action:   actionLogin,
		Login:    login,
		Password: password,
	}, "Login failed")
}

func (c *Client) post(ctx context.Context, payload model.GatewayRequest, fallback string) (model.Session, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return model.Session{}, fmt.Errorf("encode %s request: %w", payload.Action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return model.Session{}, fmt.Errorf("build %s request: %w", payload.Action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Session{}, &AuthError{Message: fallback, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gwErr model.GatewayErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&gwErr); err != nil || gwErr.Error == "" {
			return model.Session{}, &AuthError{Message: fallback}
		}
		return model.Session{}, &AuthError{Message: gwErr.Error}
	}

	var auth model.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return model.Session{}, &AuthError{Message: fallback, cause: err}
	}

	return model.Session{Token: auth.Token, User: auth.User}, nil
}
