package api

import (
	"context"
	"net/http"

	"github.com/iudanet/habittracker/pkg/api"
)

// AuthClient вызывает эндпоинты аутентификации.
// Эти запросы никогда не проходят через refresh-and-retry.
type AuthClient struct {
	t *transport
}

// NewAuthClient создает клиент эндпоинтов /auth
func NewAuthClient(baseURL string, opts ...Option) *AuthClient {
	return &AuthClient{t: newTransport(baseURL, opts...)}
}

// Login exchanges credentials for a token. Only 200 counts as success.
func (c *AuthClient) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	r, err := jsonRequest("login", http.MethodPost, "/auth/login", req, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var resp api.AuthResponse
	if err := c.call(ctx, r, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup creates an account. Only 201 counts as success.
func (c *AuthClient) Signup(ctx context.Context, req api.SignupRequest) (*api.AuthResponse, error) {
	r, err := jsonRequest("signup", http.MethodPost, "/auth/signup", req, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var resp api.AuthResponse
	if err := c.call(ctx, r, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh exchanges the current token for a new one
func (c *AuthClient) Refresh(ctx context.Context, token string) (*api.RefreshResponse, error) {
	r := request{op: "refresh", method: http.MethodGet, path: "/auth/refresh", okStatus: []int{http.StatusOK}}

	var resp api.RefreshResponse
	if err := c.call(ctx, r, token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AuthClient) call(ctx context.Context, r request, token string, out any) error {
	status, body, err := c.t.send(ctx, r, token)
	if err != nil {
		return err
	}
	if !r.accepts(status) {
		return serverError(r.op, status, body)
	}
	return decode(body, out)
}
