package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habittracker/pkg/api"
)

func TestAuthClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "key", r.Header.Get(HeaderAPIKey))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.c", req.Email)
		assert.Equal(t, "secret", req.Password)

		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			Token: "jwt",
			User:  api.User{ID: "u1", Email: "a@b.c"},
		})
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, WithAPIKey("key"))
	resp, err := client.Login(context.Background(), api.LoginRequest{Email: "a@b.c", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestAuthClient_Login_OnlyOKIsSuccess(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "created is not success", status: http.StatusCreated},
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "internal error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"token":"jwt","user":{"id":"u1","email":"a@b.c"}}`))
			}))
			defer server.Close()

			_, err := NewAuthClient(server.URL).Login(context.Background(), api.LoginRequest{Email: "a", Password: "b"})

			var srvErr *ServerError
			require.ErrorAs(t, err, &srvErr)
			assert.Equal(t, tt.status, srvErr.Status)
			assert.Equal(t, "login", srvErr.Op)
		})
	}
}

func TestAuthClient_Signup(t *testing.T) {
	name := "Alex"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/signup", r.URL.Path)

		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, "Alex", fields["name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.AuthResponse{Token: "jwt", User: api.User{ID: "u1", Name: &name}})
	}))
	defer server.Close()

	resp, err := NewAuthClient(server.URL).Signup(context.Background(), api.SignupRequest{
		Email: "a@b.c", Password: "secret", Name: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	require.NotNil(t, resp.User.Name)
	assert.Equal(t, "Alex", *resp.User.Name)
}

func TestAuthClient_Signup_OKIsNotSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"jwt"}`))
	}))
	defer server.Close()

	_, err := NewAuthClient(server.URL).Signup(context.Background(), api.SignupRequest{Email: "a", Password: "b"})

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusOK, srvErr.Status)
}

func TestAuthClient_Signup_OmitsEmptyName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.NotContains(t, fields, "name")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"jwt","user":{"id":"u1","email":"a"}}`))
	}))
	defer server.Close()

	_, err := NewAuthClient(server.URL).Signup(context.Background(), api.SignupRequest{Email: "a", Password: "b"})
	require.NoError(t, err)
}

func TestAuthClient_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/refresh", r.URL.Path)
		assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))
		assert.Equal(t, "key", r.Header.Get(HeaderAPIKey))

		_, _ = w.Write([]byte(`{"token":"new"}`))
	}))
	defer server.Close()

	resp, err := NewAuthClient(server.URL, WithAPIKey("key")).Refresh(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, "new", resp.Token)
}

func TestAuthClient_DecodingError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":`))
	}))
	defer server.Close()

	_, err := NewAuthClient(server.URL).Refresh(context.Background(), "old")

	var decErr *DecodingError
	assert.ErrorAs(t, err, &decErr)
}
