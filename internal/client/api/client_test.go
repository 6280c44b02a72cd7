package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens returns a TokenSource that holds token and refreshes to refreshed
func staticTokens(token, refreshed string) *TokenSourceMock {
	return &TokenSourceMock{
		TokenFunc: func() (string, bool) {
			return token, token != ""
		},
		RefreshFunc: func(ctx context.Context) (string, error) {
			return refreshed, nil
		},
	}
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/", staticTokens("t", "t"))

	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.t.baseURL)
	assert.Equal(t, DefaultTimeout, client.t.httpClient.Timeout)
	assert.Nil(t, client.t.limiter)
	assert.Empty(t, client.t.apiKey)
}

func TestNewClient_Options(t *testing.T) {
	hc := &http.Client{}
	client := NewClient("http://localhost", staticTokens("t", "t"),
		WithHTTPClient(hc),
		WithTimeout(5*time.Second),
		WithAPIKey("key"),
		WithRateLimit(2, 0),
	)

	assert.Same(t, hc, client.t.httpClient)
	assert.Equal(t, 5*time.Second, client.t.httpClient.Timeout)
	assert.Equal(t, "key", client.t.apiKey)
	require.NotNil(t, client.t.limiter)
	assert.Equal(t, 1, client.t.limiter.Burst())

	disabled := NewClient("http://localhost", nil, WithRateLimit(0, 5))
	assert.Nil(t, disabled.t.limiter)
}

func TestTransport_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "service-key", r.Header.Get(HeaderAPIKey))
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens("abc", "x"), WithAPIKey("service-key"))
	habits, err := client.ListHabits(context.Background())
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestTransport_NoTokenSendsNoAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens("", ""))
	_, err := client.ListHabits(context.Background())
	require.NoError(t, err)
}

func TestTransport_InvalidBaseURL(t *testing.T) {
	for _, base := range []string{"", "not a url", "://missing-scheme", "http://bad host"} {
		t.Run(base, func(t *testing.T) {
			client := NewClient(base, staticTokens("t", "t"))
			_, err := client.ListHabits(context.Background())
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestTransport_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, staticTokens("t", "t"))
	_, err := client.ListHabits(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Error(t, netErr.Unwrap())
}

func TestTransport_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, staticTokens("t", "t"))
	_, err := client.ListHabits(ctx)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransport_RateLimit(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	// Один токен в час: второй запрос не укладывается в дедлайн
	client := NewClient(server.URL, staticTokens("t", "t"), WithRateLimit(1.0/3600, 1))

	_, err := client.ListHabits(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.ListHabits(ctx)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, 1, hits)
}

func TestServerError_Message(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "error response message", body: `{"error":"conflict","message":"already exists"}`, wantMsg: "already exists"},
		{name: "error response without message", body: `{"error":"conflict"}`, wantMsg: "conflict"},
		{name: "plain text", body: "Internal Server Error\n", wantMsg: "Internal Server Error"},
		{name: "empty body", body: "", wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := serverError("op", http.StatusConflict, []byte(tt.body))
			assert.Equal(t, http.StatusConflict, err.Status)
			assert.Equal(t, "op", err.Op)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Contains(t, err.Error(), "409")
		})
	}
}

func TestErrorTypes_Unwrap(t *testing.T) {
	cause := errors.New("boom")

	assert.ErrorIs(t, &NetworkError{Err: cause}, cause)
	assert.ErrorIs(t, &DecodingError{Err: cause}, cause)
	assert.Contains(t, (&NetworkError{Err: cause}).Error(), "boom")
	assert.Contains(t, (&DecodingError{Err: cause}).Error(), "boom")
}
