package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/iudanet/habittracker/internal/client/api"
	"github.com/iudanet/habittracker/internal/models"
	"github.com/iudanet/habittracker/internal/validation"
	pkgapi "github.com/iudanet/habittracker/pkg/api"
)

// State состояние сессии
type State int

const (
	// SignedOut - токена нет
	SignedOut State = iota
	// SignedIn - токен есть (сервер мог его уже отозвать)
	SignedIn
)

func (s State) String() string {
	if s == SignedIn {
		return "signed in"
	}
	return "signed out"
}

//go:generate moq -out auth_api_mock.go . AuthAPI

// AuthAPI is the subset of the API client used by the session
type AuthAPI interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error)
	Signup(ctx context.Context, req pkgapi.SignupRequest) (*pkgapi.AuthResponse, error)
	Refresh(ctx context.Context, token string) (*pkgapi.RefreshResponse, error)
}

// Session is the session manager. It owns the current token, keeps it in
// sync with the credential store and renews it on demand.
type Session struct {
	api    AuthAPI
	store  *TokenStore
	logger *slog.Logger
	user   *models.User
	group  singleflight.Group
	token  string
	mu     sync.RWMutex
	// persistMu упорядочивает запись токена в хранилище
	persistMu sync.Mutex
}

// Compile-time check that Session can feed the habit client
var _ api.TokenSource = (*Session)(nil)

// NewSession creates a session and restores the token from the store
func NewSession(ctx context.Context, authAPI AuthAPI, store *TokenStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		api:    authAPI,
		store:  store,
		logger: logger,
	}

	if token, ok := store.Load(ctx); ok {
		s.token = token
		logger.DebugContext(ctx, "session restored from credential store")
	}

	return s
}

// SignIn authenticates with email and password and persists the token
func (s *Session) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	if err := validation.ValidateCredentials(email, password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentialsInput, err)
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapAuthError("sign in", err)
	}

	return s.establish(ctx, "sign in", resp)
}

// SignUp creates an account and signs in with it. An empty name is not sent.
func (s *Session) SignUp(ctx context.Context, email, password, name string) (*models.User, error) {
	if err := validation.ValidateCredentials(email, password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentialsInput, err)
	}

	req := pkgapi.SignupRequest{Email: email, Password: password}
	if name != "" {
		req.Name = &name
	}

	resp, err := s.api.Signup(ctx, req)
	if err != nil {
		return nil, mapAuthError("sign up", err)
	}

	return s.establish(ctx, "sign up", resp)
}

// establish persists the token first; the in-memory state changes only
// after the store accepted it
func (s *Session) establish(ctx context.Context, op string, resp *pkgapi.AuthResponse) (*models.User, error) {
	if resp.Token == "" {
		return nil, &AuthServerError{Op: op, Status: 200, Message: "response has no token"}
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err := s.store.Save(ctx, resp.Token); err != nil {
		return nil, err
	}

	user := &models.User{ID: resp.User.ID, Email: resp.User.Email}
	if resp.User.Name != nil {
		user.Name = *resp.User.Name
	}

	s.mu.Lock()
	s.token = resp.Token
	s.user = user
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "signed in", "op", op, "user_id", user.ID)

	u := *user
	return &u, nil
}

// Refresh exchanges the current token for a new one. Concurrent callers
// share one network call. On failure the old token is kept. A token that
// arrives after logout or a new sign in is discarded.
func (s *Session) Refresh(ctx context.Context) (string, error) {
	ch := s.group.DoChan("refresh", func() (any, error) {
		// Общий вызов не должен обрываться отменой контекста первого вызывающего
		return s.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", &AuthNetworkError{Op: "refresh", Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (s *Session) refresh(ctx context.Context) (string, error) {
	old, ok := s.Token()
	if !ok {
		return "", ErrNoCredentials
	}

	resp, err := s.api.Refresh(ctx, old)
	if err != nil {
		s.logger.WarnContext(ctx, "token refresh failed", "error", err)
		return "", mapAuthError("refresh", err)
	}
	if resp.Token == "" {
		return "", &AuthServerError{Op: "refresh", Status: 200, Message: "response has no token"}
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	if s.token != old {
		// Пока шёл запрос, сессию сменили или завершили: новый токен отбрасываем
		current := s.token
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "refreshed token discarded, session changed")
		if current == "" {
			return "", ErrNoCredentials
		}
		return current, nil
	}
	s.token = resp.Token
	s.mu.Unlock()

	// Новый токен уже выдан сервером: сбой записи не должен ронять запрос
	if err := s.store.Save(ctx, resp.Token); err != nil {
		s.logger.WarnContext(ctx, "failed to persist refreshed token", "error", err)
	}

	s.logger.DebugContext(ctx, "token refreshed")
	return resp.Token, nil
}

// Logout forgets the token. The session is signed out even if the store
// fails to clear; that failure is returned.
func (s *Session) Logout(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "signed out")
	return nil
}

// Token returns the current token
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// State reports whether a token is held
func (s *Session) State() State {
	if _, ok := s.Token(); ok {
		return SignedIn
	}
	return SignedOut
}

// User returns the user of the last sign-in in this process, if any
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Expiry decodes the exp claim of the current token without verifying it.
// Returns false if there is no token, it is not a JWT, or it has no exp.
func (s *Session) Expiry() (time.Time, bool) {
	token, ok := s.Token()
	if !ok {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// mapAuthError translates API client errors into the auth error taxonomy
func mapAuthError(op string, err error) error {
	var srvErr *api.ServerError
	if errors.As(err, &srvErr) {
		return &AuthServerError{Op: op, Status: srvErr.Status, Message: srvErr.Message}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &AuthNetworkError{Op: op, Err: netErr.Err}
	}

	return fmt.Errorf("%s: %w", op, err)
}
