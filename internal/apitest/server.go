// Package apitest is an in-memory habit API for tests. It speaks the same
// wire format as the real server and lets a test expire tokens, break the
// refresh endpoint and inspect what the client sent.
package apitest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/habittracker/pkg/api"
)

// HeaderAPIKey заголовок с ключом приложения
const HeaderAPIKey = "X-API-Key"

type account struct {
	name     *string
	id       string
	email    string
	password string
}

// Server фейковый habit API
type Server struct {
	logger   *slog.Logger
	http     *httptest.Server
	accounts map[string]*account       // по email
	habits   map[string][]api.Habit    // по user id, в порядке сервера
	proofs   map[string][]byte         // последнее фото по habit id
	requests map[string]int
	tokens   tokenIssuer
	apiKey   string

	generation     int
	rejectNext     int
	mu             sync.Mutex
	failRefresh    bool
	proofNoContent bool
}

// Option настраивает Server
type Option func(*Server)

// WithAPIKey требует X-API-Key на каждом запросе
func WithAPIKey(key string) Option {
	return func(s *Server) { s.apiKey = key }
}

// WithLogger логгер запросов
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithTokenTTL срок жизни выпускаемых токенов
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) { s.tokens.ttl = ttl }
}

// New starts the fake API on a local port. Call Close when done.
func New(opts ...Option) *Server {
	s := &Server{
		logger:   slog.New(slog.DiscardHandler),
		accounts: make(map[string]*account),
		habits:   make(map[string][]api.Habit),
		proofs:   make(map[string][]byte),
		requests: make(map[string]int),
		tokens:   tokenIssuer{secret: []byte("apitest-secret"), ttl: time.Hour},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.http = httptest.NewServer(s.Router())
	return s
}

// Router returns the HTTP routes without starting a listener
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recovery, s.logging, s.countRequests, s.requireAPIKey)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.login)
		r.Post("/signup", s.signup)
		r.Get("/refresh", s.refresh)
	})

	r.Route("/habits", func(r chi.Router) {
		r.Use(s.requireBearer)
		r.Get("/", s.listHabits)
		r.Post("/", s.createHabit)
		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", s.updateHabit)
			r.Delete("/", s.deleteHabit)
			r.Post("/proof", s.uploadProof)
		})
	})

	return r
}

// URL базовый адрес сервера
func (s *Server) URL() string {
	return s.http.URL
}

// Close останавливает сервер
func (s *Server) Close() {
	s.http.Close()
}

// ExpireTokens invalidates every access token issued so far. Refresh still
// accepts them and issues a fresh one.
func (s *Server) ExpireTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
}

// RejectNext answers the next n authorized requests with 401 regardless of the token
func (s *Server) RejectNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectNext = n
}

// FailRefresh makes /auth/refresh answer 401
func (s *Server) FailRefresh(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failRefresh = fail
}

// ProofNoContent makes the proof endpoint answer 204 and drop the habit
func (s *Server) ProofNoContent(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proofNoContent = v
}

// AddAccount registers a user directly and returns its id
func (s *Server) AddAccount(email, password string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addAccountLocked(email, password, nil).id
}

// SeedHabit adds a habit to the user's list as the server would store it
func (s *Server) SeedHabit(email string, h api.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[email]
	if !ok {
		return
	}
	s.habits[acc.id] = append(s.habits[acc.id], h)
}

// Habits returns a copy of the user's list
func (s *Server) Habits(email string) []api.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[email]
	if !ok {
		return nil
	}
	return append([]api.Habit(nil), s.habits[acc.id]...)
}

// Proof returns the last photo uploaded for the habit
func (s *Server) Proof(habitID string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.proofs[habitID]
	return p, ok
}

// Requests number of requests seen for "METHOD /path"
func (s *Server) Requests(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[key]
}

func (s *Server) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func (s *Server) sendError(w http.ResponseWriter, message string, statusCode int) {
	s.sendJSON(w, api.ErrorResponse{Error: http.StatusText(statusCode), Message: message}, statusCode)
}
