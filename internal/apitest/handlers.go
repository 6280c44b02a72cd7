package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/habittracker/pkg/api"
)

const maxProofSize = 10 << 20

func (s *Server) addAccountLocked(email, password string, name *string) *account {
	acc := &account{id: uuid.NewString(), email: email, password: password, name: name}
	s.accounts[email] = acc
	return acc
}

func (s *Server) authResponse(acc *account) (*api.AuthResponse, error) {
	token, err := s.tokens.issue(acc.id, acc.email, s.generation, time.Now())
	if err != nil {
		return nil, err
	}
	return &api.AuthResponse{
		User:  api.User{ID: acc.id, Email: acc.email, Name: acc.name},
		Token: token,
	}, nil
}

// POST /auth/login
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[req.Email]
	if !ok || acc.password != req.Password {
		s.sendError(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	resp, err := s.authResponse(acc)
	if err != nil {
		s.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.sendJSON(w, resp, http.StatusOK)
}

// POST /auth/signup
func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		s.sendError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[req.Email]; exists {
		s.sendError(w, "email already registered", http.StatusConflict)
		return
	}

	resp, err := s.authResponse(s.addAccountLocked(req.Email, req.Password, req.Name))
	if err != nil {
		s.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.sendJSON(w, resp, http.StatusCreated)
}

// GET /auth/refresh
func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	token, ok := bearer(r)
	if !ok {
		s.sendError(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := s.tokens.parse(token, false)
	if err != nil {
		s.sendError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failRefresh {
		s.sendError(w, "refresh rejected", http.StatusUnauthorized)
		return
	}

	fresh, err := s.tokens.issue(claims.UserID, claims.Email, s.generation, time.Now())
	if err != nil {
		s.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.sendJSON(w, api.RefreshResponse{Token: fresh}, http.StatusOK)
}

// GET /habits
func (s *Server) listHabits(w http.ResponseWriter, r *http.Request) {
	userID := claimsFrom(r.Context()).UserID

	s.mu.Lock()
	habits := append([]api.Habit{}, s.habits[userID]...)
	s.mu.Unlock()

	s.sendJSON(w, habits, http.StatusOK)
}

// POST /habits
func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var req api.HabitCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		s.sendError(w, "name is required", http.StatusBadRequest)
		return
	}

	h := api.Habit{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Emoji:            req.Emoji,
		XPPoints:         req.XPPoints,
		Progress:         req.Progress,
		IsCompleted:      req.IsCompleted,
		IsRecurring:      req.IsRecurring,
		DeadlineDuration: req.DeadlineDuration,
		Category:         req.Category,
	}

	userID := claimsFrom(r.Context()).UserID
	s.mu.Lock()
	s.habits[userID] = append(s.habits[userID], h)
	s.mu.Unlock()

	s.sendJSON(w, h, http.StatusCreated)
}

// PUT /habits/{id}
func (s *Server) updateHabit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req api.Habit
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID := claimsFrom(r.Context()).UserID
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(userID, id)
	if i < 0 {
		s.sendError(w, "habit not found", http.StatusNotFound)
		return
	}

	req.ID = id
	s.habits[userID][i] = req
	s.sendJSON(w, req, http.StatusOK)
}

// DELETE /habits/{id}
func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := claimsFrom(r.Context()).UserID

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(userID, id)
	if i < 0 {
		s.sendError(w, "habit not found", http.StatusNotFound)
		return
	}

	list := s.habits[userID]
	s.habits[userID] = append(list[:i:i], list[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

// POST /habits/{id}/proof
func (s *Server) uploadProof(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxProofSize); err != nil {
		s.sendError(w, "invalid multipart body", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("proof")
	if err != nil {
		s.sendError(w, "proof file is required", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	photo, err := io.ReadAll(file)
	if err != nil || len(photo) == 0 {
		s.sendError(w, "proof file is empty", http.StatusBadRequest)
		return
	}

	userID := claimsFrom(r.Context()).UserID
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(userID, id)
	if i < 0 {
		s.sendError(w, "habit not found", http.StatusNotFound)
		return
	}
	s.proofs[id] = photo

	if s.proofNoContent {
		list := s.habits[userID]
		s.habits[userID] = append(list[:i:i], list[i+1:]...)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h := s.habits[userID][i]
	h.IsCompleted = true
	h.Progress = 1
	s.habits[userID][i] = h
	s.sendJSON(w, h, http.StatusOK)
}

func (s *Server) indexLocked(userID, id string) int {
	for i, h := range s.habits[userID] {
		if h.ID == id {
			return i
		}
	}
	return -1
}
