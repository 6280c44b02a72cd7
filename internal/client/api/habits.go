package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/iudanet/habittracker/pkg/api"
)

//go:generate moq -out token_source_mock.go . TokenSource

// TokenSource supplies the bearer token for habit requests and renews it
// after a 401
type TokenSource interface {
	// Token returns the current token, if any
	Token() (string, bool)
	// Refresh obtains and persists a new token
	Refresh(ctx context.Context) (string, error)
}

const (
	proofField       = "proof"
	proofFilename    = "proof.jpg"
	proofContentType = "image/jpeg"
)

// Client представляет HTTP клиент для эндпоинтов /habits
type Client struct {
	t      *transport
	tokens TokenSource
}

// NewClient создает новый API клиент
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	return &Client{
		t:      newTransport(baseURL, opts...),
		tokens: tokens,
	}
}

// CreateHabit creates a habit and returns the stored record
func (c *Client) CreateHabit(ctx context.Context, h api.HabitCreate) (*api.Habit, error) {
	r, err := jsonRequest("create habit", http.MethodPost, "/habits", h, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var resp api.Habit
	if _, err := c.doAuthorized(ctx, r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListHabits returns all habits of the signed-in user in server order
func (c *Client) ListHabits(ctx context.Context) ([]api.Habit, error) {
	r := request{op: "list habits", method: http.MethodGet, path: "/habits", okStatus: []int{http.StatusOK}}

	var resp []api.Habit
	if _, err := c.doAuthorized(ctx, r, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateHabit sends the full record and returns the server's copy
func (c *Client) UpdateHabit(ctx context.Context, h api.Habit) (*api.Habit, error) {
	path, err := habitPath(h.ID, "")
	if err != nil {
		return nil, err
	}
	r, err := jsonRequest("update habit", http.MethodPut, path, h, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var resp api.Habit
	if _, err := c.doAuthorized(ctx, r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteHabit deletes a habit on the server
func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	path, err := habitPath(id, "")
	if err != nil {
		return err
	}
	r := request{op: "delete habit", method: http.MethodDelete, path: path, okStatus: []int{http.StatusOK, http.StatusNoContent}}

	_, err = c.doAuthorized(ctx, r, nil)
	return err
}

// UploadProof uploads a JPEG photo as completion proof.
// A nil record with a nil error means the server deleted the habit.
func (c *Client) UploadProof(ctx context.Context, id string, photo []byte) (*api.Habit, error) {
	path, err := habitPath(id, "proof")
	if err != nil {
		return nil, err
	}

	body, contentType, err := proofBody(photo)
	if err != nil {
		return nil, err
	}

	r := request{
		op:          "upload proof",
		method:      http.MethodPost,
		path:        path,
		contentType: contentType,
		body:        body,
		okStatus:    []int{http.StatusOK, http.StatusNoContent},
	}

	var resp api.Habit
	status, err := c.doAuthorized(ctx, r, &resp)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &resp, nil
}

// doAuthorized is the single request primitive for habit endpoints.
// A 401 triggers exactly one refresh and one retry of the identical request.
// out is decoded only for accepted statuses that carry a body.
func (c *Client) doAuthorized(ctx context.Context, r request, out any) (int, error) {
	token, _ := c.tokens.Token()

	status, body, err := c.t.send(ctx, r, token)
	if err != nil {
		return 0, err
	}

	if status == http.StatusUnauthorized {
		c.t.logger.InfoContext(ctx, "token rejected, refreshing", "op", r.op)

		newToken, err := c.tokens.Refresh(ctx)
		if err != nil {
			c.t.logger.WarnContext(ctx, "refresh failed", "op", r.op, "error", err)
			return 0, fmt.Errorf("%w: %s: %w", ErrUnauthorized, r.op, err)
		}

		status, body, err = c.t.send(ctx, r, newToken)
		if err != nil {
			return 0, err
		}
		if status == http.StatusUnauthorized {
			return 0, fmt.Errorf("%w: %s: rejected after refresh", ErrUnauthorized, r.op)
		}
	}

	if !r.accepts(status) {
		return status, serverError(r.op, status, body)
	}

	if out != nil && status != http.StatusNoContent {
		if err := decode(body, out); err != nil {
			return status, err
		}
	}

	return status, nil
}

func habitPath(id, suffix string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty habit id", ErrInvalidRequest)
	}
	path := "/habits/" + url.PathEscape(id)
	if suffix != "" {
		path += "/" + suffix
	}
	return path, nil
}

// proofBody builds a multipart body with a single JPEG part
func proofBody(photo []byte) ([]byte, string, error) {
	if len(photo) == 0 {
		return nil, "", fmt.Errorf("%w: proof photo is empty", ErrInvalidRequest)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, proofField, proofFilename))
	h.Set("Content-Type", proofContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create proof part: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return nil, "", fmt.Errorf("failed to write proof part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
