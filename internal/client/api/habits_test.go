package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habittracker/pkg/api"
)

const testHabitID = "0d9b8a8e-7a55-4d3c-9d8e-1c0e5a3b2f10"

var testHabitJSON = `{"id":"` + testHabitID + `","name":"Read","emoji":"📚","xp_points":10,` +
	`"isCompleted":false,"progress":0,"isRecurring":false,"category":"General"}`

// habitOp описывает одну операцию клиента для табличных тестов
type habitOp struct {
	call       func(c *Client) error
	name       string
	method     string
	path       string
	okStatus   int
	okResponse string
}

func allHabitOps() []habitOp {
	ctx := context.Background()
	return []habitOp{
		{
			name: "create", method: http.MethodPost, path: "/habits",
			okStatus: http.StatusCreated, okResponse: testHabitJSON,
			call: func(c *Client) error {
				_, err := c.CreateHabit(ctx, api.HabitCreate{Name: "Read", XPPoints: 10, Category: "General"})
				return err
			},
		},
		{
			name: "list", method: http.MethodGet, path: "/habits",
			okStatus: http.StatusOK, okResponse: "[" + testHabitJSON + "]",
			call: func(c *Client) error {
				_, err := c.ListHabits(ctx)
				return err
			},
		},
		{
			name: "update", method: http.MethodPut, path: "/habits/" + testHabitID,
			okStatus: http.StatusOK, okResponse: testHabitJSON,
			call: func(c *Client) error {
				_, err := c.UpdateHabit(ctx, api.Habit{ID: testHabitID, Name: "Read", IsCompleted: true})
				return err
			},
		},
		{
			name: "delete", method: http.MethodDelete, path: "/habits/" + testHabitID,
			okStatus: http.StatusNoContent,
			call: func(c *Client) error {
				return c.DeleteHabit(ctx, testHabitID)
			},
		},
		{
			name: "upload proof", method: http.MethodPost, path: "/habits/" + testHabitID + "/proof",
			okStatus: http.StatusOK, okResponse: testHabitJSON,
			call: func(c *Client) error {
				_, err := c.UploadProof(ctx, testHabitID, []byte{0xFF, 0xD8, 0xFF})
				return err
			},
		},
	}
}

// recordedRequest фиксирует то, что дошло до сервера
type recordedRequest struct {
	auth   string
	apiKey string
	body   []byte
}

// recorder запоминает все запросы и отвечает по переданной функции
type recorder struct {
	respond  func(n int, r *http.Request) (int, string)
	requests []recordedRequest
	mu       sync.Mutex
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	rec.mu.Lock()
	rec.requests = append(rec.requests, recordedRequest{
		auth:   r.Header.Get("Authorization"),
		apiKey: r.Header.Get(HeaderAPIKey),
		body:   body,
	})
	n := len(rec.requests)
	rec.mu.Unlock()

	status, resp := rec.respond(n, r)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp))
}

func (rec *recorder) count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.requests)
}

func TestClient_Operations_Success(t *testing.T) {
	for _, op := range allHabitOps() {
		t.Run(op.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, op.method, r.Method)
				assert.Equal(t, op.path, r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				assert.Equal(t, "key", r.Header.Get(HeaderAPIKey))
				w.WriteHeader(op.okStatus)
				_, _ = w.Write([]byte(op.okResponse))
			}))
			defer server.Close()

			client := NewClient(server.URL, staticTokens("tok", "unused"), WithAPIKey("key"))
			require.NoError(t, op.call(client))
		})
	}
}

// 401 -> ровно один refresh -> ровно один повтор идентичного запроса с новым токеном
func TestClient_Operations_RefreshAndRetry(t *testing.T) {
	for _, op := range allHabitOps() {
		t.Run(op.name, func(t *testing.T) {
			rec := &recorder{respond: func(n int, r *http.Request) (int, string) {
				if r.Header.Get("Authorization") != "Bearer new" {
					return http.StatusUnauthorized, `{"error":"unauthorized"}`
				}
				return op.okStatus, op.okResponse
			}}
			server := httptest.NewServer(rec)
			defer server.Close()

			tokens := staticTokens("old", "new")
			client := NewClient(server.URL, tokens, WithAPIKey("key"))

			require.NoError(t, op.call(client))
			require.Len(t, tokens.RefreshCalls(), 1)
			require.Equal(t, 2, rec.count())

			first, second := rec.requests[0], rec.requests[1]
			assert.Equal(t, "Bearer old", first.auth)
			assert.Equal(t, "Bearer new", second.auth)
			assert.Equal(t, "key", second.apiKey)
			assert.Equal(t, first.body, second.body)
		})
	}
}

func TestClient_Operations_SecondUnauthorized(t *testing.T) {
	for _, op := range allHabitOps() {
		t.Run(op.name, func(t *testing.T) {
			rec := &recorder{respond: func(n int, r *http.Request) (int, string) {
				return http.StatusUnauthorized, ""
			}}
			server := httptest.NewServer(rec)
			defer server.Close()

			tokens := staticTokens("old", "new")
			err := op.call(NewClient(server.URL, tokens))

			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.Len(t, tokens.RefreshCalls(), 1)
			assert.Equal(t, 2, rec.count())
		})
	}
}

func TestClient_Operations_RefreshFails(t *testing.T) {
	refreshErr := errors.New("refresh rejected")

	for _, op := range allHabitOps() {
		t.Run(op.name, func(t *testing.T) {
			rec := &recorder{respond: func(n int, r *http.Request) (int, string) {
				return http.StatusUnauthorized, ""
			}}
			server := httptest.NewServer(rec)
			defer server.Close()

			tokens := &TokenSourceMock{
				TokenFunc: func() (string, bool) { return "old", true },
				RefreshFunc: func(ctx context.Context) (string, error) {
					return "", refreshErr
				},
			}
			err := op.call(NewClient(server.URL, tokens))

			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.ErrorIs(t, err, refreshErr)
			assert.Len(t, tokens.RefreshCalls(), 1)
			assert.Equal(t, 1, rec.count())
		})
	}
}

func TestClient_Operations_ServerError(t *testing.T) {
	for _, op := range allHabitOps() {
		t.Run(op.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal","message":"db down"}`))
			}))
			defer server.Close()

			tokens := staticTokens("tok", "new")
			err := op.call(NewClient(server.URL, tokens))

			var srvErr *ServerError
			require.ErrorAs(t, err, &srvErr)
			assert.Equal(t, http.StatusInternalServerError, srvErr.Status)
			assert.Equal(t, "db down", srvErr.Message)
			assert.Empty(t, tokens.RefreshCalls())
		})
	}
}

func TestClient_Operations_DecodingError(t *testing.T) {
	for _, op := range allHabitOps() {
		if op.okResponse == "" {
			continue
		}
		t.Run(op.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(op.okStatus)
				_, _ = w.Write([]byte(`{"id": 42`))
			}))
			defer server.Close()

			err := op.call(NewClient(server.URL, staticTokens("tok", "new")))

			var decErr *DecodingError
			assert.ErrorAs(t, err, &decErr)
		})
	}
}

func TestClient_CreateHabit_AcceptsOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.NotContains(t, fields, "id")
		assert.NotContains(t, fields, "emoji")
		assert.NotContains(t, fields, "deadline_duration")
		assert.Equal(t, float64(10), fields["xp_points"])

		_, _ = w.Write([]byte(testHabitJSON))
	}))
	defer server.Close()

	got, err := NewClient(server.URL, staticTokens("tok", "")).CreateHabit(context.Background(),
		api.HabitCreate{Name: "Read", XPPoints: 10, Category: "General"})

	require.NoError(t, err)
	assert.Equal(t, testHabitID, got.ID)
	assert.Equal(t, "📚", got.Emoji)
}

func TestClient_DeleteHabit_AcceptsOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewClient(server.URL, staticTokens("tok", "")).DeleteHabit(context.Background(), testHabitID)
	assert.NoError(t, err)
}

func TestClient_EmptyID(t *testing.T) {
	client := NewClient("http://localhost", staticTokens("tok", ""))
	ctx := context.Background()

	_, err := client.UpdateHabit(ctx, api.Habit{})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.ErrorIs(t, client.DeleteHabit(ctx, ""), ErrInvalidRequest)

	_, err = client.UploadProof(ctx, "", []byte{1})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestClient_UploadProof_Multipart(t *testing.T) {
	photo := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

		reader, err := r.MultipartReader()
		require.NoError(t, err)

		part, err := reader.NextPart()
		require.NoError(t, err)
		assert.Equal(t, "proof", part.FormName())
		assert.Equal(t, "proof.jpg", part.FileName())
		assert.Equal(t, "image/jpeg", part.Header.Get("Content-Type"))

		data, err := io.ReadAll(part)
		require.NoError(t, err)
		assert.Equal(t, photo, data)

		// Ровно одна часть
		_, err = reader.NextPart()
		assert.ErrorIs(t, err, io.EOF)

		_, _ = w.Write([]byte(testHabitJSON))
	}))
	defer server.Close()

	got, err := NewClient(server.URL, staticTokens("tok", "")).UploadProof(context.Background(), testHabitID, photo)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testHabitID, got.ID)
}

func TestClient_UploadProof_Deleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	got, err := NewClient(server.URL, staticTokens("tok", "")).UploadProof(context.Background(), testHabitID, []byte{1})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_UploadProof_EmptyPhoto(t *testing.T) {
	_, err := NewClient("http://localhost", staticTokens("tok", "")).UploadProof(context.Background(), testHabitID, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
