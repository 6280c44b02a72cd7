package apitest_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habittracker/internal/apitest"
	"github.com/iudanet/habittracker/internal/client/api"
	"github.com/iudanet/habittracker/internal/client/auth"
	"github.com/iudanet/habittracker/internal/client/stats"
	"github.com/iudanet/habittracker/internal/client/storage/boltdb"
	"github.com/iudanet/habittracker/internal/client/storage/sqlite"
	habitsync "github.com/iudanet/habittracker/internal/client/sync"
	"github.com/iudanet/habittracker/internal/crypto"
	pkgapi "github.com/iudanet/habittracker/pkg/api"
)

const (
	testAPIKey   = "test-key"
	testEmail    = "ann@example.com"
	testPassword = "password123"
)

// stack клиент целиком поверх фейкового сервера
type stack struct {
	server  *apitest.Server
	bolt    *boltdb.Storage
	history *sqlite.Storage
	store   *auth.TokenStore
	session *auth.Session
	habits  *habitsync.Service
	stats   *stats.Service
	clock   *clockwork.FakeClock
}

func newStack(t *testing.T, server *apitest.Server) *stack {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	bolt, err := boltdb.New(ctx, filepath.Join(dir, "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	history, err := sqlite.New(ctx, filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = history.Close() })

	salt, err := bolt.Salt(ctx)
	require.NoError(t, err)
	key, err := crypto.DeriveStorageKey("passphrase", salt)
	require.NoError(t, err)

	st := &stack{server: server, bolt: bolt, history: history, clock: clockwork.NewFakeClock()}
	st.store = auth.NewTokenStore(bolt, auth.WithEncryptionKey(key))
	st.connect(t)
	return st
}

// connect собирает сессию и сервисы, как это делает процесс при старте
func (st *stack) connect(t *testing.T) {
	t.Helper()
	opts := []api.Option{api.WithAPIKey(testAPIKey)}

	st.session = auth.NewSession(context.Background(), api.NewAuthClient(st.server.URL(), opts...), st.store, nil)
	st.habits = habitsync.NewService(
		api.NewClient(st.server.URL(), st.session, opts...),
		nil,
		habitsync.WithClock(st.clock),
		habitsync.WithCache(st.bolt),
		habitsync.WithHistory(st.history),
	)
	t.Cleanup(func() { _ = st.habits.Close() })
	st.stats = stats.NewService(st.history, st.clock, time.UTC)
}

func newServer(t *testing.T) *apitest.Server {
	t.Helper()
	server := apitest.New(apitest.WithAPIKey(testAPIKey))
	t.Cleanup(server.Close)
	return server
}

func seed(server *apitest.Server, name string, recurring bool) pkgapi.Habit {
	h := pkgapi.Habit{
		ID:          uuid.NewString(),
		Name:        name,
		Emoji:       "⭐️",
		XPPoints:    10,
		Category:    "General",
		IsRecurring: recurring,
	}
	server.SeedHabit(testEmail, h)
	return h
}

func TestEndToEnd_SignInFetchAdd(t *testing.T) {
	server := newServer(t)
	server.AddAccount(testEmail, testPassword)
	seed(server, "Read", true)

	st := newStack(t, server)
	ctx := context.Background()

	_, err := st.session.SignIn(ctx, testEmail, testPassword)
	require.NoError(t, err)

	token, ok := st.session.Token()
	require.True(t, ok)
	stored, ok := st.store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, token, stored)

	require.NoError(t, st.habits.Fetch(ctx))
	require.Len(t, st.habits.Snapshot().Habits, 1)

	st.habits.BeginAdding()
	st.habits.SetDraft("Drink water", "")
	require.NoError(t, st.habits.AddDraft(ctx))

	state := st.habits.Snapshot()
	require.Len(t, state.Habits, 2)
	first := state.Habits[0]
	assert.Equal(t, "Drink water", first.Name)
	assert.Equal(t, 10, first.XPPoints)
	assert.False(t, first.IsCompleted)
	assert.Nil(t, first.DeadlineDuration)
	assert.False(t, state.IsAdding)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.ErrorMessage)
}

func TestEndToEnd_SignUpAddCompleteStats(t *testing.T) {
	server := newServer(t)
	st := newStack(t, server)
	ctx := context.Background()

	user, err := st.session.SignUp(ctx, testEmail, testPassword, "Ann")
	require.NoError(t, err)
	assert.Equal(t, testEmail, user.Email)
	assert.Equal(t, auth.SignedIn, st.session.State())

	st.habits.BeginAdding()
	st.habits.SetDraft("Stretch", "2")
	require.NoError(t, st.habits.AddDraft(ctx))

	state := st.habits.Snapshot()
	require.Len(t, state.Habits, 1)
	created := state.Habits[0]
	require.NotNil(t, created.DeadlineDuration)
	assert.Equal(t, int64(7200), *created.DeadlineDuration)
	assert.Equal(t, habitsync.DefaultCategory, created.Category)
	assert.Empty(t, state.DraftName)

	require.NoError(t, st.habits.SetRecurring(ctx, created.ID, true))
	require.NoError(t, st.habits.ToggleCompletion(ctx, created.ID))

	onServer := server.Habits(testEmail)
	require.Len(t, onServer, 1)
	assert.True(t, onServer[0].IsCompleted)
	assert.True(t, onServer[0].IsRecurring)

	summary, err := st.stats.Summary(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.TotalXP)
	assert.Equal(t, 1, summary.Streak)
	assert.Equal(t, 10, summary.Days[2].XP)
}

func TestEndToEnd_ExpiredTokenIsRefreshedOnce(t *testing.T) {
	server := newServer(t)
	server.AddAccount(testEmail, testPassword)
	seed(server, "Read", true)

	st := newStack(t, server)
	ctx := context.Background()

	_, err := st.session.SignIn(ctx, testEmail, testPassword)
	require.NoError(t, err)
	oldToken, _ := st.session.Token()

	server.ExpireTokens()
	require.NoError(t, st.habits.Fetch(ctx))

	assert.Len(t, st.habits.Snapshot().Habits, 1)
	assert.Equal(t, 2, server.Requests("GET /habits"))
	assert.Equal(t, 1, server.Requests("GET /auth/refresh"))

	newToken, ok := st.session.Token()
	require.True(t, ok)
	assert.NotEqual(t, oldToken, newToken)

	// новый токен сохранён и переживает перезапуск
	stored, ok := st.store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, newToken, stored)
}

func TestEndToEnd_RefreshFailureIsUnauthorized(t *testing.T) {
	server := newServer(t)
	server.AddAccount(testEmail, testPassword)
	st := newStack(t, server)
	ctx := context.Background()

	_, err := st.session.SignIn(ctx, testEmail, testPassword)
	require.NoError(t, err)

	server.ExpireTokens()
	server.FailRefresh(true)

	err = st.habits.Fetch(ctx)
	require.ErrorIs(t, err, api.ErrUnauthorized)

	state := st.habits.Snapshot()
	assert.NotEmpty(t, state.ErrorMessage)
	assert.False(t, state.IsLoading)
	assert.Equal(t, 1, server.Requests("GET /habits"))
}

func TestEndToEnd_SecondUnauthorizedIsNotRetried(t *testing.T) {
	server := newServer(t)
	server.AddAccount(testEmail, testPassword)
	st := newStack(t, server)
	ctx := context.Background()

	_, err := st.session.SignIn(ctx, testEmail, testPassword)
	require.NoError(t, err)

	server.RejectNext(2)
	err = st.habits.Fetch(ctx)

	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, 2, server.Requests("GET /habits"))
	assert.Equal(t, 1, server.Requests("GET /auth/refresh"))
}

func TestEndToEnd_OneOffCompletionIsRemovedAfterGraceDelay(t *testing.T) {
	server := newServer(t)
	server.AddAccount(testEmail, testPassword)
	once := seed(server, "Call mom", false)

	st := newStack(t, server)
	ctx := context.Background()

	_, err := st.session.SignIn(ctx, testEmail, testPassword)
	require.NoError(t, err)
	require.NoError(t, st.habits.Fetch(ctx))

	h, ok := st.habits.Snapshot().Find(once.ID)
	require.True(t, ok)
	require.NoError(t, st.habits.ToggleCompletion(ctx, h.ID))

	assert.Empty(t, server.Habits(testEmail))

	pending, ok := st.habits.Snapshot().Find(once.ID)
	require.True(t, ok)
	assert.True(t, pending.PendingDeletion)

	st.clock.Advance(habitsync.DefaultGraceDelay)
	assert.Eventually(t, func() bool {
		_, ok := st.habits.Snapshot().Find(once.ID)
		return !ok
	}, time.Second, 10*time.Millisecond)

	total, err := st.history.TotalXP(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}

func TestEndToEnd_Proof(t *testing.T) {
	server := newServer(t)
	server.AddAccount(testEmail, testPassword)
	kept := seed(server, "Gym", true)
	dropped := seed(server, "Dentist", false)

	st := newStack(t, server)
	ctx := context.Background()

	_, err := st.session.SignIn(ctx, testEmail, testPassword)
	require.NoError(t, err)
	require.NoError(t, st.habits.Fetch(ctx))

	photo := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	h, _ := st.habits.Snapshot().Find(kept.ID)
	require.NoError(t, st.habits.UploadProof(ctx, h.ID, photo))

	updated, ok := st.habits.Snapshot().Find(kept.ID)
	require.True(t, ok)
	assert.True(t, updated.IsCompleted)
	got, ok := server.Proof(kept.ID)
	require.True(t, ok)
	assert.Equal(t, photo, got)

	server.ProofNoContent(true)
	h, _ = st.habits.Snapshot().Find(dropped.ID)
	require.NoError(t, st.habits.UploadProof(ctx, h.ID, photo))

	_, ok = st.habits.Snapshot().Find(dropped.ID)
	assert.False(t, ok)
}

func TestEndToEnd_SessionRestoredAndOfflineCache(t *testing.T) {
	server := newServer(t)
	server.AddAccount(testEmail, testPassword)
	seed(server, "Read", true)

	st := newStack(t, server)
	ctx := context.Background()

	_, err := st.session.SignIn(ctx, testEmail, testPassword)
	require.NoError(t, err)
	require.NoError(t, st.habits.Fetch(ctx))

	// новый процесс: токен читается из хранилища
	st.connect(t)
	assert.Equal(t, auth.SignedIn, st.session.State())
	require.NoError(t, st.habits.Fetch(ctx))

	server.Close()
	st.connect(t)

	err = st.habits.Fetch(ctx)
	var netErr *api.NetworkError
	require.ErrorAs(t, err, &netErr)

	require.NoError(t, st.habits.LoadCached(ctx))
	state := st.habits.Snapshot()
	assert.True(t, state.FromCache)
	require.Len(t, state.Habits, 1)
	assert.Equal(t, "Read", state.Habits[0].Name)
}

func TestEndToEnd_LogoutForgetsToken(t *testing.T) {
	server := newServer(t)
	server.AddAccount(testEmail, testPassword)
	st := newStack(t, server)
	ctx := context.Background()

	_, err := st.session.SignIn(ctx, testEmail, testPassword)
	require.NoError(t, err)
	require.NoError(t, st.session.Logout(ctx))

	st.connect(t)
	assert.Equal(t, auth.SignedOut, st.session.State())

	err = st.habits.Fetch(ctx)
	assert.True(t, errors.Is(err, api.ErrUnauthorized), "got %v", err)
}

func TestEndToEnd_WrongAPIKey(t *testing.T) {
	server := newServer(t)
	server.AddAccount(testEmail, testPassword)

	client := api.NewAuthClient(server.URL(), api.WithAPIKey("wrong"))
	_, err := client.Login(context.Background(), pkgapi.LoginRequest{Email: testEmail, Password: testPassword})

	var serverErr *api.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, 403, serverErr.Status)
}
