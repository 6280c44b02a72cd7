package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/habittracker/internal/client/api"
	"github.com/iudanet/habittracker/internal/client/auth"
	"github.com/iudanet/habittracker/internal/client/cli"
	"github.com/iudanet/habittracker/internal/client/config"
	"github.com/iudanet/habittracker/internal/client/iocli"
	"github.com/iudanet/habittracker/internal/client/stats"
	"github.com/iudanet/habittracker/internal/client/storage"
	"github.com/iudanet/habittracker/internal/client/storage/boltdb"
	"github.com/iudanet/habittracker/internal/client/storage/keyring"
	"github.com/iudanet/habittracker/internal/client/storage/sqlite"
	habitsync "github.com/iudanet/habittracker/internal/client/sync"
	"github.com/iudanet/habittracker/internal/crypto"
	"github.com/iudanet/habittracker/internal/logger"
)

// rateBurst допустимый всплеск исходящих запросов
const rateBurst = 3

type appOptions struct {
	envFile string
	server  string
	dataDir string
	debug   bool
}

// app владеет ресурсами процесса
type app struct {
	logger  *slog.Logger
	cli     *cli.Cli
	habits  *habitsync.Service
	closers []func() error
}

func newApp(ctx context.Context, opts appOptions) (_ *app, err error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}
	if opts.server != "" {
		cfg.ServerURL = opts.server
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	log, closeLog, err := logger.New(logger.Config{Dir: cfg.LogDir(), Level: cfg.LogLevel, Mirror: os.Stderr})
	if err != nil {
		return nil, err
	}

	a := &app{logger: log, closers: []func() error{closeLog}}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	bolt, err := boltdb.New(ctx, cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	a.closers = append(a.closers, bolt.Close)

	history, err := sqlite.New(ctx, cfg.HistoryPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	a.closers = append(a.closers, history.Close)

	tokenStore, err := newTokenStore(ctx, cfg, bolt, log)
	if err != nil {
		return nil, err
	}

	apiOpts := []api.Option{
		api.WithAPIKey(cfg.APIKey),
		api.WithTimeout(cfg.RequestTimeout),
		api.WithRateLimit(cfg.RateLimit, rateBurst),
		api.WithLogger(log),
	}

	session := auth.NewSession(ctx, api.NewAuthClient(cfg.ServerURL, apiOpts...), tokenStore, log)

	a.habits = habitsync.NewService(
		api.NewClient(cfg.ServerURL, session, apiOpts...),
		log,
		habitsync.WithCache(bolt),
		habitsync.WithHistory(history),
	)

	statsService := stats.NewService(history, clockwork.NewRealClock(), nil)

	a.cli = cli.New(iocli.NewStdio(), session, a.habits, statsService)

	log.DebugContext(ctx, "client started",
		"server", cfg.ServerURL,
		"data_dir", cfg.DataDir,
		"token_backend", cfg.TokenBackend,
	)
	return a, nil
}

// newTokenStore выбирает бэкенд токена: системный keyring или BoltDB файл.
// В файле токен шифруется, если задана парольная фраза.
func newTokenStore(ctx context.Context, cfg *config.Config, bolt *boltdb.Storage, log *slog.Logger) (*auth.TokenStore, error) {
	backend := cfg.TokenBackend
	if backend == config.BackendAuto {
		backend = config.BackendFile
		if keyring.IsAvailable() {
			backend = config.BackendKeyring
		}
	}

	var storeOpts []auth.StoreOption
	storeOpts = append(storeOpts, auth.WithStoreLogger(log))

	var tokens storage.TokenStorage
	switch backend {
	case config.BackendKeyring:
		if !keyring.IsAvailable() {
			return nil, keyring.ErrKeyringUnavailable
		}
		tokens = keyring.New()
	default:
		tokens = bolt
		if cfg.Passphrase != "" {
			salt, err := bolt.Salt(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to load key salt: %w", err)
			}
			key, err := crypto.DeriveStorageKey(cfg.Passphrase, salt)
			if err != nil {
				return nil, fmt.Errorf("failed to derive storage key: %w", err)
			}
			storeOpts = append(storeOpts, auth.WithEncryptionKey(key))
		} else {
			log.WarnContext(ctx, "token is stored unencrypted, set HABIT_STORE_PASSPHRASE to encrypt it")
		}
	}

	log.DebugContext(ctx, "token backend selected", "backend", backend)
	return auth.NewTokenStore(tokens, storeOpts...), nil
}

// Close останавливает сервис и закрывает хранилища в обратном порядке
func (a *app) Close() error {
	var errs []error
	if a.habits != nil {
		errs = append(errs, a.habits.Close())
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}
