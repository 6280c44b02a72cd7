// Package config собирает настройки клиента из .env файла и переменных окружения.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Переменные окружения
const (
	EnvServerURL      = "HABIT_SERVER_URL"
	EnvAPIKey         = "HABIT_API_KEY"
	EnvDataDir        = "HABIT_DATA_DIR"
	EnvTokenBackend   = "HABIT_TOKEN_BACKEND"
	EnvPassphrase     = "HABIT_STORE_PASSPHRASE"
	EnvLogLevel       = "HABIT_LOG_LEVEL"
	EnvRequestTimeout = "HABIT_REQUEST_TIMEOUT"
	EnvRateLimit      = "HABIT_RATE_LIMIT"
)

// Значения по умолчанию
const (
	DefaultServerURL      = "http://localhost:8080"
	DefaultLogLevel       = "warn"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRateLimit      = 5.0

	appDirName = "habittracker"
)

// ErrInvalidConfig returned when a setting cannot be parsed or is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// TokenBackend где хранится токен сессии
type TokenBackend string

const (
	// BackendAuto keyring, если он доступен, иначе файл
	BackendAuto TokenBackend = "auto"
	// BackendKeyring системный keyring
	BackendKeyring TokenBackend = "keyring"
	// BackendFile BoltDB файл в DataDir
	BackendFile TokenBackend = "file"
)

// Config настройки клиента
type Config struct {
	ServerURL      string
	APIKey         string
	DataDir        string
	TokenBackend   TokenBackend
	Passphrase     string
	LogLevel       string
	RequestTimeout time.Duration
	RateLimit      float64 // запросов в секунду, 0 отключает лимит
}

// Load reads .env files (missing files are skipped; the default is ./.env)
// and then the environment. Variables already set in the environment win
// over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				slog.Debug("env file not found", "file", file)
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup for every variable and applies defaults
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		ServerURL:      get(EnvServerURL),
		APIKey:         get(EnvAPIKey),
		DataDir:        get(EnvDataDir),
		TokenBackend:   TokenBackend(strings.ToLower(get(EnvTokenBackend))),
		Passphrase:     get(EnvPassphrase),
		LogLevel:       strings.ToLower(get(EnvLogLevel)),
		RequestTimeout: DefaultRequestTimeout,
		RateLimit:      DefaultRateLimit,
	}

	if v := get(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}

	if v := get(EnvRateLimit); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvRateLimit, err)
		}
		cfg.RateLimit = r
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.TokenBackend == "" {
		c.TokenBackend = BackendAuto
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			// нет HOME: работаем в текущем каталоге
			base = "."
		}
		c.DataDir = filepath.Join(base, appDirName)
	}
}

// Validate checks the values that cannot be fixed by defaults
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %s must be an absolute http(s) url, got %q", ErrInvalidConfig, EnvServerURL, c.ServerURL)
	}

	switch c.TokenBackend {
	case BackendAuto, BackendKeyring, BackendFile:
	default:
		return fmt.Errorf("%w: %s must be one of auto, keyring, file, got %q", ErrInvalidConfig, EnvTokenBackend, c.TokenBackend)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, EnvRequestTimeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, EnvRateLimit)
	}
	return nil
}

// StorePath файл BoltDB: токен (файловый бэкенд), кеш привычек, метаданные
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "habittracker.db")
}

// HistoryPath файл SQLite с историей выполнений
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.db")
}

// LogDir каталог логов
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}
