// Package config resolves runtime settings from an optional .env file,
// the environment, and finally command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/forkify/internal/forkify"
)

// Env var names.
const (
	EnvAPIURL   = "FORKIFY_API_URL"
	EnvAPIKey   = "FORKIFY_API_KEY"
	EnvDB       = "FORKIFY_DB"
	EnvRecipe   = "FORKIFY_RECIPE"
	EnvHistory  = "FORKIFY_HISTORY"
	EnvTimeout  = "FORKIFY_TIMEOUT"
	EnvLogLevel = "FORKIFY_LOG_LEVEL"
	EnvDataDir  = "FORKIFY_DATA_DIR"
)

// Config holds every tunable of the application.
type Config struct {
	APIURL      string
	APIKey      string
	HTTPTimeout time.Duration
	DBPath      string
	HistoryFile string
	LogFile     string
	LogLevel    string
	Recipe      string // initial location, e.g. "#47746"
	Plain       bool   // force the readline UI
	NoPersist   bool   // keep likes in memory only
}

// Load reads .env (if present) and the environment. getenv is injectable
// for tests; pass nil to use os.Getenv.
func Load(getenv func(string) string) (*Config, error) {
	if getenv == nil {
		_ = godotenv.Load()
		getenv = os.Getenv
	}

	dataDir := getenv(EnvDataDir)
	if dataDir == "" {
		d, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = d
	}

	cfg := &Config{
		APIURL:      forkify.DefaultBaseURL,
		APIKey:      getenv(EnvAPIKey),
		HTTPTimeout: 20 * time.Second,
		DBPath:      filepath.Join(dataDir, "forkify.db"),
		HistoryFile: filepath.Join(dataDir, "history"),
		LogFile:     ".forkify-logs/forkify.log",
		LogLevel:    "normal",
		Recipe:      getenv(EnvRecipe),
	}

	if v := getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := getenv(EnvHistory); v != "" {
		cfg.HistoryFile = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: invalid API URL %q", c.APIURL)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("config: HTTP timeout must be positive")
	}
	if !c.NoPersist && c.DBPath == "" {
		return errors.New("config: database path is empty")
	}
	return nil
}

// parseTimeout accepts Go durations ("15s") or a plain number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("must be positive, got %d", secs)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}

// defaultDataDir returns the platform-specific data directory.
func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "forkify"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "forkify"), nil
	default:
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
		return filepath.Join(dataHome, "forkify"), nil
	}
}
