package config

import (
	"flag"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// AppDir is the per-user directory (under os.UserConfigDir) holding local client state.
const AppDir = "BlogDesk"

const (
	DefaultBaseURL        = "localhost:8080"
	DefaultTokenStore     = "file"
	DefaultRequestTimeout = 15 * time.Second
	DefaultLogLevel       = "warn"
)

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

type Config struct {
	// BaseURL may be host:port or a full http(s) URL.
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	// ServerURL is derived from BaseURL and EnableHTTPS.
	ServerURL string `env:"-"`

	// TokenStore selects where the bearer token lives: "file" or "sqlite".
	TokenStore string `env:"TOKEN_STORE"`
	TokenFile  string `env:"TOKEN_FILE"`
	StorageDB  string `env:"STORAGE_DB"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// RateLimitRPM > 0 throttles outgoing requests.
	RateLimitRPM float64 `env:"RATE_LIMIT_RPM"`
	LogLevel     string  `env:"LOG_LEVEL"`

	Version bool `env:"-"` // flag only
}

// NewConfig loads .env, then the environment, then command-line flags, and fills defaults.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "CMS server address (host:port or full URL)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "use https when base-url is host:port")
	flag.StringVar(&cfg.TokenStore, "token-store", cfg.TokenStore, "token storage backend: file or sqlite")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to the token file")
	flag.StringVar(&cfg.StorageDB, "storage-db", cfg.StorageDB, "path to the local SQLite storage")
	flag.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "HTTP request timeout")
	flag.Float64Var(&cfg.RateLimitRPM, "rate-limit", cfg.RateLimitRPM, "max requests per minute (0 = unlimited)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.ServerURL = ""
	if hostPortRe.MatchString(c.BaseURL) {
		if c.EnableHTTPS {
			c.ServerURL = "https://" + c.BaseURL
		} else {
			c.ServerURL = "http://" + c.BaseURL
		}
	} else if u, err := url.Parse(c.BaseURL); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		c.ServerURL = strings.TrimRight(c.BaseURL, "/")
		c.EnableHTTPS = u.Scheme == "https"
	}
	if c.ServerURL == "" {
		c.BaseURL = DefaultBaseURL
		c.ServerURL = "http://" + DefaultBaseURL
		if c.EnableHTTPS {
			c.ServerURL = "https://" + DefaultBaseURL
		}
	}

	c.TokenStore = strings.ToLower(strings.TrimSpace(c.TokenStore))
	if c.TokenStore == "" {
		c.TokenStore = DefaultTokenStore
	}

	dir := appDir()
	if c.TokenFile == "" {
		c.TokenFile = filepath.Join(dir, "token")
	}
	if c.StorageDB == "" {
		c.StorageDB = filepath.Join(dir, "storage.db")
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.RateLimitRPM < 0 {
		c.RateLimitRPM = 0
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func appDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		home, _ := os.UserHomeDir()
		base = home
	}
	return filepath.Join(base, AppDir)
}
