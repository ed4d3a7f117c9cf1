// ABOUTME: Layered configuration for the dashboard server and tools
// ABOUTME: Merges defaults, an XDG JSON file, a .env file, and environment variables

package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const (
	// AppName names the config directory under XDG_CONFIG_HOME.
	AppName = "crmdash"

	// ConfigFileName is where we store local config.
	ConfigFileName = "config.json"

	DefaultAddr         = ":8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultLocale       = "en-US"
	DefaultCurrency     = "USD"
	DefaultPhoneRegion  = "US"
	DefaultAPIRateLimit = 600
)

// Config holds server and display settings.
type Config struct {
	// Addr is the HTTP listen address
	Addr string `json:"addr,omitempty"`

	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"`

	// Locale and Currency drive money and number formatting
	Locale   string `json:"locale,omitempty"`
	Currency string `json:"currency,omitempty"`

	// CORSOrigins are the origins allowed on /api
	CORSOrigins []string `json:"cors_origins,omitempty"`

	// PhoneRegion is the default region for tel: link normalisation
	PhoneRegion string `json:"phone_region,omitempty"`

	// APIRateLimit is requests per minute per client on /api
	APIRateLimit int `json:"api_rate_limit,omitempty"`

	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Only set it behind a reverse proxy that overwrites them.
	TrustProxy bool `json:"trust_proxy,omitempty"`
}

// DefaultConfig returns a new config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:         DefaultAddr,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		Locale:       DefaultLocale,
		Currency:     DefaultCurrency,
		CORSOrigins:  []string{"*"},
		PhoneRegion:  DefaultPhoneRegion,
		APIRateLimit: DefaultAPIRateLimit,
	}
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}

// Load reads the XDG config file, then .env in the working directory, then
// the environment. Later layers win.
func Load() (*Config, error) {
	cfg, err := LoadFile(Path())
	if err != nil {
		return nil, err
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// LoadFile loads config from disk, or returns defaults if the file is
// missing or invalid.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		// Invalid config, use defaults
		return DefaultConfig(), nil //nolint:nilerr // Intentionally returning defaults on parse error
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	if c.Locale == "" {
		c.Locale = d.Locale
	}
	if c.Currency == "" {
		c.Currency = d.Currency
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = d.CORSOrigins
	}
	if c.APIRateLimit <= 0 {
		c.APIRateLimit = d.APIRateLimit
	}
	if c.PhoneRegion == "" {
		c.PhoneRegion = d.PhoneRegion
	}
}

// ApplyEnv overrides fields from environment variables that are set.
func (c *Config) ApplyEnv() {
	set := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set("CRMDASH_ADDR", &c.Addr)
	set("LOG_LEVEL", &c.LogLevel)
	set("LOG_FORMAT", &c.LogFormat)
	set("CRMDASH_LOCALE", &c.Locale)
	set("CRMDASH_CURRENCY", &c.Currency)
	set("CRMDASH_PHONE_REGION", &c.PhoneRegion)

	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("CRMDASH_API_RATE_LIMIT"))); err == nil && n > 0 {
		c.APIRateLimit = n
	}
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("CRMDASH_TRUST_PROXY"))); err == nil {
		c.TrustProxy = b
	}

	if v := os.Getenv("CRMDASH_CORS_ORIGINS"); strings.TrimSpace(v) != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			c.CORSOrigins = origins
		}
	}
}

// Save persists the config to the XDG config path.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
