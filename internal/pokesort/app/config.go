package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/jwtx"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Env                  string        `yaml:"env" env:"ENV" env-default:"dev" env-description:"Environment (dev, staging, prod)"`
	LogLevel             string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat            string        `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
	Port                 int           `yaml:"port" env:"PORT" env-default:"8080"`
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period" env:"SHUTDOWN_GRACE_PERIOD" env-default:"10s"`
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval" env:"HOUSEKEEPING_INTERVAL" env-default:"1m"`

	Auth      AuthConfig      `yaml:"auth"`
	Database  DatabaseConfig  `yaml:"database"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
}

type AuthConfig struct {
	Issuer            string        `yaml:"issuer" env:"AUTH_ISSUER" env-default:"pokesort"`
	SessionSecret     string        `yaml:"session_secret" env:"AUTH_SESSION_SECRET" env-description:"HS256 secret, at least 32 bytes; generated per process in dev when unset"`
	SessionTTL        time.Duration `yaml:"session_ttl" env:"AUTH_SESSION_TTL" env-default:"720h"`
	RefreshAfter      time.Duration `yaml:"session_refresh_after" env:"AUTH_SESSION_REFRESH_AFTER" env-default:"24h"`
	SecureCookies     bool          `yaml:"secure_cookies" env:"AUTH_SECURE_COOKIES" env-default:"false"`
	PepperFile        string        `yaml:"pepper_file" env:"AUTH_PEPPER_FILE" env-default:"pepper"`
	SignInPath        string        `yaml:"signin_path" env:"AUTH_SIGNIN_PATH" env-default:"/auth/signin"`
	ProtectedPrefixes []string      `yaml:"protected_prefixes" env:"AUTH_PROTECTED_PREFIXES" env-default:"/dashboard,/api/protected" env-separator:","`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite"`
	File   string `yaml:"file" env:"DATABASE_FILE" env-default:"pokesort.db"`
	URL    string `yaml:"url" env:"DATABASE_URL"`
}

type RateLimitConfig struct {
	Backend  string `yaml:"backend" env:"RATE_LIMIT_BACKEND" env-default:"memory"`
	Max      int    `yaml:"max" env:"RATE_LIMIT_MAX" env-default:"100"`
	WindowMS int64  `yaml:"window_ms" env:"RATE_LIMIT_WINDOW_MS" env-default:"900000"`

	// TrustedProxies are the peers whose forwarding headers name the client.
	TrustedProxies []string `yaml:"trusted_proxies" env:"RATE_LIMIT_TRUSTED_PROXIES" env-default:"127.0.0.0/8,::1/128,10.0.0.0/8,172.16.0.0/12,192.168.0.0/16,fc00::/7" env-separator:","`
}

// Proxies parses TrustedProxies, falling back to httpx.DefaultTrustedProxies
// when none are listed.
func (c RateLimitConfig) Proxies() (httpx.TrustedProxies, error) {
	if len(c.TrustedProxies) == 0 {
		return httpx.DefaultTrustedProxies, nil
	}
	return httpx.ParseTrustedProxies(c.TrustedProxies...)
}

// Window is the fixed window length.
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowMS) * time.Millisecond
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// LoadConfig reads the environment. When CONFIG_PATH names a YAML file it is
// read first and the environment overrides it.
func LoadConfig() (Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// IsProd reports whether the service runs in production.
func (c Config) IsProd() bool { return c.Env == "prod" }

// SecureCookies reports whether every request is treated as TLS.
func (c Config) SecureCookies() bool { return c.IsProd() || c.Auth.SecureCookies }

// Validate rejects combinations the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Database.URL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DATABASE_DRIVER %q", c.Database.Driver))
	}

	switch c.RateLimit.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis rate limit backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown RATE_LIMIT_BACKEND %q", c.RateLimit.Backend))
	}

	if c.RateLimit.Max <= 0 || c.RateLimit.WindowMS <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_MAX and RATE_LIMIT_WINDOW_MS must be positive"))
	}
	if _, err := c.RateLimit.Proxies(); err != nil {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_TRUSTED_PROXIES: %w", err))
	}

	secret := len(c.Auth.SessionSecret)
	switch {
	case c.IsProd() && secret == 0:
		errs = append(errs, errors.New("AUTH_SESSION_SECRET is required in prod"))
	case secret > 0 && secret < jwtx.MinSecretLength:
		errs = append(errs, fmt.Errorf("AUTH_SESSION_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}

	return errors.Join(errs...)
}
