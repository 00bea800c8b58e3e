package config

import "time"

// StoreKind names a persistence medium for the login session.
type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreFile   StoreKind = "file"
	StoreRedis  StoreKind = "redis"
	StoreMemory StoreKind = "memory"
)

// DefaultOnlineCheckInterval is used when no positive interval is configured.
const DefaultOnlineCheckInterval = 3 * time.Second

// Config holds runtime settings for the LoginKeeper CLI.
//
// Fields:
//   - ServerURL: base URL of the backend API, without trailing slash.
//   - RequestTimeout: per-request HTTP timeout; 0 means none.
//   - OnlineCheckInterval: how often the client probes backend health.
//   - StoreKind/StorePath: which medium keeps the session and where.
//   - Redis*: connection settings used when StoreKind is "redis".
//   - LogLevel/LogFormat: slog level name and "text" or "json".
type Config struct {
	ServerURL           string        `env:"LOGINKEEPER_SERVER_URL"`
	RequestTimeout      time.Duration `env:"LOGINKEEPER_REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"LOGINKEEPER_ONLINE_CHECK_INTERVAL"`

	StoreKind StoreKind `env:"LOGINKEEPER_STORE"`
	StorePath string    `env:"LOGINKEEPER_STORE_PATH"`

	RedisAddr     string `env:"LOGINKEEPER_REDIS_ADDR"`
	RedisPassword string `env:"LOGINKEEPER_REDIS_PASSWORD"`
	RedisDB       int    `env:"LOGINKEEPER_REDIS_DB"`
	RedisPrefix   string `env:"LOGINKEEPER_REDIS_PREFIX"`

	LogLevel  string `env:"LOGINKEEPER_LOG_LEVEL"`
	LogFormat string `env:"LOGINKEEPER_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8101/api"
	c.RequestTimeout = 0
	c.OnlineCheckInterval = DefaultOnlineCheckInterval
	c.StoreKind = StoreSQLite
	c.StorePath = "loginkeeper.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisDB = 0
	c.RedisPrefix = "loginkeeper:"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given), the environment and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.normalize()
	return cfg
}

// normalize replaces values no source may set to something unusable.
func (c *Config) normalize() {
	if c.OnlineCheckInterval <= 0 {
		c.OnlineCheckInterval = DefaultOnlineCheckInterval
	}
	if c.RequestTimeout < 0 {
		c.RequestTimeout = 0
	}
}
