package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	S3        S3Config
	NATS      NATSConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Observers ObserversConfig
	Tiles     TilesConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"5m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type JWTConfig struct {
	SecretKey    string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	ViewTokenTTL time.Duration `envconfig:"JWT_VIEW_TOKEN_TTL" default:"720h"`
}

// S3Config is only required when the region archive observer is enabled.
type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	KeyPrefix       string `envconfig:"S3_KEY_PREFIX" default:"archive"`
}

type NATSConfig struct {
	URL           string        `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	SubjectPrefix string        `envconfig:"NATS_SUBJECT_PREFIX" default:"mapview.region"`
	ReconnectWait time.Duration `envconfig:"NATS_RECONNECT_WAIT" default:"2s"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int           `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"100"`
	BurstSize      int           `envconfig:"RATE_LIMIT_BURST_SIZE" default:"10"`
	Window         time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

type ObserversConfig struct {
	CacheEnabled     bool          `envconfig:"OBSERVER_CACHE_ENABLED" default:"true"`
	CacheTTL         time.Duration `envconfig:"OBSERVER_CACHE_TTL" default:"24h"`
	PublishEnabled   bool          `envconfig:"OBSERVER_PUBLISH_ENABLED" default:"false"`
	ArchiveEnabled   bool          `envconfig:"OBSERVER_ARCHIVE_ENABLED" default:"false"`
	ArchiveQueueSize int           `envconfig:"OBSERVER_ARCHIVE_QUEUE_SIZE" default:"64"`
	Timeout          time.Duration `envconfig:"OBSERVER_TIMEOUT" default:"2s"`
}

type TilesConfig struct {
	MaxTiles int `envconfig:"TILES_MAX_TILES" default:"4096"`
	MaxCells int `envconfig:"TILES_MAX_CELLS" default:"64"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
