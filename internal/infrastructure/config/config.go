package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth       AuthConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	Upload     UploadConfig
	Superadmin SuperadminConfig
	RateLimit  RateLimitConfig
	Audit      AuditConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=12"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=levitica_hr"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	Dir      string `env:"UPLOAD_DIR,       default=uploads/profile_images"`
	MaxBytes int64  `env:"UPLOAD_MAX_BYTES, default=4194304"`
}

// SuperadminConfig describes the account seeded at startup when no
// superadmin exists yet. Change the default password after first login.
type SuperadminConfig struct {
	Email    string `env:"SUPERADMIN_EMAIL,    default=superadmin@levitica.com"`
	Password string `env:"SUPERADMIN_PASSWORD, default=Admin@123"`
	Name     string `env:"SUPERADMIN_NAME,     default=Super Administrator"`
}

type RateLimitConfig struct {
	Enabled     bool          `env:"LOGIN_RATE_LIMIT_ENABLED, default=true"`
	MaxAttempts int           `env:"LOGIN_RATE_LIMIT_MAX,     default=10"`
	Window      time.Duration `env:"LOGIN_RATE_LIMIT_WINDOW,  default=1m"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
