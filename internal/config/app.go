package config

import (
	"errors"
	"time"
)

// Config is the fully resolved application configuration.
type Config struct {
	Port               string
	LogLevel           string
	CORSAllowedOrigins string

	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Airtime AirtimeConfig
}

// DBConfig holds the database connection and pool settings. Driver is
// "postgres" or "sqlite".
type DBConfig struct {
	Driver          string
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// RedisConfig holds the redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// JWTConfig holds the token signing settings. Secret is base64 encoded.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// AirtimeConfig points at the airtime provider. PrivateKey signs requests,
// PublicKey is sent as the bearer credential.
type AirtimeConfig struct {
	APIURL     string
	PublicKey  string
	PrivateKey string
	Timeout    time.Duration
}

var (
	ErrMissingAirtimeURL  = errors.New("AIRTIME_API_URL is not configured")
	ErrMissingAirtimeKeys = errors.New("AIRTIME_PUBLIC_KEY and AIRTIME_PRIVATE_KEY must be configured")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is not configured")
)

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               GetEnv("PORT", "8080"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: GetEnv("CORS_ALLOWED_ORIGINS", "*"),
		DB:                 LoadDBConfig(),
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
			TTL:      GetDurationEnv("REDIS_TTL", 15*time.Minute),
		},
		JWT: JWTConfig{
			Secret:     GetEnv("JWT_SECRET", ""),
			Expiration: GetDurationEnv("JWT_EXPIRATION", 24*time.Hour),
		},
		Airtime: AirtimeConfig{
			APIURL:     GetEnv("AIRTIME_API_URL", ""),
			PublicKey:  GetEnv("AIRTIME_PUBLIC_KEY", ""),
			PrivateKey: GetEnv("AIRTIME_PRIVATE_KEY", ""),
			Timeout:    GetDurationEnv("AIRTIME_HTTP_TIMEOUT", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings.
func LoadDBConfig() DBConfig {
	return DBConfig{
		Driver:          GetEnv("DB_DRIVER", "postgres"),
		SQLitePath:      GetEnv("DB_SQLITE_PATH", "xpressairtime.db"),
		Host:            GetEnv("DB_HOST", "localhost"),
		Port:            GetEnv("DB_PORT", "5432"),
		User:            GetEnv("DB_USER", "postgres"),
		Password:        GetEnv("DB_PASSWORD", "postgres"),
		Name:            GetEnv("DB_NAME", "xpressairtime"),
		SSLMode:         GetEnv("DB_SSLMODE", "disable"),
		MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
	}
}

// Validate checks that the externally supplied secrets are present.
func (c *Config) Validate() error {
	if c.Airtime.APIURL == "" {
		return ErrMissingAirtimeURL
	}
	if c.Airtime.PublicKey == "" || c.Airtime.PrivateKey == "" {
		return ErrMissingAirtimeKeys
	}
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// DSN returns the postgres connection string.
func (c DBConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode
}
