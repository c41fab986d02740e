package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"

	StoreDriverRedis  = "redis"
	StoreDriverMemory = "memory"
)

type Config struct {
	App          AppConfig
	Catalog      CatalogConfig
	DB           DBConfig
	Store        StoreConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Notify       NotifyConfig
	Availability AvailabilityConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

type CatalogConfig struct {
	Source string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type StoreConfig struct {
	Driver string
	// TTL applied to every client key, zero keeps keys until explicitly cleared.
	TTL time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	ClientExpiry time.Duration
}

type NotifyConfig struct {
	Delay             time.Duration
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
}

type AvailabilityConfig struct {
	IdleTTL time.Duration
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads an optional env file and overlays process environment variables.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Catalog: CatalogConfig{
			Source: v.GetString("CATALOG_SOURCE"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Store: StoreConfig{
			Driver: v.GetString("STORE_DRIVER"),
			TTL:    durationOr(v, "CLIENT_STATE_TTL", 0),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			ClientExpiry: durationOr(v, "JWT_CLIENT_EXPIRY", 24*time.Hour),
		},
		Notify: NotifyConfig{
			Delay:             durationOr(v, "NOTIFY_DELAY", time.Second),
			SendGridAPIKey:    v.GetString("SENDGRID_API_KEY"),
			SendGridFromEmail: v.GetString("SENDGRID_FROM_EMAIL"),
			SendGridFromName:  v.GetString("SENDGRID_FROM_NAME"),
		},
		Availability: AvailabilityConfig{
			IdleTTL: durationOr(v, "AVAILABILITY_IDLE_TTL", 30*time.Minute),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CATALOG_SOURCE", CatalogSourceStatic)
	v.SetDefault("STORE_DRIVER", StoreDriverMemory)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case CatalogSourceStatic, CatalogSourcePostgres:
	default:
		return errors.New("CATALOG_SOURCE must be static or postgres")
	}
	switch c.Store.Driver {
	case StoreDriverRedis, StoreDriverMemory:
	default:
		return errors.New("STORE_DRIVER must be redis or memory")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// durationOr falls back when the key is unset or unparsable.
func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
