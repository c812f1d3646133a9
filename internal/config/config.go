// Package config collects environment-backed configuration into a single
// typed struct handed to the composition root.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvDevelopment enables verbose error responses.
	EnvDevelopment = "development"
	// EnvProduction suppresses internal error details in responses.
	EnvProduction = "production"
)

// Config holds every runtime setting of the server.
type Config struct {
	Env       string
	Port      string
	JWTSecret string
	// FrontendOrigins are the origins allowed by CORS.
	FrontendOrigins []string
	DB              DB
	Redis           Redis
	RunMigrations   bool
}

// DB holds the Postgres connection settings. DatabaseURL wins when set;
// otherwise the discrete fields are assembled into a DSN.
type DB struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
}

// Redis holds the optional cache connection settings.
type Redis struct {
	Host     string
	Port     string
	Password string
}

// DSN returns the Postgres DSN, preferring DATABASE_URL.
func (d DB) DSN() string {
	if d.DatabaseURL != "" {
		return d.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Addr returns the host:port pair for the Redis client, or "" when
// Redis is not configured.
func (r Redis) Addr() string {
	if r.Host == "" {
		return ""
	}
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return r.Host + ":" + port
}

// Load reads an optional .env file and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_ENV", EnvDevelopment)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "chusu_note")

	cfg := &Config{
		Env:       viper.GetString("APP_ENV"),
		Port:      viper.GetString("PORT"),
		JWTSecret: viper.GetString("JWT_SECRET"),
		DB: DB{
			DatabaseURL: viper.GetString("DATABASE_URL"),
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			Name:        viper.GetString("DB_NAME"),
		},
		Redis: Redis{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
		},
		RunMigrations: viper.GetBool("RUN_MIGRATIONS"),
	}

	for _, o := range strings.Split(viper.GetString("FRONTEND_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.FrontendOrigins = append(cfg.FrontendOrigins, o)
		}
	}

	return cfg
}

// IsDevelopment reports whether verbose error responses are enabled.
func (c *Config) IsDevelopment() bool {
	return c.Env != EnvProduction
}
