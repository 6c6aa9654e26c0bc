// Package config loads the runtime configuration from the environment.
//
// A .env file in the working directory is loaded first if present. Values that
// are already set in the environment take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// HTTP server
	Port        string
	GinMode     string
	LogFormat   string
	CORSOrigin  string
	EnablePprof bool

	// Database. If DatabaseURL is set, Postgres is used, SQLitePath otherwise.
	DatabaseURL string
	SQLitePath  string

	// Uploads
	MaxUploadMB int

	// Base URL of the API, used by wkyctl
	APIURL string
}

// Defaults used when the environment does not set a value.
var defaults = map[string]any{
	"PORT":          "5001",
	"GIN_MODE":      "release",
	"LOG_FORMAT":    "",
	"CORS_ORIGIN":   "*",
	"ENABLE_PPROF":  false,
	"DATABASE_URL":  "",
	"SQLITE_PATH":   "data/wky.db",
	"MAX_UPLOAD_MB": 30,
	"WKY_API_URL":   "http://localhost:5001",
}

// Load reads the configuration from .env and the environment.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return Config{
		Port:        v.GetString("PORT"),
		GinMode:     v.GetString("GIN_MODE"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		CORSOrigin:  v.GetString("CORS_ORIGIN"),
		EnablePprof: v.GetBool("ENABLE_PPROF"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		SQLitePath:  v.GetString("SQLITE_PATH"),
		MaxUploadMB: v.GetInt("MAX_UPLOAD_MB"),
		APIURL:      strings.TrimRight(v.GetString("WKY_API_URL"), "/"),
	}
}

// UsePostgres reports whether the configured database is Postgres.
func (c Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// DSN returns the data source name for the configured database.
func (c Config) DSN() string {
	if c.UsePostgres() {
		return c.DatabaseURL
	}
	return c.SQLitePath
}

// MaxUploadBytes is the upload size limit in bytes.
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) * 1024 * 1024
}

// CORSOrigins returns the allowed origins. A single "*" allows every origin.
func (c Config) CORSOrigins() []string {
	return strings.Fields(strings.ReplaceAll(c.CORSOrigin, ",", " "))
}

// Validate returns an error listing every invalid setting.
func (c Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MaxUploadMB < 1 {
		errs = append(errs, fmt.Sprintf("invalid upload limit %dMB: must be at least 1", c.MaxUploadMB))
	}

	for _, origin := range c.CORSOrigins() {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Sprintf("invalid CORS origin '%s': must be * or start with http:// or https://", origin))
		}
	}

	if !c.UsePostgres() && c.SQLitePath == "" {
		errs = append(errs, "either DATABASE_URL or SQLITE_PATH must be set")
	}

	if c.UsePostgres() && !strings.HasPrefix(c.DatabaseURL, "postgres://") && !strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		errs = append(errs, "DATABASE_URL must be a postgres:// or postgresql:// URL")
	}

	if len(errs) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(errs, "; "))
	}

	return nil
}
