// Package config centralises configuration loading for the activities service.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	LogLevel     string
	LogFormat    string
	CORSOrigin   string
}

// Load reads an optional .env file and the process environment into Config,
// applying sensible defaults for local dev.
func Load() Config {
	// Missing .env is fine; system environment still applies.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.origin", "http://localhost:5173")

	return Config{
		HTTPAddress:  v.GetString("http.address"),
		ReadTimeout:  v.GetDuration("http.read_timeout"),
		WriteTimeout: v.GetDuration("http.write_timeout"),
		IdleTimeout:  v.GetDuration("http.idle_timeout"),
		LogLevel:     v.GetString("log.level"),
		LogFormat:    v.GetString("log.format"),
		CORSOrigin:   v.GetString("cors.origin"),
	}
}
