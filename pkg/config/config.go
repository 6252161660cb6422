// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds the full application configuration.
type App struct {
	Env    string `envconfig:"ENV" default:"development"`
	Data   Data
	Server Server
	Log    Log
}

// Data configures the account data file and its line codec.
type Data struct {
	// File is the path of the persisted account file.
	File string `envconfig:"DATA_FILE" default:"Bank.data"`
	// CodecKey is the key for the line obfuscation codec. It carries no
	// confidentiality guarantee; an empty key stores plain hex.
	CodecKey string `envconfig:"DATA_CODEC_KEY" default:"MySecretKey123"`
}

// Server configures the HTTP listener.
type Server struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port int    `envconfig:"SERVER_PORT" default:"3000"`
}

// Log configures logging.
type Log struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment. When a .env file exists in
// the working directory it is loaded first; its absence is not an error.
func Load() (*App, error) {
	logger := slog.Default()
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment")
	} else {
		logger.Info("environment loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("config loaded",
		"env", cfg.Env,
		"data_file", cfg.Data.File,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)
	return &cfg, nil
}

// SlogLevel maps the configured level name onto a slog.Level, defaulting to
// info for unknown names.
func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
