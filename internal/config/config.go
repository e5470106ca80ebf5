// Package config provides environment-driven configuration for the
// application: .env loading and shared logger setup.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is the shared application logger. The core parsing packages do
	// not log; glue layers (cmd, batch, api) use this instance.
	Logger = logrus.New()
)

// LoadEnv loads variables from a .env file if one exists in the working
// directory, then configures logging from the environment. Safe to call more
// than once; only the first call does anything.
func LoadEnv() {
	once.Do(func() {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(".env"); err != nil {
				Logger.Warnf("Error loading .env file: %v", err)
			}
		}
		ConfigureLogging()
	})
}

// ConfigureLogging applies LOG_LEVEL and LOG_FORMAT to the shared logger and
// returns it. Unknown levels fall back to info; any format other than "json"
// means full-timestamp text.
func ConfigureLogging() *logrus.Logger {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		Logger.Warnf("Invalid log level %q, using info", levelStr)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return Logger
}
