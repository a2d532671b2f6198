package config

import (
	"os"
	"strconv"

	"civicreport/models"
)

// Config holds application level configuration loaded from environment
// variables. None of it reaches the store's transition logic; it only shapes
// logging and the preferences a fresh state boots with.
type Config struct {
	LogLevel        string
	StrictDispatch  bool
	DefaultLanguage models.Language
	DefaultDarkMode bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	lang := models.Language(getEnv("DEFAULT_LANGUAGE", string(models.English)))
	if !lang.IsValid() {
		lang = models.English
	}
	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StrictDispatch:  getEnvBool("STRICT_DISPATCH", false),
		DefaultLanguage: lang,
		DefaultDarkMode: getEnvBool("DEFAULT_DARK_MODE", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
