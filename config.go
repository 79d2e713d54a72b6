package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds server settings. Values come from riddlegrid.yaml when present,
// overridden by environment variables of the same name in upper case.
type Config struct {
	Port           string
	IsProduction   bool
	SessionTimeout time.Duration
	SweepInterval  time.Duration
	CookieMaxAge   time.Duration
	StaticCacheAge time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	DeckPath       string
	NextURL        string
	LogLevel       string
}

// loadConfig reads configuration from file and env.
func loadConfig() Config {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("next_url", RouteNewGame)
	v.SetDefault("log_level", "info")
	v.SetDefault("deck_path", "")

	v.SetConfigName("riddlegrid")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err == nil {
		logInfo("Loaded config file %s", v.ConfigFileUsed())
	}

	return Config{
		Port:           v.GetString("port"),
		IsProduction:   isProductionEnv(),
		SessionTimeout: configDuration(v, "session_timeout", 2*time.Hour),
		SweepInterval:  configDuration(v, "sweep_interval", 10*time.Minute),
		CookieMaxAge:   configDuration(v, "cookie_max_age", 2*time.Hour),
		StaticCacheAge: configDuration(v, "static_cache_age", 5*time.Minute),
		RateLimitRPS:   configInt(v, "rate_limit_rps", 5),
		RateLimitBurst: configInt(v, "rate_limit_burst", 10),
		DeckPath:       v.GetString("deck_path"),
		NextURL:        v.GetString("next_url"),
		LogLevel:       v.GetString("log_level"),
	}
}

func isProductionEnv() bool {
	return os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
}

// configDuration reads a time.Duration or returns a fallback.
func configDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(v.GetString(key))
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		logWarn("Invalid duration for %s: %v, using default %v", key, err, fallback)
		return fallback
	}
	return d
}

// configInt reads an int or returns a fallback.
func configInt(v *viper.Viper, key string, fallback int) int {
	val := strings.TrimSpace(v.GetString(key))
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		logWarn("Invalid int for %s: %v, using default %d", key, err, fallback)
		return fallback
	}
	return i
}
