package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel string
	// SlowestN is the default length of the ranked slowest-request list;
	// the --top flag overrides it per invocation.
	SlowestN int
	// NoColor disables ANSI styling in the console report. Honors the
	// conventional NO_COLOR variable.
	NoColor bool
}

func FromEnv() Config {
	cfg := Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		SlowestN: getEnvInt("SLOWEST_N", 10),
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
