package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config collects the process environment in one place. Every field has a
// working default so a bare `go run ./cmd/server` starts against localhost.
type Config struct {
	Port           string
	DatabaseURL    string
	BizinfoBaseURL string
	BizinfoAPIKey  string
	CacheTTL       time.Duration
	CORSOrigins    []string
}

func FromEnv() Config {
	cfg := Config{
		Port:           getenv("PORT", "8081"),
		DatabaseURL:    getenv("DATABASE_URL", ""),
		BizinfoBaseURL: getenv("BIZINFO_BASE_URL", ""),
		BizinfoAPIKey:  getenv("BIZINFO_API_KEY", ""),
		CacheTTL:       5 * time.Minute,
	}

	if raw := strings.TrimSpace(os.Getenv("CACHE_TTL_SECONDS")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
			cfg.CacheTTL = time.Duration(secs) * time.Second
		}
	}

	cfg.CORSOrigins = []string{"http://localhost:3000"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
