package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// developmentOrigins are always permitted outside production so local
// frontends work without extra configuration.
var developmentOrigins = []string{
	"http://localhost:8080",
	"http://localhost:5173",
}

type Config struct {
	Host     string `env:"API_HOST,  default=0.0.0.0"`
	Port     string `env:"API_PORT,  default=8004"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DatabaseURL has no default: when empty, persistence is disabled and
	// every data-dependent route fails per-request until corrected.
	DatabaseURL string `env:"DATABASE_URL"`

	// CORSOrigins is the comma-separated allow-list of browser origins.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:8080"`

	Supabase SupabaseConfig
}

// SupabaseConfig identifies the external identity provider whose tokens
// this service accepts.
type SupabaseConfig struct {
	URL            string `env:"SUPABASE_URL"`
	ServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins returns the configured CORS allow-list. Outside production
// the fixed local-development origins are always appended.
func (c *Config) AllowedOrigins() []string {
	origins := append([]string{}, c.CORSOrigins...)
	if c.IsProduction() {
		return origins
	}
	seen := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		seen[o] = struct{}{}
	}
	for _, o := range developmentOrigins {
		if _, ok := seen[o]; !ok {
			origins = append(origins, o)
		}
	}
	return origins
}
