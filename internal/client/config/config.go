package config

import "time"

// Config holds runtime settings for the Atelier CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - DatabasePath: sqlite file keeping the durable credential record.
//   - Locale: BCP 47 tag controlling currency rendering on the dashboard.
//   - RequestTimeout: per-request timeout of the HTTP client.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	Locale         string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "atelier.db"
	c.Locale = "pt-BR"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
