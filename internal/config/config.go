package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr              string         `yaml:"addr"`
	APITimeout        time.Duration  `yaml:"timeout"`
	JWTSecret         string         `yaml:"jwt_secret"`
	TokenDuration     time.Duration  `yaml:"token_duration"`
	AdminEmail        string         `yaml:"admin_email"`
	AdminPasswordHash string         `yaml:"admin_password_hash"`
	DatabasePath      string         `yaml:"database_path"`
	Supabase          SupabaseConfig `yaml:"supabase"`
	Search            SearchConfig   `yaml:"search"`
}

type SupabaseConfig struct {
	BaseURL                 string        `yaml:"base_url"`
	APIKey                  string        `yaml:"api_key"`
	Timeout                 time.Duration `yaml:"timeout"`
	Retries                 int           `yaml:"retries"`
	Backoff                 time.Duration `yaml:"backoff"`
	CircuitFailureThreshold int           `yaml:"circuit_failure_threshold"`
	CircuitReset            time.Duration `yaml:"circuit_reset"`
}

// SearchConfig tunes the contact search engine around the limits of the
// PostgREST gateway. ChunkSize bounds how many company IDs go into a single
// in-list filter: the IDs are spelled out literally in the request URL, so
// chunk_size * uuid length must stay well under the gateway's URL limit.
type SearchConfig struct {
	ChunkSize      int `yaml:"chunk_size"`
	ChunkRowLimit  int `yaml:"chunk_row_limit"`
	SingleRowLimit int `yaml:"single_row_limit"`
	LogScanLimit   int `yaml:"log_scan_limit"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:              getEnv("CRM_ADDR", ":8080"),
		APITimeout:        15 * time.Second,
		JWTSecret:         getEnv("CRM_JWT_SECRET", "supersecretkey"),
		TokenDuration:     1 * time.Hour,
		AdminEmail:        getEnv("CRM_ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("CRM_ADMIN_PASSWORD_HASH", ""),
		DatabasePath:      getEnv("CRM_DATABASE_PATH", "crm.db"),
		Supabase: SupabaseConfig{
			BaseURL:                 getEnv("CRM_SUPABASE_URL", ""),
			APIKey:                  getEnv("CRM_SUPABASE_KEY", ""),
			Timeout:                 10 * time.Second,
			Retries:                 2,
			Backoff:                 250 * time.Millisecond,
			CircuitFailureThreshold: 5,
			CircuitReset:            30 * time.Second,
		},
		Search: SearchConfig{
			ChunkSize:      40,
			ChunkRowLimit:  1000,
			SingleRowLimit: 500,
			LogScanLimit:   50000,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
