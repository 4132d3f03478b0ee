package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bioscape/crm/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if cfg.Search.ChunkSize != 40 {
		t.Fatalf("unexpected chunk size %d", cfg.Search.ChunkSize)
	}
	if cfg.Search.ChunkRowLimit != 1000 || cfg.Search.SingleRowLimit != 500 {
		t.Fatalf("unexpected row limits %+v", cfg.Search)
	}
	if cfg.Search.LogScanLimit != 50000 {
		t.Fatalf("unexpected log scan limit %d", cfg.Search.LogScanLimit)
	}
	if cfg.Supabase.Retries != 2 {
		t.Fatalf("unexpected retries %d", cfg.Supabase.Retries)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
addr: ":9090"
token_duration: 2h
supabase:
  base_url: "https://proj.supabase.co"
  api_key: "anon-key"
search:
  chunk_size: 25
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if cfg.TokenDuration != 2*time.Hour {
		t.Fatalf("unexpected token duration %v", cfg.TokenDuration)
	}
	if cfg.Supabase.BaseURL != "https://proj.supabase.co" {
		t.Fatalf("unexpected supabase url %q", cfg.Supabase.BaseURL)
	}
	if cfg.Search.ChunkSize != 25 {
		t.Fatalf("unexpected chunk size %d", cfg.Search.ChunkSize)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := config.LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
