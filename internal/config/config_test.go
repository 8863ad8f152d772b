package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default Port 8080, got %d", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development env, got %s", cfg.Env)
	}
	if cfg.StatsSource != SourceFile || cfg.DirectorySource != SourceFile {
		t.Errorf("expected file sources, got %s/%s", cfg.StatsSource, cfg.DirectorySource)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("expected CacheTTL 5m, got %v", cfg.CacheTTL)
	}
	if cfg.LeaderboardSize != 10 {
		t.Errorf("expected LeaderboardSize 10, got %d", cfg.LeaderboardSize)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("unexpected AllowedOrigins %v", cfg.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STATS_SOURCE", "http")
	t.Setenv("STATS_BASE_URL", "https://mc.example.org/stats")
	t.Setenv("DIRECTORY_SOURCE", "postgres")
	t.Setenv("POSTGRES_URL", "postgres://mc:mc@localhost:5432/mc")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.org, ,https://b.example.org ")
	t.Setenv("FETCH_RATE_PER_SECOND", "2.5")
	t.Setenv("FETCH_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected Port 9090, got %d", cfg.Port)
	}
	if cfg.FetchRatePerSecond != 2.5 {
		t.Errorf("expected rate 2.5, got %v", cfg.FetchRatePerSecond)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", cfg.FetchTimeout)
	}
	want := []string{"https://a.example.org", "https://b.example.org"}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != want[0] || cfg.AllowedOrigins[1] != want[1] {
		t.Errorf("expected origins %v, got %v", want, cfg.AllowedOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"http stats without url", map[string]string{"STATS_SOURCE": "http"}, "STATS_BASE_URL"},
		{"http directory without url", map[string]string{"DIRECTORY_SOURCE": "http"}, "DIRECTORY_URL"},
		{"postgres without url", map[string]string{"DIRECTORY_SOURCE": "postgres"}, "POSTGRES_URL"},
		{"unknown source", map[string]string{"STATS_SOURCE": "ftp"}, "StatsSource"},
		{"bad port", map[string]string{"PORT": "70000"}, "Port"},
		{"bad duration", map[string]string{"CACHE_TTL": "soon"}, "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}
