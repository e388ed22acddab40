package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8000"},
		Cache: CacheConfig{
			Type:   "memory",
			Memory: MemoryConfig{DefaultExpiration: 3600},
		},
		Replicate: ReplicateConfig{
			Token: "r8_test",
			Model: "black-forest-labs/flux-schnell",
		},
		RateLimit: RateLimitConfig{Requests: 1, WindowSeconds: 10},
		History:   HistoryConfig{Backend: "sqlite", SQLitePath: "history.db"},
		Embed: EmbedConfig{
			TargetOrigin: "https://events.example.com",
			PayloadField: "dataUrl",
		},
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %q, want memory", cfg.Cache.Type)
	}
	if cfg.Cache.TTLSeconds != 86400 {
		t.Errorf("Cache.TTLSeconds = %d, want 86400", cfg.Cache.TTLSeconds)
	}
	if cfg.RateLimit.Requests != 1 || cfg.RateLimit.WindowSeconds != 10 {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Embed.PayloadField != "dataUrl" {
		t.Errorf("Embed.PayloadField = %q, want dataUrl", cfg.Embed.PayloadField)
	}
	if !cfg.Embed.RequireEmbedded || !cfg.Embed.RequireDataURI {
		t.Errorf("embed checks should default on: %+v", cfg.Embed)
	}
	if cfg.Embed.Selector != "img.previewImg" {
		t.Errorf("Embed.Selector = %q", cfg.Embed.Selector)
	}
}

func TestLoadFromEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("ALLOWED_ORIGIN", "https://events.example.com")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("CACHE_TTL_SECONDS", "600")
	t.Setenv("REPLICATE_API_TOKEN", "r8_test")
	t.Setenv("REPLICATE_MODEL", "owner/model")
	t.Setenv("RATE_LIMIT_SECONDS", "30")
	t.Setenv("EMBED_TARGET_ORIGIN", "https://events.example.com")
	t.Setenv("EMBED_PAYLOAD_FIELD", "src")
	t.Setenv("EMBED_REQUIRE_EMBEDDED", "false")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.Server.AllowedOrigin != "https://events.example.com" {
		t.Errorf("AllowedOrigin = %q", cfg.Server.AllowedOrigin)
	}
	if cfg.Cache.Type != "redis" || cfg.Cache.TTLSeconds != 600 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Replicate.Token != "r8_test" || cfg.Replicate.Model != "owner/model" {
		t.Errorf("Replicate = %+v", cfg.Replicate)
	}
	if cfg.RateLimit.WindowSeconds != 30 {
		t.Errorf("WindowSeconds = %d", cfg.RateLimit.WindowSeconds)
	}
	if cfg.Embed.PayloadField != "src" {
		t.Errorf("PayloadField = %q", cfg.Embed.PayloadField)
	}
	if cfg.Embed.RequireEmbedded {
		t.Error("RequireEmbedded should be overridable to false")
	}
}

func TestLoadFromEnv_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "not-a-number")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Cache.TTLSeconds != 86400 {
		t.Errorf("TTLSeconds = %d, want default on bad input", cfg.Cache.TTLSeconds)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
		},
		{
			name:    "unknown cache type",
			mutate:  func(c *Config) { c.Cache.Type = "memcached" },
			wantErr: true,
		},
		{
			name:    "sqlite cache type",
			mutate:  func(c *Config) { c.Cache.Type = "sqlite"; c.Cache.SQLite.Path = "cache.db" },
			wantErr: false,
		},
		{
			name:    "redis cache without address",
			mutate:  func(c *Config) { c.Cache.Type = "redis"; c.Cache.Redis.Address = "" },
			wantErr: true,
		},
		{
			name:    "missing replicate token",
			mutate:  func(c *Config) { c.Replicate.Token = "" },
			wantErr: true,
		},
		{
			name:    "model without owner",
			mutate:  func(c *Config) { c.Replicate.Model = "flux-schnell" },
			wantErr: true,
		},
		{
			name:    "zero rate limit window",
			mutate:  func(c *Config) { c.RateLimit.WindowSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "unknown history backend",
			mutate:  func(c *Config) { c.History.Backend = "postgres" },
			wantErr: true,
		},
		{
			name:    "history disabled",
			mutate:  func(c *Config) { c.History.Backend = "none" },
			wantErr: false,
		},
		{
			name:    "wildcard embed origin",
			mutate:  func(c *Config) { c.Embed.TargetOrigin = "*" },
			wantErr: true,
		},
		{
			name:    "unknown payload field",
			mutate:  func(c *Config) { c.Embed.PayloadField = "href" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
