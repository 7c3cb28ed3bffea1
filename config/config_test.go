package config

import (
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	if cfg.Server.Port != ":8080" {
		t.Errorf("default port = %q, want :8080", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "claude" {
		t.Errorf("default provider = %q, want claude", cfg.LLM.Provider)
	}
	if cfg.LLM.RequestTimeout != 60*time.Second {
		t.Errorf("default timeout = %v, want 60s", cfg.LLM.RequestTimeout)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: ":9090"},
		LLM:    LLMConfig{Provider: "openai", RequestTimeout: 5 * time.Second},
	}
	applyDefaults(&cfg)

	if cfg.Server.Port != ":9090" || cfg.LLM.Provider != "openai" || cfg.LLM.RequestTimeout != 5*time.Second {
		t.Errorf("explicit values were overwritten: %+v", cfg)
	}
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("SERVER_PORT", ":9000")

	cfg := Config{
		DB:     DBConfig{Host: "localhost", Port: 5432},
		LLM:    LLMConfig{Provider: "claude"},
		Server: ServerConfig{Port: ":8080"},
	}
	overrideFromEnv(&cfg)

	if cfg.DB.Host != "db.internal" || cfg.DB.Port != 5433 {
		t.Errorf("db override = %q:%d", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.Redis.Addr != "redis.internal:6379" {
		t.Errorf("redis override = %q", cfg.Redis.Addr)
	}
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("provider override = %q", cfg.LLM.Provider)
	}
	if cfg.Server.Port != ":9000" {
		t.Errorf("port override = %q", cfg.Server.Port)
	}
}

func TestOverrideFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg := Config{DB: DBConfig{Port: 5432}}
	overrideFromEnv(&cfg)

	if cfg.DB.Port != 5432 {
		t.Errorf("db port = %d, want 5432 kept", cfg.DB.Port)
	}
}
