package core

import (
	"context"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if err := (Config{BaseURL: "   "}).Validate(); err == nil {
		t.Fatalf("expected blank base url rejected")
	}
	if err := (Config{BaseURL: "/api/v1", RequestTimeout: -time.Second}).Validate(); err == nil {
		t.Fatalf("expected negative timeout rejected")
	}
}

func TestDefaultConfig_UsesVersionedBasePath(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseURL != DefaultBasePath {
		t.Fatalf("expected %q base path, got %q", DefaultBasePath, cfg.BaseURL)
	}
	if cfg.BaseURL != "/api/v1" {
		t.Fatalf("expected versioned api prefix, got %q", cfg.BaseURL)
	}
}

func TestEnvRawConfigLoader_ReadsOverride(t *testing.T) {
	loader := EnvRawConfigLoader{Lookup: func(key string) (string, bool) {
		if key == EnvBaseURL {
			return " https://fraud.example.com/api/v1 ", true
		}
		return "", false
	}}
	raw, err := loader.LoadRaw(context.Background())
	if err != nil {
		t.Fatalf("load raw: %v", err)
	}
	if raw["base_url"] != "https://fraud.example.com/api/v1" {
		t.Fatalf("expected trimmed override, got %v", raw)
	}
}

func TestEnvRawConfigLoader_IgnoresUnsetAndBlank(t *testing.T) {
	loader := EnvRawConfigLoader{Lookup: func(string) (string, bool) { return "", false }}
	raw, err := loader.LoadRaw(context.Background())
	if err != nil {
		t.Fatalf("load raw: %v", err)
	}
	if _, ok := raw["base_url"]; ok {
		t.Fatalf("expected no base_url without the env var, got %v", raw)
	}

	loader = EnvRawConfigLoader{Lookup: func(string) (string, bool) { return "   ", true }}
	raw, err = loader.LoadRaw(context.Background())
	if err != nil {
		t.Fatalf("load raw: %v", err)
	}
	if _, ok := raw["base_url"]; ok {
		t.Fatalf("expected blank env value ignored, got %v", raw)
	}
}

func TestCfgxConfigProvider_AppliesDefaultsUnderRaw(t *testing.T) {
	provider := NewCfgxConfigProvider(staticRawConfigLoader{Values: map[string]any{
		"base_url": "https://fraud.example.com/api/v1",
	}})
	cfg, err := provider.Load(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "https://fraud.example.com/api/v1" {
		t.Fatalf("expected raw value to win, got %q", cfg.BaseURL)
	}
	if cfg.UserAgent != DefaultConfig().UserAgent {
		t.Fatalf("expected default user agent preserved, got %q", cfg.UserAgent)
	}
}

func TestGoOptionsResolver_RuntimeWinsOverEnvironment(t *testing.T) {
	defaults := DefaultConfig()
	loaded := defaults
	loaded.BaseURL = "https://staging.example.com/api/v1"
	runtime := Config{BaseURL: "https://prod.example.com/api/v1"}

	resolved, err := GoOptionsResolver{}.Resolve(defaults, loaded, runtime)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.BaseURL != "https://prod.example.com/api/v1" {
		t.Fatalf("expected runtime override to win, got %q", resolved.BaseURL)
	}
	if resolved.UserAgent != defaults.UserAgent {
		t.Fatalf("expected default user agent carried through, got %q", resolved.UserAgent)
	}
}

func TestGoOptionsResolver_LoadedWinsOverDefaults(t *testing.T) {
	defaults := DefaultConfig()
	loaded := defaults
	loaded.BaseURL = "https://env.example.com/api/v1"

	resolved, err := GoOptionsResolver{}.Resolve(defaults, loaded, Config{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.BaseURL != "https://env.example.com/api/v1" {
		t.Fatalf("expected loaded configuration to win over defaults, got %q", resolved.BaseURL)
	}
}
