package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AZURE_STORAGE_ACCOUNT", "testaccount")
	t.Setenv("AZURE_STORAGE_KEY", "dGVzdGtleQ==")
	t.Setenv("GEMINI_API_KEY", "test-key")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.ServerAddress() != "0.0.0.0:8080" {
		t.Errorf("ServerAddress() = %q, want 0.0.0.0:8080", cfg.ServerAddress())
	}
	if cfg.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout = %s, want 60s", cfg.RequestTimeout)
	}
	if cfg.PhotoContainer != "chemical-photos" {
		t.Errorf("PhotoContainer = %q, want chemical-photos", cfg.PhotoContainer)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q, want gemini-2.0-flash", cfg.GeminiModel)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "90s")
	t.Setenv("PHOTO_CONTAINER", "label-photos")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Errorf("RequestTimeout = %s, want 90s", cfg.RequestTimeout)
	}
	if cfg.PhotoContainer != "label-photos" {
		t.Errorf("PhotoContainer = %q, want label-photos", cfg.PhotoContainer)
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "Bad port",
			env:  map[string]string{"PORT": "not-a-port"},
		},
		{
			name: "Missing storage credentials",
			env:  map[string]string{"AZURE_STORAGE_ACCOUNT": ""},
		},
		{
			name: "Missing model API key",
			env:  map[string]string{"GEMINI_API_KEY": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadFromEnv(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
