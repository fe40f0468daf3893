package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste-com-pelo-menos-32-caracteres")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() erro inesperado = %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %s, want 9090", cfg.HTTPPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info (default)", cfg.LogLevel)
	}
}

func TestLoadSegredoCurto(t *testing.T) {
	t.Setenv("JWT_SECRET", "curto")

	if _, err := Load(); err == nil {
		t.Fatal("Load() deveria falhar com JWT_SECRET curto")
	}
}
