package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath default is empty")
	}
	if cfg.APIPort == 0 {
		t.Error("APIPort default is zero")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NATIONCRAFT_DB", "/tmp/other.db")
	t.Setenv("NATIONCRAFT_API_PORT", "9191")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath = %q, want /tmp/other.db", cfg.DBPath)
	}
	if cfg.APIPort != 9191 {
		t.Errorf("APIPort = %d, want 9191", cfg.APIPort)
	}
}
