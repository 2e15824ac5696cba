package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demonbane.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Game.MapWidth != 50 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Missing file must not be an error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level, got %q", cfg.Logging.Level)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
port = "9090"

[game]
map_width = 64
map_height = 48
seed = 42

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.Server.Port)
	}
	// Не указанное в файле остается по умолчанию.
	if cfg.Server.SaveDir != "saves" {
		t.Errorf("Expected default save dir, got %q", cfg.Server.SaveDir)
	}
	if cfg.Game.MapWidth != 64 || cfg.Game.MapHeight != 48 || cfg.Game.Seed != 42 {
		t.Errorf("Unexpected game config: %+v", cfg.Game)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoad_RejectsTinyMap(t *testing.T) {
	path := writeConfig(t, `
[game]
map_width = 20
map_height = 20
`)

	if _, err := Load(path); err == nil {
		t.Error("Map smaller than 30x30 must be rejected")
	}
}

func TestLoad_RejectsBrokenToml(t *testing.T) {
	path := writeConfig(t, `[server`)

	if _, err := Load(path); err == nil {
		t.Error("Malformed TOML must be an error")
	}
}
