package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSetDefaultValues(t *testing.T) {
	cfg := &Config{}
	cfg.setDefaultValues(true)

	if cfg.Model == "" {
		t.Error("expected a default model to be selected")
	}
	if cfg.DefaultLevel != "medium" {
		t.Errorf("DefaultLevel = %q, want medium", cfg.DefaultLevel)
	}
	if cfg.RequestTimeoutSecs == 0 || cfg.MaxTokens == 0 {
		t.Error("request limits should get defaults")
	}
	if cfg.ListenAddr == "" {
		t.Error("listen address should get a default")
	}
	if !cfg.SkipPrompt {
		t.Error("SkipPrompt should carry the caller's value")
	}
}

func TestSetDefaultValues_KeepsExisting(t *testing.T) {
	cfg := &Config{Model: "ollama:custom", DefaultLevel: "expert"}
	cfg.setDefaultValues(false)

	if cfg.Model != "ollama:custom" {
		t.Errorf("Model = %q, existing value must be kept", cfg.Model)
	}
	if cfg.DefaultLevel != "expert" {
		t.Errorf("DefaultLevel = %q, existing value must be kept", cfg.DefaultLevel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	raw, _ := json.Marshal(map[string]any{"model": "ollama:test", "track_changes": true})
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path, true)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Model != "ollama:test" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if !cfg.TrackChanges {
		t.Error("TrackChanges should be true")
	}
	if cfg.DefaultLevel != "medium" {
		t.Error("missing fields should be defaulted on load")
	}
}

func TestLoadConfigFile_TrackChangesDefaultsOn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	raw, _ := json.Marshal(map[string]any{"model": "ollama:test"})
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path, true)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if !cfg.TrackChanges {
		t.Error("a config without the track_changes key should default to tracking")
	}
}

func TestLoadConfigFile_TrackChangesExplicitOff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	raw, _ := json.Marshal(map[string]any{"track_changes": false})
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path, true)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.TrackChanges {
		t.Error("an explicit track_changes: false must be honored")
	}
}

func TestSaveToWorkspace_RoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := &Config{Model: "ollama:test", TrackChanges: true}
	cfg.setDefaultValues(true)
	if err := cfg.SaveToWorkspace(); err != nil {
		t.Fatalf("SaveToWorkspace: %v", err)
	}

	loaded, err := loadConfigFile(filepath.Join(".aitutor", "config.json"), true)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if loaded.Model != "ollama:test" {
		t.Errorf("Model = %q after round trip", loaded.Model)
	}
	if !loaded.TrackChanges {
		t.Error("TrackChanges should survive the round trip")
	}
}

func TestLoadConfigFile_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfigFile(path, true); err == nil {
		t.Error("expected an error for invalid config JSON")
	}
}
