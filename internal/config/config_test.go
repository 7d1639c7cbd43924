package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}

	def := config.Default()
	if cfg.MonitorInterval != def.MonitorInterval {
		t.Errorf("MonitorInterval = %d, want default %d", cfg.MonitorInterval, def.MonitorInterval)
	}
	if cfg.DatabasePath == "" {
		t.Error("DatabasePath is empty, want a default path")
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := config.Default()
	cfg.DatabasePath = "/tmp/história.db"
	cfg.MonitorInterval = 250

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.DatabasePath != cfg.DatabasePath {
		t.Errorf("DatabasePath = %q, want %q", loaded.DatabasePath, cfg.DatabasePath)
	}
	if loaded.MonitorInterval != 250 {
		t.Errorf("MonitorInterval = %d, want 250", loaded.MonitorInterval)
	}
}

func TestLoadValidatesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"database_path": "", "monitor_interval_ms": 0, "max_item_size_bytes": -1}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MonitorInterval <= 0 {
		t.Errorf("MonitorInterval = %d, want a positive default", cfg.MonitorInterval)
	}
	if cfg.MaxItemSize <= 0 {
		t.Errorf("MaxItemSize = %d, want a positive default", cfg.MaxItemSize)
	}
	if cfg.DatabasePath == "" {
		t.Error("DatabasePath is empty, want a default path")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Error("Load on invalid JSON: expected an error")
	}
}
