package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "tti") {
		t.Errorf("GetConfigDir() = %v, should contain 'tti'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" && !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}

	if reg.Preferences.MaxRatio != 0 {
		t.Errorf("NewRegistry().Preferences.MaxRatio = %v, want 0 (unconstrained)", reg.Preferences.MaxRatio)
	}

	if !reg.Preferences.Preview {
		t.Error("NewRegistry().Preferences.Preview should be true by default")
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	reg := NewRegistry()
	reg.Preferences.MaxRatio = 2.5
	reg.Preferences.Portrait = true
	reg.Preferences.Preview = false

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}

	if loaded.Preferences.MaxRatio != 2.5 {
		t.Errorf("loaded MaxRatio = %v, want 2.5", loaded.Preferences.MaxRatio)
	}
	if !loaded.Preferences.Portrait {
		t.Error("loaded Portrait = false, want true")
	}
	if loaded.Preferences.Preview {
		t.Error("loaded Preview = true, want false")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	reg, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}

	if reg.Version != 1 {
		t.Errorf("missing file should yield defaults, got version %d", reg.Version)
	}
	if !reg.Preferences.Preview {
		t.Error("missing file should yield Preview=true default")
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "tti")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("version: 99\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := ReloadRegistry(); err == nil {
		t.Error("expected error for unsupported config version")
	}
}
