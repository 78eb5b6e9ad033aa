package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type sampleConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func (c *sampleConfig) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "name: demo\nport: 9090\n")
	cfg := &sampleConfig{Port: 8080}
	if err := Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" || cfg.Port != 9090 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "from-env")
	path := writeConfig(t, "name: ${SAMPLE_NAME}\nport: 1\n")
	cfg := &sampleConfig{}
	if err := Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "from-env" {
		t.Errorf("name = %q", cfg.Name)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, "name: demo\nport: -1\n")
	if err := Load(path, &sampleConfig{}); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &sampleConfig{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadIfExists_MissingFileKeepsDefaults(t *testing.T) {
	cfg := &sampleConfig{Name: "default", Port: 8080}
	if err := LoadIfExists(filepath.Join(t.TempDir(), "nope.yaml"), cfg); err != nil {
		t.Fatalf("LoadIfExists: %v", err)
	}
	if cfg.Name != "default" || cfg.Port != 8080 {
		t.Errorf("cfg = %+v, want defaults untouched", cfg)
	}
}

func TestLoadIfExists_MissingFileStillValidates(t *testing.T) {
	if err := LoadIfExists(filepath.Join(t.TempDir(), "nope.yaml"), &sampleConfig{}); err == nil {
		t.Error("expected validation error for invalid defaults")
	}
}

func TestLoadIfExists_PresentFileLoads(t *testing.T) {
	path := writeConfig(t, "name: demo\nport: 7070\n")
	cfg := &sampleConfig{Port: 8080}
	if err := LoadIfExists(path, cfg); err != nil {
		t.Fatalf("LoadIfExists: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Port)
	}
}
