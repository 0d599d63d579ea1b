package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Engine.Step != DefaultStep {
		t.Errorf("Step = %v, want %v", cfg.Engine.Step, DefaultStep)
	}
	if cfg.Engine.ShortestPathFactor != 0.8 {
		t.Errorf("ShortestPathFactor = %v, want 0.8", cfg.Engine.ShortestPathFactor)
	}
}

func TestLoadConfigOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	override := "engine:\n  step: 0.25\n"
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Engine.Step != 0.25 {
		t.Errorf("Step = %v, want override 0.25", cfg.Engine.Step)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want default :8080", cfg.Server.Addr)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	dir := t.TempDir()

	bad := map[string]string{
		"step.yaml":   "engine:\n  step: -0.1\n",
		"factor.yaml": "engine:\n  shortest_path_factor: 1.5\n",
		"plans.yaml":  "data:\n  plans_dir: \"\"\n",
	}
	for name, body := range bad {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: expected validation error, got none", name)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}
