package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Atlas.RootStructureID != 997 {
		t.Errorf("expected root structure 997, got %d", cfg.Atlas.RootStructureID)
	}
	if cfg.Atlas.Name != "Allen Mouse CCF Atlas" {
		t.Errorf("unexpected document name %q", cfg.Atlas.Name)
	}
	if len(cfg.Resolutions) != 4 {
		t.Errorf("expected 4 resolutions, got %v", cfg.Resolutions)
	}
	if cfg.Groups.Enabled {
		t.Error("groups must be disabled by default")
	}
	if cfg.Output.Indent != 2 {
		t.Errorf("expected indent 2, got %d", cfg.Output.Indent)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing ontology URL",
			modify:  func(c *Config) { c.Endpoints.OntologyQueryURL = "" },
			wantErr: true,
		},
		{
			name:    "mesh base not a URL",
			modify:  func(c *Config) { c.Endpoints.MeshBaseURL = "not a url" },
			wantErr: true,
		},
		{
			name:    "no resolutions",
			modify:  func(c *Config) { c.Resolutions = nil },
			wantErr: true,
		},
		{
			name:    "negative resolution",
			modify:  func(c *Config) { c.Resolutions = []int{10, -25} },
			wantErr: true,
		},
		{
			name:    "duplicate resolution",
			modify:  func(c *Config) { c.Resolutions = []int{10, 10} },
			wantErr: true,
		},
		{
			name:    "zero root structure",
			modify:  func(c *Config) { c.Atlas.RootStructureID = 0 },
			wantErr: true,
		},
		{
			name:    "missing document name",
			modify:  func(c *Config) { c.Atlas.Name = "" },
			wantErr: true,
		},
		{
			name:    "zero fetch timeout",
			modify:  func(c *Config) { c.Fetch.Timeout = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
endpoints:
  mesh_base_url: "http://mirror.test/structure_meshes/"
resolutions: [25, 50]
groups:
  enabled: true
fetch:
  timeout: 30s
output:
  indent: 4
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Endpoints.MeshBaseURL != "http://mirror.test/structure_meshes/" {
		t.Errorf("mesh base = %q", cfg.Endpoints.MeshBaseURL)
	}
	// Untouched fields keep their defaults.
	if cfg.Atlas.RootStructureID != 997 {
		t.Errorf("root structure = %d, want default 997", cfg.Atlas.RootStructureID)
	}
	if len(cfg.Resolutions) != 2 || cfg.Resolutions[0] != 25 {
		t.Errorf("resolutions = %v, want [25 50]", cfg.Resolutions)
	}
	if !cfg.Groups.Enabled {
		t.Error("groups.enabled not loaded")
	}
	if cfg.Fetch.Timeout != 30*time.Second {
		t.Errorf("fetch timeout = %v, want 30s", cfg.Fetch.Timeout)
	}
	if cfg.Output.Indent != 4 {
		t.Errorf("indent = %d, want 4", cfg.Output.Indent)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{}
	other.Endpoints.OntologyQueryURL = "http://mirror.test/query.csv"
	other.Atlas.RootStructureID = 8
	other.Resolutions = []int{50}
	other.Output.Path = "atlas.json"

	base.Merge(other)

	if base.Endpoints.OntologyQueryURL != "http://mirror.test/query.csv" {
		t.Errorf("ontology URL not merged: %q", base.Endpoints.OntologyQueryURL)
	}
	// Fields the other config leaves zero keep the base value.
	if base.Endpoints.MeshBaseURL == "" {
		t.Error("mesh base lost in merge")
	}
	if base.Atlas.RootStructureID != 8 {
		t.Errorf("root structure = %d, want 8", base.Atlas.RootStructureID)
	}
	if len(base.Resolutions) != 1 || base.Resolutions[0] != 50 {
		t.Errorf("resolutions = %v, want [50]", base.Resolutions)
	}
	if base.Output.Path != "atlas.json" {
		t.Errorf("output path = %q", base.Output.Path)
	}
	if base.Atlas.Name != "Allen Mouse CCF Atlas" {
		t.Errorf("document name lost in merge: %q", base.Atlas.Name)
	}

	base.Merge(nil) // must be a no-op
	if base.Atlas.RootStructureID != 8 {
		t.Error("Merge(nil) changed the config")
	}
}

func TestBuilderSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Groups.Enabled = true
	cfg.Resolutions = []int{25}

	s := cfg.BuilderSettings()
	if s.MeshBaseURL != cfg.Endpoints.MeshBaseURL {
		t.Errorf("mesh base = %q", s.MeshBaseURL)
	}
	if s.DownloadBaseURL != cfg.Endpoints.DownloadBaseURL {
		t.Errorf("download base = %q", s.DownloadBaseURL)
	}
	if s.RootStructureID != 997 {
		t.Errorf("root = %d", s.RootStructureID)
	}
	if !s.EnableGroups {
		t.Error("groups flag not carried over")
	}
	if len(s.Resolutions) != 1 || s.Resolutions[0] != 25 {
		t.Errorf("resolutions = %v", s.Resolutions)
	}
	if s.DocumentName != cfg.Atlas.Name {
		t.Errorf("document name = %q", s.DocumentName)
	}
}
