package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCreatesDefaultFromEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	def := Default()
	if cfg.Language != def.Language || cfg.CountStrategy != def.CountStrategy || cfg.WideLines.FontSize != def.WideLines.FontSize {
		t.Errorf("embedded example differs from defaults: %+v", cfg)
	}
	if cfg.Export.Encoding != "utf-8" || cfg.Fetch.MaxBytes != 10_000_000 || cfg.WatchDebounce().Milliseconds() != 300 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	content := `language: fr
count_strategy: " NO_SPACE "
wide_lines:
  enabled: true
output_dir: ""
fetch:
  timeout_sec: -1
config_version: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "fr" || cfg.CountStrategy != "no_space" {
		t.Errorf("Language/CountStrategy = %q/%q", cfg.Language, cfg.CountStrategy)
	}
	if !cfg.WideLines.Enabled || cfg.WideLines.FontSize != 28 {
		t.Errorf("WideLines = %+v", cfg.WideLines)
	}
	if cfg.OutputDir != "." || cfg.Fetch.TimeoutSec != 15 {
		t.Errorf("normalization failed: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "language: [", "analyse"},
		{"bad strategy", "count_strategy: weird\n", "count_strategy"},
		{"bad font size", "wide_lines:\n  font_size: -3\n", "font_size"},
		{"bad encoding", "export:\n  encoding: klingon\n", "export.encoding"},
		{"bad log level", "log_level: loud\n", "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMigrationFromVersion0(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")
	content := "config_version: 0\nexport:\n  encoding: utf8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion || cfg.Export.Encoding != "utf-8" {
		t.Errorf("migrated cfg = %+v", cfg)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "c.yaml.bak.*"))
	if len(matches) != 1 {
		t.Errorf("backups = %v, want exactly one", matches)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "config_version: 1") {
		t.Errorf("migrated file not rewritten:\n%s", data)
	}
}
