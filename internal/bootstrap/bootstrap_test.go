package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

var testFS = fstest.MapFS{
	"substats.example.yaml":           {Data: []byte("language: en\n")},
	"templates/stats_report.txt.tmpl": {Data: []byte("{{ .General }}")},
	"lang/en.yaml":                    {Data: []byte("nothing_found: Nothing found\n")},
	"lang/fr.yaml":                    {Data: []byte("nothing_found: Rien trouvé\n")},
}

func TestEnsureConfigPresent(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "sub", "substats.yaml")

	created, err := EnsureConfigPresent(dst, testFS, "substats.example.yaml")
	if err != nil || !created {
		t.Fatalf("first call = %v, %v", created, err)
	}
	if err := os.WriteFile(dst, []byte("language: fr\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	created, err = EnsureConfigPresent(dst, testFS, "substats.example.yaml")
	if err != nil || created {
		t.Fatalf("second call = %v, %v", created, err)
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "language: fr\n" {
		t.Errorf("existing config overwritten: %q", data)
	}

	if _, err := EnsureConfigPresent(filepath.Join(t.TempDir(), "x.yaml"), testFS, "missing.yaml"); err == nil {
		t.Error("expected error for missing asset")
	}
}

func TestEnsureFilesPresent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	src := []string{"templates/stats_report.txt.tmpl"}

	written, err := EnsureFilesPresent(dir, testFS, src)
	if err != nil || len(written) != 1 {
		t.Fatalf("first call = %v, %v", written, err)
	}
	written, err = EnsureFilesPresent(dir, testFS, src)
	if err != nil || len(written) != 0 {
		t.Fatalf("second call = %v, %v", written, err)
	}
}

func TestExportDefaults(t *testing.T) {
	dir := t.TempDir()

	status, err := ExportDefaults(testFS, "lang", dir, false)
	if err != nil {
		t.Fatalf("ExportDefaults: %v", err)
	}
	if status["lang/en.yaml"] != StatusWritten || status["lang/fr.yaml"] != StatusWritten {
		t.Fatalf("status = %v", status)
	}

	frPath := filepath.Join(dir, "fr.yaml")
	if err := os.WriteFile(frPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		force bool
		fr    string
		en    string
	}{
		{"no force keeps user file", false, StatusSkipped, StatusUnchanged},
		{"force overwrites with backup", true, StatusOverwritten, StatusUnchanged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ExportDefaults(testFS, "lang", dir, tt.force)
			if err != nil {
				t.Fatalf("ExportDefaults: %v", err)
			}
			if status["lang/fr.yaml"] != tt.fr || status["lang/en.yaml"] != tt.en {
				t.Errorf("status = %v", status)
			}
		})
	}

	backups, _ := filepath.Glob(frPath + ".bak.*")
	if len(backups) != 1 {
		t.Errorf("backups = %v", backups)
	}
}
