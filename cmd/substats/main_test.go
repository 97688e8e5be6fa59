package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const helloSRT = "1\n00:00:00,000 --> 00:00:02,000\nhello world\n\n2\n00:00:02,000 --> 00:00:04,000\nhello world\n"

type cliTestEnv struct {
	binDir     string
	outDir     string
	configPath string
	source     string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	base := t.TempDir()
	env := &cliTestEnv{
		binDir:     filepath.Join(base, "bin"),
		outDir:     filepath.Join(base, "out"),
		configPath: filepath.Join(base, "substats.yaml"),
		source:     filepath.Join(base, "movie.srt"),
	}
	cfg := "output_dir: " + filepath.ToSlash(env.outDir) + "\nlog_level: error\nconfig_version: 1\n"
	if err := os.WriteFile(env.configPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(env.source, []byte(helloSRT), 0o644); err != nil {
		t.Fatal(err)
	}
	return env
}

func (e *cliTestEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(e.binDir)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.ExecuteContext(testContext(t))
	return out.String(), errOut.String(), err
}

func TestDefaultActionIsReport(t *testing.T) {
	env := setupCLITestEnv(t)

	viaRoot, _, err := env.run(t, env.source)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	viaReport, _, err := env.run(t, "report", env.source)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if viaRoot != viaReport {
		t.Error("root and report outputs differ")
	}
	if !strings.HasPrefix(viaRoot, "File generated by: substats\n") {
		t.Errorf("unexpected output:\n%s", viaRoot)
	}
	if !strings.Contains(viaRoot, "Number of subtitle lines: 2") {
		t.Errorf("general block missing:\n%s", viaRoot)
	}
}

func TestReportFlags(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "report", "--lang", "fr", "--export", env.source)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(out, "Nombre de sous-titres : 2") {
		t.Errorf("--lang fr ignored:\n%s", out)
	}
	exported := filepath.Join(env.outDir, "movie.Stats.txt")
	data, err := os.ReadFile(exported)
	if err != nil {
		t.Fatalf("export missing: %v", err)
	}
	if string(data) != out {
		t.Error("exported file differs from printed report")
	}

	explicit := filepath.Join(env.outDir, "custom.txt")
	if _, _, err := env.run(t, "report", "--export="+explicit, env.source); err != nil {
		t.Fatalf("report --export=path: %v", err)
	}
	if _, err := os.Stat(explicit); err != nil {
		t.Errorf("explicit export missing: %v", err)
	}
}

func TestReportInvalidStrategy(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := env.run(t, "report", "--strategy", "bytes", env.source); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestFrequencyCommandsPlain(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"words", []string{"words", env.source}, "2: world\n2: hello\n"},
		{"words top", []string{"words", "--top", "1", env.source}, "2: world\n"},
		{"lines", []string{"lines", "--plain", env.source}, "2: hello world\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := env.run(t, tt.args...)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if out != tt.want {
				t.Errorf("out = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestFrequencyCommandNothingFound(t *testing.T) {
	env := setupCLITestEnv(t)
	single := filepath.Join(filepath.Dir(env.source), "single.srt")
	if err := os.WriteFile(single, []byte("1\n00:00:00,000 --> 00:00:01,000\nhello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := env.run(t, "lines", single)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "Nothing found\n" {
		t.Errorf("out = %q", out)
	}
}

func TestTemplatesCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	dest := t.TempDir()

	out, _, err := env.run(t, "templates", "--dir", dest)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	for _, p := range []string{
		filepath.Join(dest, "templates", "stats_report.txt.tmpl"),
		filepath.Join(dest, "lang", "fr.yaml"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s not written: %v", p, err)
		}
		if !strings.Contains(out, p) {
			t.Errorf("output does not list %s", p)
		}
	}

	if !strings.Contains(out, "Templates chargés : stats_report.txt.tmpl\n") {
		t.Errorf("loaded templates not listed: %q", out)
	}

	out, _, err = env.run(t, "templates", "--dir", dest)
	if err != nil {
		t.Fatalf("templates (2): %v", err)
	}
	if !strings.Contains(out, "Aucun fichier écrit") {
		t.Errorf("second run output = %q", out)
	}

	out, _, err = env.run(t, "templates", "--dir", dest, "--force")
	if err != nil {
		t.Fatalf("templates --force: %v", err)
	}
	if !strings.Contains(out, "unchanged: templates/stats_report.txt.tmpl") {
		t.Errorf("force output = %q", out)
	}
}

func TestTemplatesCommandRejectsBrokenTemplate(t *testing.T) {
	env := setupCLITestEnv(t)
	dest := t.TempDir()
	broken := filepath.Join(dest, "templates", "stats_report.txt.tmpl")
	if err := os.MkdirAll(filepath.Dir(broken), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(broken, []byte("{{ .General "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := env.run(t, "templates", "--dir", dest); err == nil {
		t.Fatal("expected error for a template that does not parse")
	}
}

func TestRenderTable(t *testing.T) {
	got := renderTable([]string{"#", "Nombre", "Mot"}, [][]string{{"1", "12", "hello"}}, []columnAlignment{alignRight, alignRight, alignLeft})
	for _, want := range []string{"╭", "Nombre", "hello", "12"} {
		if !strings.Contains(got, want) {
			t.Errorf("table lacks %q:\n%s", want, got)
		}
	}
	// en-têtes affichés tels quels, sans passage en majuscules
	if strings.Contains(got, "NOMBRE") {
		t.Errorf("headers were upper-cased:\n%s", got)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Error("empty headers must render nothing")
	}
}

func TestWatchRejectsURL(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := env.run(t, "watch", "https://example.com/a.srt"); err == nil {
		t.Fatal("expected error for URL")
	}
}
