package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shoebox/internal/config"
	"shoebox/internal/testsupport"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nintake_dir = %q\narchive_dir = %q\nlog_dir = %q\n\n[import]\nworkers = %d\ncheck_corruption = %v\n",
		cfg.Paths.IntakeDir,
		cfg.Paths.ArchiveDir,
		cfg.Paths.LogDir,
		cfg.Import.Workers,
		cfg.Import.CheckCorruption,
	)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	out, _, err = runCLI(t, []string{"config", "show"}, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "intake_dir")
	requireContains(t, out, "check_corruption")
}

func TestImportCommandArchivesFile(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)

	mtime := time.Date(2021, time.July, 4, 18, 0, 0, 0, time.Local)
	testsupport.WriteFileMtime(t, filepath.Join(cfg.Paths.IntakeDir, "a.jpg"), []byte("photo bytes"), mtime)

	out, _, err := runCLI(t, []string{"import"}, configPath)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	requireContains(t, out, "Archived")

	// The stubbed exiftool yields no metadata, so the capture time comes
	// from the file's modification time and the camera is unknown.
	dest := filepath.Join(cfg.Paths.ArchiveDir, "photos", "unknown camera", "2021", "07", "2021-07-04 18-00-00.jpg")
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("expected archived file at %s: %v", dest, err)
	}
}

func TestIndexStatsCommand(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)

	out, _, err := runCLI(t, []string{"index", "stats"}, configPath)
	if err != nil {
		t.Fatalf("index stats: %v", err)
	}
	requireContains(t, out, "Records")
	requireContains(t, out, "Integrity")
}

func TestDoctorCommand(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)

	out, _, err := runCLI(t, []string{"doctor"}, configPath)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "exiftool")
	requireContains(t, out, "ffprobe")
	requireContains(t, out, "[OK]")
}
