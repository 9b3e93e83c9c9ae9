// Package config tests configuration loading.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at fresh temp dirs and
// clears TASK_CLI_* variables so host configuration cannot leak in.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, key := range []string{
		"TASK_CLI_FILE", "TASK_CLI_LOG_LEVEL", "TASK_CLI_LOG_FORMAT",
		"TASK_CLI_LOG_TIMESTAMPS", "TASK_CLI_LOG_CALLER",
	} {
		t.Setenv(key, "")
	}
	chdir(t, work)
	return home, work
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.StoreFile != DefaultStoreFile {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, DefaultStoreFile)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
	if cfg.LogTimestamps || cfg.LogCaller {
		t.Errorf("LogTimestamps/LogCaller: got %v/%v, want false/false", cfg.LogTimestamps, cfg.LogCaller)
	}
}

func TestLoadDefaultsResolveAgainstWorkDir(t *testing.T) {
	_, work := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(cfg.StoreFile) != DefaultStoreFile {
		t.Errorf("StoreFile: got %q, want base %q", cfg.StoreFile, DefaultStoreFile)
	}
	gotDir, _ := filepath.EvalSymlinks(filepath.Dir(cfg.StoreFile))
	wantDir, _ := filepath.EvalSymlinks(work)
	if gotDir != wantDir {
		t.Errorf("StoreFile dir: got %q, want %q", gotDir, wantDir)
	}
	if len(cfg.Files) != 0 {
		t.Errorf("Files: got %v, want none", cfg.Files)
	}
}

func TestLoadPriority(t *testing.T) {
	home, work := isolate(t)
	userFile := filepath.Join(home, ".task-cli", "config.toml")
	writeConfig(t, userFile, `
store_file = "/user/tasks.json"
log_level = "info"
log_format = "json"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreFile != "/user/tasks.json" {
		t.Errorf("user file: StoreFile got %q", cfg.StoreFile)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("user file: LogFormat got %q", cfg.LogFormat)
	}

	writeConfig(t, filepath.Join(work, "task-cli.toml"), `
store_file = "/project/tasks.json"
log_level = "debug"
`)
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreFile != "/project/tasks.json" {
		t.Errorf("project file: StoreFile got %q", cfg.StoreFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("project file: LogLevel got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("project file should keep user LogFormat, got %q", cfg.LogFormat)
	}
	if len(cfg.Files) != 2 {
		t.Errorf("Files: got %v, want user and project file", cfg.Files)
	}

	t.Setenv("TASK_CLI_FILE", "/env/tasks.json")
	t.Setenv("TASK_CLI_LOG_LEVEL", "error")
	t.Setenv("TASK_CLI_LOG_TIMESTAMPS", "yes")
	t.Setenv("TASK_CLI_LOG_CALLER", "1")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreFile != "/env/tasks.json" {
		t.Errorf("env: StoreFile got %q", cfg.StoreFile)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("env: LogLevel got %q", cfg.LogLevel)
	}
	if !cfg.LogTimestamps || !cfg.LogCaller {
		t.Errorf("env: LogTimestamps/LogCaller got %v/%v", cfg.LogTimestamps, cfg.LogCaller)
	}
}

func TestLoadXDGConfig(t *testing.T) {
	isolate(t)
	if osUserConfigDir() == "" {
		t.Skip("no OS config dir on this platform")
	}
	writeConfig(t, filepath.Join(osUserConfigDir(), "task-cli", "config.toml"), `store_file = "/xdg/tasks.json"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreFile != "/xdg/tasks.json" {
		t.Errorf("StoreFile: got %q, want /xdg/tasks.json", cfg.StoreFile)
	}
}

func TestLoadHiddenProjectConfig(t *testing.T) {
	_, work := isolate(t)
	writeConfig(t, filepath.Join(work, ".task-cli.toml"), `store_file = "/hidden/tasks.json"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreFile != "/hidden/tasks.json" {
		t.Errorf("StoreFile: got %q, want /hidden/tasks.json", cfg.StoreFile)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "malformed toml", content: "store_file = ", wantErr: "loading project config file"},
		{name: "unknown key", content: `todo_file = "x"`, wantErr: "unknown config key"},
		{name: "wrong type", content: `log_caller = "maybe"`, wantErr: "loading project config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, work := isolate(t)
			writeConfig(t, filepath.Join(work, "task-cli.toml"), tt.content)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("TASK_CLI_TEST_DIR", "/srv/tasks")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/tasks.json", filepath.Join(home, "tasks.json")},
		{"$TASK_CLI_TEST_DIR/tasks.json", "/srv/tasks/tasks.json"},
		{"/abs/tasks.json", "/abs/tasks.json"},
		{"relative.json", "relative.json"},
	}
	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBoolFromString(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE", " yes ", "on"} {
		if !boolFromString(s) {
			t.Errorf("boolFromString(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"0", "false", "no", "off", "maybe"} {
		if boolFromString(s) {
			t.Errorf("boolFromString(%q) = true, want false", s)
		}
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
