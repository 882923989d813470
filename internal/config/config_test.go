package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
endpoints:
  - name: primary
    url: https://eth.example.com
  - name: local
    url: http://localhost:8545
defaults:
  timeout: 10s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.Endpoints) != 2 {
		t.Fatalf("endpoints = %d, want 2", len(cfg.Endpoints))
	}
	if cfg.Endpoints[0].Name != "primary" {
		t.Errorf("first endpoint name = %q", cfg.Endpoints[0].Name)
	}
	if time.Duration(cfg.Defaults.Timeout) != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", time.Duration(cfg.Defaults.Timeout))
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_RPC_URL", "https://mainnet.example.com/v3/key")

	path := writeConfig(t, `
endpoints:
  - name: env
    url: ${TEST_RPC_URL}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Endpoints[0].URL != "https://mainnet.example.com/v3/key" {
		t.Errorf("url = %q, env var not expanded", cfg.Endpoints[0].URL)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"no_endpoints",
			`endpoints: []`,
			"at least one endpoint",
		},
		{
			"missing_name",
			"endpoints:\n  - url: https://eth.example.com\n",
			"name is required",
		},
		{
			"missing_url",
			"endpoints:\n  - name: broken\n",
			"url is required",
		},
		{
			"bad_scheme",
			"endpoints:\n  - name: ws\n    url: ws://eth.example.com\n",
			"invalid url scheme",
		},
		{
			"bad_duration",
			"endpoints:\n  - name: a\n    url: https://eth.example.com\ndefaults:\n  timeout: soon\n",
			"invalid duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "RPC_URL=https://eth.example.com\n" +
		"# comment line\n" +
		"\n" +
		"QUOTED='https://quoted.example.com'\n" +
		"EXPORTED=https://file.example.com\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// t.Setenv registers restoration; Unsetenv then guarantees the keys
	// start absent so the file values apply.
	for _, key := range []string{"RPC_URL", "QUOTED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("EXPORTED", "https://shell.example.com")
	// t.Chdir needs go1.24; this toolchain is older, so chdir manually.
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	LoadEnv()

	if got := os.Getenv("RPC_URL"); got != "https://eth.example.com" {
		t.Errorf("RPC_URL = %q", got)
	}
	if got := os.Getenv("QUOTED"); got != "https://quoted.example.com" {
		t.Errorf("QUOTED = %q, quotes not stripped", got)
	}
	if got := os.Getenv("EXPORTED"); got != "https://shell.example.com" {
		t.Errorf("EXPORTED = %q, exported value should win over the file", got)
	}
}
