package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hammamikhairi/forkify/internal/forkify"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(envMap(map[string]string{EnvDataDir: dir}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != forkify.DefaultBaseURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, forkify.DefaultBaseURL)
	}
	if cfg.DBPath != filepath.Join(dir, "forkify.db") {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.HTTPTimeout != 20*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(envMap(map[string]string{
		EnvDataDir: t.TempDir(),
		EnvAPIURL:  "http://localhost:9000/api",
		EnvAPIKey:  "k",
		EnvDB:      "/tmp/x.db",
		EnvRecipe:  "#47746",
		EnvTimeout: "5",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://localhost:9000/api" || cfg.APIKey != "k" || cfg.DBPath != "/tmp/x.db" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Recipe != "#47746" {
		t.Fatalf("Recipe = %q", cfg.Recipe)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadBadTimeout(t *testing.T) {
	for _, v := range []string{"-3", "abc", "0s"} {
		_, err := Load(envMap(map[string]string{EnvDataDir: t.TempDir(), EnvTimeout: v}))
		if err == nil {
			t.Errorf("timeout %q: expected error", v)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{APIURL: "https://x.io/api", HTTPTimeout: time.Second, DBPath: "a.db"}, false},
		{"bad url", Config{APIURL: "not a url", HTTPTimeout: time.Second, DBPath: "a.db"}, true},
		{"zero timeout", Config{APIURL: "https://x.io", DBPath: "a.db"}, true},
		{"no db", Config{APIURL: "https://x.io", HTTPTimeout: time.Second}, true},
		{"no db but memory", Config{APIURL: "https://x.io", HTTPTimeout: time.Second, NoPersist: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
