package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"JDEX_ROOT", "JDEX_INDEX", "JDEX_JOURNAL", "JDEX_FUZZY_THRESHOLD"} {
		t.Setenv(key, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantRoot := filepath.Join(home, "Documents", "jd")
	if cfg.Root != wantRoot {
		t.Errorf("expected root %s, got %s", wantRoot, cfg.Root)
	}
	if cfg.IndexPath != filepath.Join(wantRoot, DefaultIndexName) {
		t.Errorf("expected index under root, got %s", cfg.IndexPath)
	}
	if cfg.FuzzyThreshold != DefaultFuzzyThreshold {
		t.Errorf("expected threshold %g, got %g", DefaultFuzzyThreshold, cfg.FuzzyThreshold)
	}
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
root = "/from/file"
index = "/from/file/index.json"
fuzzy_threshold = 0.25
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(path, Overrides{})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Root != "/from/file" || cfg.IndexPath != "/from/file/index.json" || cfg.FuzzyThreshold != 0.25 {
			t.Errorf("unexpected config %+v", cfg)
		}
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("JDEX_ROOT", "/from/env")
		t.Setenv("JDEX_FUZZY_THRESHOLD", "0.7")
		cfg, err := Load(path, Overrides{})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Root != "/from/env" || cfg.FuzzyThreshold != 0.7 {
			t.Errorf("unexpected config %+v", cfg)
		}
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("JDEX_ROOT", "/from/env")
		cfg, err := Load(path, Overrides{Root: "/from/flag", IndexPath: "/from/flag/i.json"})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Root != "/from/flag" || cfg.IndexPath != "/from/flag/i.json" {
			t.Errorf("unexpected config %+v", cfg)
		}
	})
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml"), Overrides{}); err == nil {
		t.Error("expected error for explicit missing config file")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("fuzzy_threshold = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, Overrides{}); err == nil {
		t.Error("expected error for out of range threshold")
	}

	t.Setenv("JDEX_FUZZY_THRESHOLD", "lots")
	if _, err := Load("", Overrides{}); err == nil {
		t.Error("expected error for unparsable env threshold")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/jd")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "jd") {
		t.Errorf("expected %s, got %s", filepath.Join(home, "jd"), got)
	}

	got, err = ExpandPath("~other/jd")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
}
