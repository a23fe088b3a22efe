package project

import (
	"os"
	"path/filepath"
	"testing"

	"tscheck/internal/types"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "tscheck.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[check]
union_any_policy = "keep"
max_diagnostics = 50
jobs = 4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	policy, err := cfg.Check.UnionPolicy()
	if err != nil || policy != types.UnionKeepAny {
		t.Errorf("policy = %v, err = %v", policy, err)
	}
	if cfg.Check.MaxDiagnostics != 50 || cfg.Check.Jobs != 4 {
		t.Errorf("cfg = %+v", cfg.Check)
	}
}

func TestLoadConfigBadPolicy(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[check]
union_any_policy = "sometimes"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a bad policy value")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	policy, err := cfg.Check.UnionPolicy()
	if err != nil || policy != types.UnionAbsorbAny {
		t.Errorf("default policy = %v, err = %v", policy, err)
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[check]\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindConfig(nested)
	if err != nil || !ok {
		t.Fatalf("FindConfig: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %s, want under %s", path, root)
	}
}

func TestLoadFromDirFallsBack(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if cfg.Check.UnionAnyPolicy != "absorb" {
		t.Errorf("fallback config = %+v", cfg.Check)
	}
}
