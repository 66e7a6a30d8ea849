package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigName), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig, cfg); diff != "" {
		t.Errorf("default configuration mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMerge(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
checks = ["inherit", "-MustUseType"]

[mustuse]
policy = "permissive"
`)
	child := filepath.Join(root, "a", "b")
	writeConfig(t, child, `checks = ["inherit", "MustUseType"]`)
	sibling := filepath.Join(root, "c")
	writeConfig(t, sibling, `
[mustuse]
policy = "invocation"
`)

	tests := []struct {
		dir  string
		want Config
	}{
		{root, Config{Checks: []string{"all", "-MustUseType"}, MustUse: MustUseConfig{Policy: "permissive"}}},
		{child, Config{Checks: []string{"all", "-MustUseType", "MustUseType"}, MustUse: MustUseConfig{Policy: "permissive"}}},
		{filepath.Join(child, "d"), Config{Checks: []string{"all", "-MustUseType", "MustUseType"}, MustUse: MustUseConfig{Policy: "permissive"}}},
		{sibling, Config{Checks: []string{"all", "-MustUseType"}, MustUse: MustUseConfig{Policy: "invocation"}}},
	}
	for _, tt := range tests {
		got, err := Load(tt.dir)
		if err != nil {
			t.Fatalf("Load(%s): %s", tt.dir, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Load(%s) mismatch (-want +got):\n%s", tt.dir, diff)
		}
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "checks = [\n")
	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for malformed configuration")
	}
	if !strings.Contains(err.Error(), ConfigName) {
		t.Errorf("error %q does not name the configuration file", err)
	}
}

func TestNormalizeList(t *testing.T) {
	got := normalizeList([]string{"all", "all", "-MustUseType", "-MustUseType", "all"})
	want := []string{"all", "-MustUseType", "all"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("normalizeList mismatch (-want +got):\n%s", diff)
	}
}

func TestDir(t *testing.T) {
	if got := Dir(nil); got != "" {
		t.Errorf("Dir(nil) = %q, want empty string", got)
	}
	file := filepath.Join(string(filepath.Separator)+"src", "pkg", "a.go")
	if got, want := Dir([]string{file}), filepath.Dir(file); got != want {
		t.Errorf("Dir = %q, want %q", got, want)
	}
}
