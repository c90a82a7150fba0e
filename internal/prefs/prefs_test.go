package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Tab != "" {
		t.Fatalf("Tab = %q, want empty", p.Tab)
	}
}

func TestLoad_MalformedFileDegradesToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	want := Prefs{Theme: "Nord", Tab: "stopwatch"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got := Load(path)
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_BlankThemeUsesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"  \"\ntab = \"countdown\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Tab != "countdown" {
		t.Fatalf("Tab = %q, want %q", p.Tab, "countdown")
	}
}
