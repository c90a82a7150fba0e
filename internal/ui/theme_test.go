package ui

import "testing"

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	th := GetTheme("NoSuchTheme")
	if th.Name != "Dracula" {
		t.Fatalf("fallback theme = %q, want Dracula", th.Name)
	}
}

func TestGetTheme_KnownNames(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
}

func TestNextTheme_CyclesThroughAll(t *testing.T) {
	seen := map[string]bool{}
	name := ThemeNames()[0]
	for range ThemeNames() {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != ThemeNames()[0] {
		t.Fatalf("cycle did not wrap: ended on %q", name)
	}
	if len(seen) != len(ThemeNames()) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(ThemeNames()))
	}
}

func TestNextTheme_UnknownResetsToFirst(t *testing.T) {
	if got := NextTheme("bogus"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(bogus) = %q, want %q", got, ThemeNames()[0])
	}
}
