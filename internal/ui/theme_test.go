package ui

import "testing"

func TestGetTheme_KnownAndFallback(t *testing.T) {
	if got := GetTheme("Slate"); got.Name != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q", got.Name)
	}
	if got := GetTheme("NoSuchTheme"); got.Name != "Dracula" {
		t.Fatalf("GetTheme fallback = %q, want Dracula", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	start := themeOrder[0]
	current := start
	for range themeOrder {
		current = NextTheme(current)
	}
	if current != start {
		t.Fatalf("cycling all themes ended on %q, want %q", current, start)
	}
	if got := NextTheme("NoSuchTheme"); got != themeOrder[0] {
		t.Fatalf("NextTheme of unknown = %q, want first", got)
	}
}

func TestThemes_CoverAllCategories(t *testing.T) {
	categories := []string{"fruits", "vegetables", "dairy", "bakery", "meals", "other"}
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, c := range categories {
			if theme.CategoryColors[c] == "" {
				t.Errorf("theme %s missing color for category %s", name, c)
			}
		}
	}
}
