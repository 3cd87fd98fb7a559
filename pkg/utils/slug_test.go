package utils

import (
	"strings"
	"testing"
)

func TestGenerateSlugShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		slug := GenerateSlug()
		if len(slug) != SlugLength {
			t.Fatalf("expected %d chars, got %q", SlugLength, slug)
		}
		for _, r := range slug {
			if !strings.ContainsRune(slugChars, r) {
				t.Fatalf("unexpected character %q in slug %q", r, slug)
			}
		}
	}
}

func TestGenerateSlugVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateSlug()] = true
	}
	if len(seen) < 90 {
		t.Fatalf("slugs barely vary: %d unique of 100", len(seen))
	}
}
