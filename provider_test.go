package datetime

import (
	"errors"
	"testing"
)

func TestStaticProviderLookup(t *testing.T) {
	provider := NewStaticProvider(Bundles{
		"en": {Patterns: testDatePatterns()},
	})

	patterns, err := provider.DatePatterns("en")
	if err != nil {
		t.Fatalf("DatePatterns: %v", err)
	}
	if patterns.Date.Medium != "MMM d, y" {
		t.Fatalf("medium date = %q", patterns.Date.Medium)
	}

	if _, err := provider.DatePatterns("fr"); !errors.Is(err, ErrMissingLocale) {
		t.Fatalf("err = %v, want ErrMissingLocale", err)
	}
}

func TestStaticProviderFallbackChain(t *testing.T) {
	provider := NewStaticProvider(Bundles{
		"en": {Patterns: testDatePatterns()},
	})

	// regional variant falls back to its parent
	patterns, err := provider.DatePatterns("en-US")
	if err != nil {
		t.Fatalf("DatePatterns(en-US): %v", err)
	}
	if patterns.Date.Short != "M/d/yy" {
		t.Fatalf("short date = %q", patterns.Date.Short)
	}
}

func TestStaticProviderFallbackOverride(t *testing.T) {
	provider := NewStaticProvider(Bundles{
		"es": {Patterns: testDatePatterns()},
	})

	resolver := NewChainFallbackResolver()
	resolver.SetFallback("pt", "es")
	provider.WithFallbackResolver(resolver)

	if _, err := provider.DatePatterns("pt"); err != nil {
		t.Fatalf("DatePatterns(pt): %v", err)
	}
}

func TestStaticProviderCopiesInput(t *testing.T) {
	source := Bundles{
		"en": {
			Patterns: testDatePatterns(),
			Skeletons: &SkeletonPatterns{Entries: []SkeletonEntry{
				{Fields: mustSkeleton("yMMMd"), Pattern: "MMM d, y"},
			}},
		},
	}

	provider := NewStaticProvider(source)

	source["en"].Patterns.Date.Medium = "changed"
	source["en"].Skeletons.Entries[0].Pattern = "changed"

	patterns, err := provider.DatePatterns("en")
	if err != nil {
		t.Fatalf("DatePatterns: %v", err)
	}
	if patterns.Date.Medium != "MMM d, y" {
		t.Fatalf("snapshot mutated: %q", patterns.Date.Medium)
	}

	skeletons, err := provider.SkeletonPatterns("en")
	if err != nil {
		t.Fatalf("SkeletonPatterns: %v", err)
	}
	if skeletons.Entries[0].Pattern != "MMM d, y" {
		t.Fatalf("skeleton snapshot mutated: %q", skeletons.Entries[0].Pattern)
	}
}

func TestStaticProviderMissingSkeletonsIsEmptyCatalogue(t *testing.T) {
	provider := NewStaticProvider(Bundles{
		"en": {Patterns: testDatePatterns()},
	})

	skeletons, err := provider.SkeletonPatterns("en")
	if err != nil {
		t.Fatalf("SkeletonPatterns: %v", err)
	}
	if len(skeletons.Entries) != 0 {
		t.Fatalf("entries = %d, want empty catalogue", len(skeletons.Entries))
	}
}

func TestStaticProviderLocales(t *testing.T) {
	provider := NewStaticProvider(Bundles{
		"es": {Patterns: testDatePatterns()},
		"en": {Patterns: testDatePatterns()},
	})

	locales := provider.Locales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "es" {
		t.Fatalf("Locales() = %v", locales)
	}
}

func TestChainFallbackResolver(t *testing.T) {
	resolver := NewChainFallbackResolver()
	resolver.SetFallback("fr-CA", "fr-FR")

	chain := resolver.Resolve("fr-CA")
	if len(chain) < 2 || chain[0] != "fr-FR" || chain[1] != "fr" {
		t.Fatalf("Resolve(fr-CA) = %v", chain)
	}

	if chain := resolver.Resolve("en"); len(chain) != 0 {
		t.Fatalf("Resolve(en) = %v, want empty", chain)
	}
}

func TestBuiltinBundles(t *testing.T) {
	provider := DefaultProvider()

	for _, locale := range []string{"en", "es", "ja"} {
		patterns, err := provider.DatePatterns(locale)
		if err != nil {
			t.Fatalf("DatePatterns(%s): %v", locale, err)
		}
		for _, tier := range []string{patterns.Date.Full, patterns.Date.Long, patterns.Date.Medium, patterns.Date.Short} {
			if _, err := ParsePattern(tier); err != nil {
				t.Fatalf("%s date pattern %q: %v", locale, tier, err)
			}
		}
		skeletons, err := provider.SkeletonPatterns(locale)
		if err != nil {
			t.Fatalf("SkeletonPatterns(%s): %v", locale, err)
		}
		for _, entry := range skeletons.Entries {
			if _, err := ParsePattern(entry.Pattern); err != nil {
				t.Fatalf("%s skeleton %q: %v", locale, entry.Pattern, err)
			}
		}
	}
}
