package datetime

import (
	"fmt"
	"sort"
)

// LengthPatterns holds one stored pattern string per canned tier.
type LengthPatterns struct {
	Full   string
	Long   string
	Medium string
	Short  string
}

// ForLength returns the stored pattern string for the tier. There is no
// cross-tier fallback: the tier must exist in the bundle.
func (lp LengthPatterns) ForLength(length Length) (string, error) {
	switch length {
	case LengthFull:
		return lp.Full, nil
	case LengthLong:
		return lp.Long, nil
	case LengthMedium:
		return lp.Medium, nil
	case LengthShort:
		return lp.Short, nil
	default:
		return "", fmt.Errorf("datetime: no pattern tier %s", length)
	}
}

// DatePatterns is the locale bundle of canned patterns: four date tiers, the
// two coarse hour-cycle groups of time tiers, the locale's preferred group,
// and the per-tier date+time combination templates. Immutable once loaded.
type DatePatterns struct {
	Date               LengthPatterns
	TimeH11H12         LengthPatterns
	TimeH23H24         LengthPatterns
	PreferredHourCycle CoarseHourCycle
	Combinations       LengthPatterns
}

// timeForCoarse picks the time tier group for a coarse hour cycle.
func (dp *DatePatterns) timeForCoarse(coarse CoarseHourCycle) LengthPatterns {
	if coarse == CoarseH23H24 {
		return dp.TimeH23H24
	}
	return dp.TimeH11H12
}

// SkeletonEntry is one catalogue row: a field-set signature and the stored
// pattern it resolves to, either a single string or plural variants.
type SkeletonEntry struct {
	Fields   []Field
	Pattern  string
	Variants map[PluralCategory]string
}

// SkeletonPatterns is the locale's skeleton catalogue. Entries keep a fixed
// order so repeated matches over identical inputs pick the same winner.
type SkeletonPatterns struct {
	Entries []SkeletonEntry
}

// LocaleData groups the two bundles a locale can carry.
type LocaleData struct {
	Patterns  *DatePatterns
	Skeletons *SkeletonPatterns
}

// Bundles maps locale codes to their data.
type Bundles map[string]*LocaleData

// Provider serves locale-keyed pattern bundles. Implementations must be safe
// for concurrent read-only use by independent resolution sessions; the
// engine never fabricates bundle content, every table comes from here.
type Provider interface {
	// DatePatterns returns the canned-pattern bundle for the locale.
	DatePatterns(locale string) (*DatePatterns, error)
	// SkeletonPatterns returns the skeleton catalogue for the locale.
	SkeletonPatterns(locale string) (*SkeletonPatterns, error)
	// Locales returns the locales the provider has data for.
	Locales() []string
}

// StaticProvider is an in-memory provider, read only after construction.
// Lookups for a locale without data walk the fallback chain before giving
// up with ErrMissingLocale.
type StaticProvider struct {
	bundles  Bundles
	locales  []string
	resolver FallbackResolver
}

var _ Provider = &StaticProvider{}

// NewStaticProvider builds an immutable snapshot from the given bundles.
func NewStaticProvider(data Bundles) *StaticProvider {
	provider := &StaticProvider{
		bundles:  make(Bundles, len(data)),
		resolver: NewChainFallbackResolver(),
	}

	for locale, bundle := range data {
		if bundle == nil {
			continue
		}
		code := normalizeLocale(locale)
		if code == "" {
			continue
		}
		provider.bundles[code] = bundle.clone()
		provider.locales = append(provider.locales, code)
	}

	sort.Strings(provider.locales)
	return provider
}

// NewStaticProviderFromLoader hydrates a StaticProvider using the loader.
func NewStaticProviderFromLoader(loader Loader) (*StaticProvider, error) {
	if loader == nil {
		return NewStaticProvider(nil), nil
	}

	bundles, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStaticProvider(bundles), nil
}

// WithFallbackResolver replaces the locale fallback chain used on misses.
func (p *StaticProvider) WithFallbackResolver(resolver FallbackResolver) *StaticProvider {
	if p == nil || resolver == nil {
		return p
	}
	p.resolver = resolver
	return p
}

func (p *StaticProvider) DatePatterns(locale string) (*DatePatterns, error) {
	data, err := p.lookup(locale)
	if err != nil {
		return nil, err
	}
	if data.Patterns == nil {
		return nil, fmt.Errorf("%w: %q has no date patterns", ErrMissingLocale, locale)
	}
	return data.Patterns, nil
}

func (p *StaticProvider) SkeletonPatterns(locale string) (*SkeletonPatterns, error) {
	data, err := p.lookup(locale)
	if err != nil {
		return nil, err
	}
	if data.Skeletons == nil {
		// a locale may ship canned patterns without a skeleton catalogue
		return &SkeletonPatterns{}, nil
	}
	return data.Skeletons, nil
}

// Locales returns a copy of the locale codes with data.
func (p *StaticProvider) Locales() []string {
	if p == nil || len(p.locales) == 0 {
		return nil
	}
	out := make([]string, len(p.locales))
	copy(out, p.locales)
	return out
}

func (p *StaticProvider) lookup(locale string) (*LocaleData, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingLocale, locale)
	}

	code := normalizeLocale(locale)
	if data, ok := p.bundles[code]; ok {
		return data, nil
	}

	if p.resolver != nil {
		for _, candidate := range p.resolver.Resolve(code) {
			if data, ok := p.bundles[candidate]; ok {
				return data, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrMissingLocale, locale)
}

func (d *LocaleData) clone() *LocaleData {
	if d == nil {
		return nil
	}

	out := &LocaleData{}
	if d.Patterns != nil {
		patterns := *d.Patterns
		out.Patterns = &patterns
	}
	if d.Skeletons != nil {
		out.Skeletons = d.Skeletons.clone()
	}
	return out
}

func (s *SkeletonPatterns) clone() *SkeletonPatterns {
	if s == nil {
		return nil
	}

	out := &SkeletonPatterns{}
	if len(s.Entries) > 0 {
		out.Entries = make([]SkeletonEntry, len(s.Entries))
		for i, entry := range s.Entries {
			out.Entries[i] = entry.clone()
		}
	}
	return out
}

func (e SkeletonEntry) clone() SkeletonEntry {
	out := SkeletonEntry{Pattern: e.Pattern}
	if len(e.Fields) > 0 {
		out.Fields = append([]Field(nil), e.Fields...)
	}
	if len(e.Variants) > 0 {
		out.Variants = make(map[PluralCategory]string, len(e.Variants))
		for category, pattern := range e.Variants {
			out.Variants[category] = pattern
		}
	}
	return out
}
