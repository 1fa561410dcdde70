package datetime

// FallbackResolver resolves fallback locale chains for bundle lookups.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// ChainFallbackResolver walks explicit overrides first, then the locale's
// parent chain ("es-MX" falls back to "es").
type ChainFallbackResolver struct {
	overrides map[string][]string
}

// NewChainFallbackResolver builds a resolver with no overrides.
func NewChainFallbackResolver() *ChainFallbackResolver {
	return &ChainFallbackResolver{}
}

// SetFallback registers an explicit fallback list consulted before the
// parent chain.
func (r *ChainFallbackResolver) SetFallback(locale string, fallbacks ...string) {
	if r == nil || locale == "" {
		return
	}
	if r.overrides == nil {
		r.overrides = make(map[string][]string)
	}
	code := normalizeLocale(locale)
	normalized := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if fb := normalizeLocale(fallback); fb != "" && fb != code {
			normalized = append(normalized, fb)
		}
	}
	r.overrides[code] = normalized
}

func (r *ChainFallbackResolver) Resolve(locale string) []string {
	code := normalizeLocale(locale)
	if code == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{code: {}}

	add := func(candidate string) {
		if _, ok := seen[candidate]; ok || candidate == "" {
			return
		}
		seen[candidate] = struct{}{}
		chain = append(chain, candidate)
	}

	if r != nil {
		for _, fallback := range r.overrides[code] {
			add(fallback)
		}
	}
	for _, parent := range localeParentChain(code) {
		add(parent)
	}
	return chain
}
