package datetime

// Config captures resolver setup.
type Config struct {
	DefaultLocale string
	Provider      Provider
	Loader        Loader
	Fallbacks     FallbackResolver
}

// Option mutates Config during construction.
type Option func(*Config) error

// WithDefaultLocale sets the locale used when a resolution call names none.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithProvider supplies the pattern data provider directly.
func WithProvider(provider Provider) Option {
	return func(c *Config) error {
		c.Provider = provider
		return nil
	}
}

// WithLoader supplies a loader used to build a static provider.
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithBundleFiles is shorthand for WithLoader(NewFileLoader(paths...)).
func WithBundleFiles(paths ...string) Option {
	return func(c *Config) error {
		c.Loader = NewFileLoader(paths...)
		return nil
	}
}

// WithFallbackResolver sets the locale fallback chain a loader-built
// provider uses on lookup misses.
func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Fallbacks = resolver
		return nil
	}
}

// Resolver is the reusable front over Resolve: it fixes the provider and a
// default locale once and spins up a fresh resolution session per call.
type Resolver struct {
	provider      Provider
	defaultLocale string
}

// NewResolver builds a Resolver via supplied options. Without a provider or
// loader it falls back to the built-in bundles.
func NewResolver(opts ...Option) (*Resolver, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Provider == nil {
		if cfg.Loader != nil {
			provider, err := NewStaticProviderFromLoader(cfg.Loader)
			if err != nil {
				return nil, err
			}
			if cfg.Fallbacks != nil {
				provider.WithFallbackResolver(cfg.Fallbacks)
			}
			cfg.Provider = provider
		} else {
			provider := DefaultProvider()
			if cfg.Fallbacks != nil {
				provider.WithFallbackResolver(cfg.Fallbacks)
			}
			cfg.Provider = provider
		}
	}

	if cfg.DefaultLocale == "" {
		if locales := cfg.Provider.Locales(); len(locales) > 0 {
			cfg.DefaultLocale = locales[0]
		}
	}

	return &Resolver{
		provider:      cfg.Provider,
		defaultLocale: cfg.DefaultLocale,
	}, nil
}

// Provider exposes the configured data provider.
func (r *Resolver) Provider() Provider {
	if r == nil {
		return nil
	}
	return r.provider
}

// Resolve runs one resolution session for the options against the first
// non-empty locale, or the default locale when none is given.
func (r *Resolver) Resolve(options Options, locales ...string) (*PatternPlurals, error) {
	locale := r.defaultLocale
	for _, candidate := range locales {
		if candidate != "" {
			locale = candidate
			break
		}
	}
	return Resolve(options, locale, r.provider)
}
