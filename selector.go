package datetime

import "fmt"

// Options selects how a pattern is resolved: either canned length tiers or
// an open field list. Exactly one of the two bag types is in play per call.
type Options interface {
	isOptions()
}

// LengthOptions requests pre-baked patterns by tier. A bag with neither date
// nor time set resolves to no pattern and performs no data fetch.
type LengthOptions struct {
	Date        Length
	Time        Length
	Preferences Preferences
}

func (LengthOptions) isOptions() {}

// ComponentsOptions requests a pattern by individual fields. A zero width
// means the field is not requested.
type ComponentsOptions struct {
	Era       FieldWidth
	Year      FieldWidth
	Month     FieldWidth
	Day       FieldWidth
	Weekday   FieldWidth
	DayPeriod FieldWidth
	Hour      FieldWidth
	Minute    FieldWidth
	Second    FieldWidth

	Preferences Preferences
}

func (ComponentsOptions) isOptions() {}

// Fields converts the bag to the ordered request list the matcher consumes.
// The hour symbol follows the preference's cycle when one is set, the
// default 24-hour symbol otherwise; matching compares by kind, so the choice
// only shows in the output pattern.
func (c ComponentsOptions) Fields() []Field {
	hourSymbol := byte('H')
	if c.Preferences.HourCycle != HourCycleNone {
		hourSymbol = c.Preferences.HourCycle.Symbol()
	}

	specs := []struct {
		symbol byte
		width  FieldWidth
	}{
		{'G', c.Era},
		{'y', c.Year},
		{'M', c.Month},
		{'d', c.Day},
		{'E', c.Weekday},
		{'a', c.DayPeriod},
		{hourSymbol, c.Hour},
		{'m', c.Minute},
		{'s', c.Second},
	}

	var fields []Field
	for _, spec := range specs {
		if spec.width != WidthNone {
			fields = append(fields, Field{Symbol: spec.symbol, Width: spec.width})
		}
	}
	return fields
}

// preferRequestedFields controls whether matched patterns take their field
// widths from the request instead of the winning skeleton. The matcher keeps
// it as an explicit parameter; this is the value the resolver passes today.
const preferRequestedFields = false

// Resolve selects the appropriate pattern for the given options from the
// provider's data for the locale. A nil result with a nil error means no
// formatting was requested, or that the skeleton catalogue had no usable
// candidate; both are caller-visible "nothing to format" outcomes, not
// errors.
func Resolve(options Options, locale string, provider Provider) (*PatternPlurals, error) {
	selector := &patternSelector{provider: provider, locale: locale}
	return selector.patternsForOptions(options)
}

// patternSelector is the per-call resolution session. It holds the two lazy
// payload cells so every branch that needs a bundle shares one fetch. A
// session lives for a single Resolve call and must not be shared.
type patternSelector struct {
	provider Provider
	locale   string

	patterns  *DatePatterns
	skeletons *SkeletonPatterns
}

// datePatterns returns the canned-pattern bundle, fetching it on first use.
// A failed fetch stores nothing, so a later call may retry.
func (s *patternSelector) datePatterns() (*DatePatterns, error) {
	if s.patterns != nil {
		return s.patterns, nil
	}

	patterns, err := s.provider.DatePatterns(s.locale)
	if err != nil {
		return nil, err
	}
	s.patterns = patterns
	return s.patterns, nil
}

// skeletonPatterns returns the skeleton catalogue, fetching it on first use.
func (s *patternSelector) skeletonPatterns() (*SkeletonPatterns, error) {
	if s.skeletons != nil {
		return s.skeletons, nil
	}

	skeletons, err := s.provider.SkeletonPatterns(s.locale)
	if err != nil {
		return nil, err
	}
	s.skeletons = skeletons
	return s.skeletons, nil
}

func (s *patternSelector) patternsForOptions(options Options) (*PatternPlurals, error) {
	switch bag := options.(type) {
	case LengthOptions:
		pattern, err := s.patternForLengthBag(bag)
		if err != nil || pattern == nil {
			return nil, err
		}
		plurals := SinglePattern(*pattern)
		return &plurals, nil
	case ComponentsOptions:
		return s.patternsForComponentsBag(bag)
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("datetime: unsupported options type %T", options)
	}
}

func (s *patternSelector) patternForLengthBag(bag LengthOptions) (*Pattern, error) {
	switch {
	case bag.Date == LengthNone && bag.Time == LengthNone:
		return nil, nil
	case bag.Date == LengthNone:
		pattern, err := s.patternForTimeLength(bag.Time, bag.Preferences)
		if err != nil {
			return nil, err
		}
		return &pattern, nil
	case bag.Time == LengthNone:
		pattern, err := s.patternForDateLength(bag.Date)
		if err != nil {
			return nil, err
		}
		return &pattern, nil
	default:
		time, err := s.patternForTimeLength(bag.Time, bag.Preferences)
		if err != nil {
			return nil, err
		}
		date, err := s.patternForDateLength(bag.Date)
		if err != nil {
			return nil, err
		}
		combined, err := s.patternForDateTimeLength(bag.Date, date, time)
		if err != nil {
			return nil, err
		}
		return &combined, nil
	}
}

func (s *patternSelector) patternForDateLength(length Length) (Pattern, error) {
	patterns, err := s.datePatterns()
	if err != nil {
		return Pattern{}, err
	}

	src, err := patterns.Date.ForLength(length)
	if err != nil {
		return Pattern{}, err
	}
	return ParsePattern(src)
}

// patternForTimeLength resolves a time tier. The coarse group comes from the
// preference bag when it names a cycle, from the locale's preferred cycle
// otherwise; the fine cycle is then applied as a naive symbol rewrite.
func (s *patternSelector) patternForTimeLength(length Length, prefs Preferences) (Pattern, error) {
	patterns, err := s.datePatterns()
	if err != nil {
		return Pattern{}, err
	}

	coarse := prefs.HourCycle.Coarse()
	if coarse == 0 {
		coarse = patterns.PreferredHourCycle
	}

	src, err := patterns.timeForCoarse(coarse).ForLength(length)
	if err != nil {
		return Pattern{}, err
	}

	pattern, err := ParsePattern(src)
	if err != nil {
		return Pattern{}, err
	}

	applyHourCyclePreference(&pattern, prefs.HourCycle)
	return pattern, nil
}

// patternForDateTimeLength merges the two sub-patterns through the
// combination template keyed by the date length; the time length plays no
// part in template selection.
func (s *patternSelector) patternForDateTimeLength(dateLength Length, date, time Pattern) (Pattern, error) {
	patterns, err := s.datePatterns()
	if err != nil {
		return Pattern{}, err
	}

	template, err := patterns.Combinations.ForLength(dateLength)
	if err != nil {
		return Pattern{}, err
	}
	return ParseCombination(template, date, time)
}

func (s *patternSelector) patternsForComponentsBag(bag ComponentsOptions) (*PatternPlurals, error) {
	patterns, err := s.datePatterns()
	if err != nil {
		return nil, err
	}
	skeletons, err := s.skeletonPatterns()
	if err != nil {
		return nil, err
	}

	requested := bag.Fields()
	plurals, match, err := BestPatternForFields(skeletons, patterns.Combinations, requested, preferRequestedFields)
	if err != nil {
		return nil, err
	}
	if match == NoMatch {
		return nil, nil
	}

	plurals.eachPattern(func(p *Pattern) {
		applyHourCyclePreference(p, bag.Preferences.HourCycle)
	})
	return plurals, nil
}
