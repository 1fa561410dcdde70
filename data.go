package datetime

// builtinBundles contains hardcoded pattern bundles for a handful of
// locales. In the future this could be generated from CLDR data or loaded
// from bundle files.
var builtinBundles = Bundles{
	"en": {
		Patterns: &DatePatterns{
			Date: LengthPatterns{
				Full:   "EEEE, MMMM d, y",
				Long:   "MMMM d, y",
				Medium: "MMM d, y",
				Short:  "M/d/yy",
			},
			TimeH11H12: LengthPatterns{
				Full:   "h:mm:ss a",
				Long:   "h:mm:ss a",
				Medium: "h:mm:ss a",
				Short:  "h:mm a",
			},
			TimeH23H24: LengthPatterns{
				Full:   "HH:mm:ss",
				Long:   "HH:mm:ss",
				Medium: "HH:mm:ss",
				Short:  "HH:mm",
			},
			PreferredHourCycle: CoarseH11H12,
			Combinations: LengthPatterns{
				Full:   "{1} 'at' {0}",
				Long:   "{1} 'at' {0}",
				Medium: "{1}, {0}",
				Short:  "{1}, {0}",
			},
		},
		Skeletons: &SkeletonPatterns{Entries: []SkeletonEntry{
			{Fields: mustSkeleton("y"), Pattern: "y"},
			{Fields: mustSkeleton("yM"), Pattern: "M/y"},
			{Fields: mustSkeleton("yMMM"), Pattern: "MMM y"},
			{Fields: mustSkeleton("yMd"), Pattern: "M/d/y"},
			{Fields: mustSkeleton("yMMMd"), Pattern: "MMM d, y"},
			{Fields: mustSkeleton("yMMMEd"), Pattern: "EEE, MMM d, y"},
			{Fields: mustSkeleton("MMMd"), Pattern: "MMM d"},
			{Fields: mustSkeleton("Md"), Pattern: "M/d"},
			{Fields: mustSkeleton("Ed"), Pattern: "d EEE"},
			{Fields: mustSkeleton("hm"), Pattern: "h:mm a"},
			{Fields: mustSkeleton("hms"), Pattern: "h:mm:ss a"},
			{Fields: mustSkeleton("Hm"), Pattern: "HH:mm"},
			{Fields: mustSkeleton("Hms"), Pattern: "HH:mm:ss"},
			{Fields: mustSkeleton("ms"), Pattern: "mm:ss"},
		}},
	},
	"es": {
		Patterns: &DatePatterns{
			Date: LengthPatterns{
				Full:   "EEEE, d 'de' MMMM 'de' y",
				Long:   "d 'de' MMMM 'de' y",
				Medium: "d MMM y",
				Short:  "d/M/yy",
			},
			TimeH11H12: LengthPatterns{
				Full:   "h:mm:ss a",
				Long:   "h:mm:ss a",
				Medium: "h:mm:ss a",
				Short:  "h:mm a",
			},
			TimeH23H24: LengthPatterns{
				Full:   "H:mm:ss",
				Long:   "H:mm:ss",
				Medium: "H:mm:ss",
				Short:  "H:mm",
			},
			PreferredHourCycle: CoarseH23H24,
			Combinations: LengthPatterns{
				Full:   "{1}, {0}",
				Long:   "{1}, {0}",
				Medium: "{1} {0}",
				Short:  "{1} {0}",
			},
		},
		Skeletons: &SkeletonPatterns{Entries: []SkeletonEntry{
			{Fields: mustSkeleton("y"), Pattern: "y"},
			{Fields: mustSkeleton("yM"), Pattern: "M/y"},
			{Fields: mustSkeleton("yMMM"), Pattern: "MMM y"},
			{Fields: mustSkeleton("yMd"), Pattern: "d/M/y"},
			{Fields: mustSkeleton("yMMMd"), Pattern: "d MMM y"},
			{Fields: mustSkeleton("MMMd"), Pattern: "d MMM"},
			{Fields: mustSkeleton("Md"), Pattern: "d/M"},
			{Fields: mustSkeleton("Hm"), Pattern: "H:mm"},
			{Fields: mustSkeleton("Hms"), Pattern: "H:mm:ss"},
			{Fields: mustSkeleton("hm"), Pattern: "h:mm a"},
			{Fields: mustSkeleton("ms"), Pattern: "mm:ss"},
		}},
	},
	"ja": {
		Patterns: &DatePatterns{
			Date: LengthPatterns{
				Full:   "y年M月d日EEEE",
				Long:   "y年M月d日",
				Medium: "y/MM/dd",
				Short:  "y/MM/dd",
			},
			TimeH11H12: LengthPatterns{
				Full:   "aK:mm:ss",
				Long:   "aK:mm:ss",
				Medium: "aK:mm:ss",
				Short:  "aK:mm",
			},
			TimeH23H24: LengthPatterns{
				Full:   "H:mm:ss",
				Long:   "H:mm:ss",
				Medium: "H:mm:ss",
				Short:  "H:mm",
			},
			PreferredHourCycle: CoarseH23H24,
			Combinations: LengthPatterns{
				Full:   "{1} {0}",
				Long:   "{1} {0}",
				Medium: "{1} {0}",
				Short:  "{1} {0}",
			},
		},
		Skeletons: &SkeletonPatterns{Entries: []SkeletonEntry{
			{Fields: mustSkeleton("y"), Pattern: "y年"},
			{Fields: mustSkeleton("yM"), Pattern: "y/M"},
			{Fields: mustSkeleton("yMd"), Pattern: "y/M/d"},
			{Fields: mustSkeleton("yMMMd"), Pattern: "y年M月d日"},
			{Fields: mustSkeleton("Md"), Pattern: "M/d"},
			{Fields: mustSkeleton("Hm"), Pattern: "H:mm"},
			{Fields: mustSkeleton("Hms"), Pattern: "H:mm:ss"},
		}},
	},
}

// BuiltinBundles returns a copy of the built-in locale bundles.
func BuiltinBundles() Bundles {
	out := make(Bundles, len(builtinBundles))
	for locale, data := range builtinBundles {
		out[locale] = data.clone()
	}
	return out
}

// DefaultProvider returns a provider over the built-in bundles.
func DefaultProvider() *StaticProvider {
	return NewStaticProvider(builtinBundles)
}

func mustSkeleton(src string) []Field {
	fields, err := ParseSkeleton(src)
	if err != nil {
		panic(err)
	}
	return fields
}
