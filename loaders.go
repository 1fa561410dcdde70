package datetime

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader retrieves the bundles used to seed a provider.
type Loader interface {
	Load() (Bundles, error)
}

// LoaderFunc adapters allow bare functions to implement Loader.
type LoaderFunc func() (Bundles, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (Bundles, error) {
	return fn()
}

// FileLoader reads locale bundle files. Each file maps locale codes to their
// canned patterns and skeleton catalogue; JSON and YAML are supported by
// extension. Later files layer over earlier ones: pattern bundles replace,
// skeleton entries append.
type FileLoader struct {
	paths []string
}

// NewFileLoader builds a loader over the given bundle files.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Bundles, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("datetime: no loader paths configured")
	}

	bundles := make(Bundles)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("datetime: read %s: %w", path, err)
		}

		file, err := decodeBundleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("datetime: decode %s: %w", path, err)
		}

		if err := mergeBundleFile(bundles, file); err != nil {
			return nil, fmt.Errorf("datetime: %s: %w", path, err)
		}
	}

	return bundles, nil
}

type bundleFile map[string]*localeBundleFile

type localeBundleFile struct {
	Patterns  *datePatternsFile   `json:"patterns" yaml:"patterns"`
	Skeletons []skeletonEntryFile `json:"skeletons" yaml:"skeletons"`
}

type datePatternsFile struct {
	Date               lengthPatternsFile `json:"date" yaml:"date"`
	TimeH11H12         lengthPatternsFile `json:"time_h11_h12" yaml:"time_h11_h12"`
	TimeH23H24         lengthPatternsFile `json:"time_h23_h24" yaml:"time_h23_h24"`
	PreferredHourCycle string             `json:"preferred_hour_cycle" yaml:"preferred_hour_cycle"`
	Combinations       lengthPatternsFile `json:"combinations" yaml:"combinations"`
}

type lengthPatternsFile struct {
	Full   string `json:"full" yaml:"full"`
	Long   string `json:"long" yaml:"long"`
	Medium string `json:"medium" yaml:"medium"`
	Short  string `json:"short" yaml:"short"`
}

type skeletonEntryFile struct {
	Skeleton string            `json:"skeleton" yaml:"skeleton"`
	Pattern  string            `json:"pattern" yaml:"pattern"`
	Variants map[string]string `json:"variants" yaml:"variants"`
}

func decodeBundleFile(path string, data []byte) (bundleFile, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var file bundleFile
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
	return file, nil
}

func mergeBundleFile(bundles Bundles, file bundleFile) error {
	for locale, src := range file {
		if src == nil {
			continue
		}
		code := normalizeLocale(locale)
		if code == "" {
			return errors.New("empty locale code")
		}

		dst := bundles[code]
		if dst == nil {
			dst = &LocaleData{}
			bundles[code] = dst
		}

		if src.Patterns != nil {
			patterns, err := src.Patterns.toBundle(code)
			if err != nil {
				return err
			}
			dst.Patterns = patterns
		}

		for _, entry := range src.Skeletons {
			converted, err := entry.toEntry(code)
			if err != nil {
				return err
			}
			if dst.Skeletons == nil {
				dst.Skeletons = &SkeletonPatterns{}
			}
			dst.Skeletons.Entries = append(dst.Skeletons.Entries, converted)
		}
	}
	return nil
}

func (f *datePatternsFile) toBundle(locale string) (*DatePatterns, error) {
	preferred := CoarseH23H24
	if f.PreferredHourCycle != "" {
		cycle, ok := ParseHourCycle(f.PreferredHourCycle)
		if !ok {
			return nil, fmt.Errorf("%s: unknown preferred_hour_cycle %q", locale, f.PreferredHourCycle)
		}
		preferred = cycle.Coarse()
	}

	return &DatePatterns{
		Date:               f.Date.toPatterns(),
		TimeH11H12:         f.TimeH11H12.toPatterns(),
		TimeH23H24:         f.TimeH23H24.toPatterns(),
		PreferredHourCycle: preferred,
		Combinations:       f.Combinations.toPatterns(),
	}, nil
}

func (f lengthPatternsFile) toPatterns() LengthPatterns {
	return LengthPatterns{
		Full:   f.Full,
		Long:   f.Long,
		Medium: f.Medium,
		Short:  f.Short,
	}
}

var knownPluralCategories = map[string]PluralCategory{
	"zero":  PluralZero,
	"one":   PluralOne,
	"two":   PluralTwo,
	"few":   PluralFew,
	"many":  PluralMany,
	"other": PluralOther,
}

func (f skeletonEntryFile) toEntry(locale string) (SkeletonEntry, error) {
	if f.Skeleton == "" {
		return SkeletonEntry{}, fmt.Errorf("%s: skeleton entry without a skeleton", locale)
	}
	fields, err := ParseSkeleton(f.Skeleton)
	if err != nil {
		return SkeletonEntry{}, fmt.Errorf("%s: %w", locale, err)
	}

	entry := SkeletonEntry{Fields: fields, Pattern: f.Pattern}
	if len(f.Variants) > 0 {
		entry.Variants = make(map[PluralCategory]string, len(f.Variants))
		for name, pattern := range f.Variants {
			category, ok := knownPluralCategories[name]
			if !ok {
				return SkeletonEntry{}, fmt.Errorf("%s: unknown plural category %q for skeleton %q", locale, name, f.Skeleton)
			}
			entry.Variants[category] = pattern
		}
	}
	if entry.Pattern == "" && len(entry.Variants) == 0 {
		return SkeletonEntry{}, fmt.Errorf("%s: skeleton %q has no pattern", locale, f.Skeleton)
	}
	return entry, nil
}
