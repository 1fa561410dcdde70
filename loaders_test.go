package datetime

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const enBundleYAML = `en:
  patterns:
    date:
      full: "EEEE, MMMM d, y"
      long: "MMMM d, y"
      medium: "MMM d, y"
      short: "M/d/yy"
    time_h11_h12:
      full: "h:mm:ss a"
      long: "h:mm:ss a"
      medium: "h:mm:ss a"
      short: "h:mm a"
    time_h23_h24:
      full: "HH:mm:ss"
      long: "HH:mm:ss"
      medium: "HH:mm:ss"
      short: "HH:mm"
    preferred_hour_cycle: h12
    combinations:
      full: "{1} 'at' {0}"
      long: "{1} 'at' {0}"
      medium: "{1}, {0}"
      short: "{1}, {0}"
  skeletons:
    - skeleton: yMMMd
      pattern: "MMM d, y"
    - skeleton: Hm
      pattern: "HH:mm"
`

const extraBundleJSON = `{
  "en": {
    "skeletons": [
      {"skeleton": "m", "variants": {"one": "m 'minute'", "other": "m 'minutes'"}}
    ]
  },
  "es": {
    "patterns": {
      "date": {"full": "EEEE, d 'de' MMMM 'de' y", "long": "d 'de' MMMM 'de' y", "medium": "d MMM y", "short": "d/M/yy"},
      "time_h11_h12": {"full": "h:mm:ss a", "long": "h:mm:ss a", "medium": "h:mm:ss a", "short": "h:mm a"},
      "time_h23_h24": {"full": "H:mm:ss", "long": "H:mm:ss", "medium": "H:mm:ss", "short": "H:mm"},
      "preferred_hour_cycle": "h23",
      "combinations": {"full": "{1}, {0}", "long": "{1}, {0}", "medium": "{1} {0}", "short": "{1} {0}"}
    }
  }
}`

func writeBundleFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "en.yaml")
	if err := os.WriteFile(yamlPath, []byte(enBundleYAML), 0o600); err != nil {
		t.Fatalf("write %s: %v", yamlPath, err)
	}
	jsonPath := filepath.Join(dir, "extra.json")
	if err := os.WriteFile(jsonPath, []byte(extraBundleJSON), 0o600); err != nil {
		t.Fatalf("write %s: %v", jsonPath, err)
	}
	return yamlPath, jsonPath
}

func TestFileLoaderYAML(t *testing.T) {
	yamlPath, _ := writeBundleFiles(t)

	bundles, err := NewFileLoader(yamlPath).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	data := bundles["en"]
	if data == nil || data.Patterns == nil {
		t.Fatal("en bundle missing")
	}
	if data.Patterns.PreferredHourCycle != CoarseH11H12 {
		t.Fatalf("preferred cycle = %v, want CoarseH11H12", data.Patterns.PreferredHourCycle)
	}
	if data.Patterns.Combinations.Full != "{1} 'at' {0}" {
		t.Fatalf("full combination = %q", data.Patterns.Combinations.Full)
	}
	if len(data.Skeletons.Entries) != 2 {
		t.Fatalf("skeleton entries = %d, want 2", len(data.Skeletons.Entries))
	}
	if len(data.Skeletons.Entries[0].Fields) != 3 {
		t.Fatalf("yMMMd fields = %v", data.Skeletons.Entries[0].Fields)
	}
}

func TestFileLoaderMergesFiles(t *testing.T) {
	yamlPath, jsonPath := writeBundleFiles(t)

	bundles, err := NewFileLoader(yamlPath, jsonPath).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	en := bundles["en"]
	if len(en.Skeletons.Entries) != 3 {
		t.Fatalf("en skeleton entries = %d, want appended total of 3", len(en.Skeletons.Entries))
	}
	variants := en.Skeletons.Entries[2].Variants
	if variants[PluralOne] != "m 'minute'" || variants[PluralOther] != "m 'minutes'" {
		t.Fatalf("variants = %v", variants)
	}

	es := bundles["es"]
	if es == nil || es.Patterns == nil {
		t.Fatal("es bundle missing")
	}
	if es.Patterns.PreferredHourCycle != CoarseH23H24 {
		t.Fatalf("es preferred cycle = %v", es.Patterns.PreferredHourCycle)
	}
}

func TestFileLoaderEndToEnd(t *testing.T) {
	yamlPath, jsonPath := writeBundleFiles(t)

	provider, err := NewStaticProviderFromLoader(NewFileLoader(yamlPath, jsonPath))
	if err != nil {
		t.Fatalf("NewStaticProviderFromLoader: %v", err)
	}

	plurals, err := Resolve(LengthOptions{Date: LengthMedium, Time: LengthShort}, "en", provider)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := plurals.Pattern.String(); got != "MMM d, y, h:mm a" {
		t.Fatalf("pattern = %q", got)
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{name: "bad.yaml", content: "en:\n  patterns:\n    preferred_hour_cycle: h13\n"},
		{name: "bad-skeleton.yaml", content: "en:\n  skeletons:\n    - skeleton: yQ\n      pattern: y\n"},
		{name: "no-pattern.yaml", content: "en:\n  skeletons:\n    - skeleton: y\n"},
		{name: "bad-category.yaml", content: "en:\n  skeletons:\n    - skeleton: y\n      variants: {dual: y}\n"},
	}

	for _, tc := range cases {
		path := filepath.Join(dir, tc.name)
		if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := NewFileLoader(path).Load(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}

	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("empty loader should error")
	}
	if _, err := NewFileLoader(filepath.Join(dir, "missing.yaml")).Load(); err == nil {
		t.Fatal("missing file should error")
	}
	unsupported := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(unsupported, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewFileLoader(unsupported).Load(); err == nil {
		t.Fatal("unsupported extension should error")
	}
}

func TestLoaderFunc(t *testing.T) {
	called := false
	loader := LoaderFunc(func() (Bundles, error) {
		called = true
		return Bundles{"en": {Patterns: testDatePatterns()}}, nil
	})

	provider, err := NewStaticProviderFromLoader(loader)
	if err != nil {
		t.Fatalf("NewStaticProviderFromLoader: %v", err)
	}
	if !called {
		t.Fatal("loader not invoked")
	}
	if _, err := provider.DatePatterns("en"); err != nil {
		t.Fatalf("DatePatterns: %v", err)
	}
}

func TestLoaderErrorPropagates(t *testing.T) {
	wantErr := errors.New("boom")
	_, err := NewStaticProviderFromLoader(LoaderFunc(func() (Bundles, error) {
		return nil, wantErr
	}))
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
