package datetime

import "testing"

func TestLocaleParentChain(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{locale: "en-US", want: []string{"en"}},
		{locale: "fr-CA", want: []string{"fr"}},
		{locale: "en", want: nil},
		{locale: "", want: nil},
		{locale: "bad!tag-one-two", want: []string{"bad!tag-one", "bad!tag"}},
	}

	for _, tc := range tests {
		got := localeParentChain(tc.locale)
		if len(got) != len(tc.want) {
			t.Fatalf("localeParentChain(%q) = %v, want %v", tc.locale, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("localeParentChain(%q)[%d] = %q, want %q", tc.locale, i, got[i], tc.want[i])
			}
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "en_US", want: "en-US"},
		{in: "  es  ", want: "es"},
		{in: "EN", want: "en"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		if got := normalizeLocale(tc.in); got != tc.want {
			t.Fatalf("normalizeLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
