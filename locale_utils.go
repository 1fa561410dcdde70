package datetime

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale canonicalizes a locale code for map lookups: trimmed,
// underscores to hyphens, region uppercased via the language package when it
// parses, lowercased base otherwise.
func normalizeLocale(locale string) string {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return ""
	}
	trimmed = strings.ReplaceAll(trimmed, "_", "-")

	if tag, err := language.Parse(trimmed); err == nil {
		value := tag.String()
		if value != "" && value != "und" {
			return value
		}
	}
	return strings.ToLower(trimmed)
}

// localeParentChain lists a locale's ancestors, nearest first, following the
// CLDR parent relation when the code parses. Codes the language package
// rejects degrade to dropping subtags textually, so hand-rolled lookup keys
// still walk toward their base.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	if tag, err := language.Parse(locale); err == nil {
		var chain []string
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			chain = append(chain, value)
		}
		return chain
	}

	var chain []string
	for current := locale; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		chain = append(chain, current)
	}
	return chain
}
