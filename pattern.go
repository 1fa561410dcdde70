package datetime

import (
	"fmt"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PatternItem is one token of a pattern: either a literal run or a field.
// A field item has a non-zero Symbol; a literal item carries text only.
type PatternItem struct {
	Literal string
	Field   Field
}

// IsField reports whether the item is a field token.
func (it PatternItem) IsField() bool {
	return !it.Field.IsZero()
}

// Pattern is an ordered sequence of literal and field tokens, fully
// self-contained and renderable on its own.
type Pattern struct {
	Items []PatternItem
}

// IsEmpty reports whether the pattern has no tokens.
func (p Pattern) IsEmpty() bool {
	return len(p.Items) == 0
}

// ParsePattern tokenizes a stored pattern string. ASCII letters are reserved
// as field symbols and must appear as runs of one to six repeats; text
// containing letters must be single-quoted, with two consecutive quotes
// encoding a literal apostrophe. Unknown field symbols and unterminated
// quotes are syntax errors.
func ParsePattern(src string) (Pattern, error) {
	var items []PatternItem
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			items = append(items, PatternItem{Literal: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(src)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			i++
			before := literal.Len()
			closed := false
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						literal.WriteByte('\'')
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				literal.WriteRune(runes[i])
				i++
			}
			if !closed {
				return Pattern{}, fmt.Errorf("%w: unterminated quote in %q", ErrPatternSyntax, src)
			}
			// '' outside a quoted run encodes a bare apostrophe
			if literal.Len() == before {
				literal.WriteByte('\'')
			}
		case isASCIILetter(r):
			symbol := byte(r)
			if _, ok := fieldKinds[symbol]; !ok {
				return Pattern{}, fmt.Errorf("%w: unsupported field symbol %q in %q", ErrPatternSyntax, string(r), src)
			}
			count := 0
			for i < len(runes) && runes[i] == r {
				count++
				i++
			}
			if count > int(WidthSix) {
				return Pattern{}, fmt.Errorf("%w: field %q repeated %d times in %q", ErrPatternSyntax, string(r), count, src)
			}
			flush()
			items = append(items, PatternItem{Field: Field{Symbol: symbol, Width: FieldWidth(count)}})
		default:
			literal.WriteRune(r)
			i++
		}
	}
	flush()

	return Pattern{Items: items}, nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// String serializes the pattern back to its textual form. Literal runs that
// contain reserved letters or apostrophes come back quoted.
func (p Pattern) String() string {
	var b strings.Builder
	for _, item := range p.Items {
		if item.IsField() {
			b.WriteString(strings.Repeat(string(item.Field.Symbol), int(item.Field.Width)))
			continue
		}
		b.WriteString(quoteLiteral(item.Literal))
	}
	return b.String()
}

// quoteLiteral quotes only the runs that need it, so " at " comes back as
// " 'at' " rather than one fully quoted span.
func quoteLiteral(text string) string {
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		r := runes[i]
		if !isASCIILetter(r) && r != '\'' {
			b.WriteRune(r)
			i++
			continue
		}
		j := i
		for j < len(runes) && (isASCIILetter(runes[j]) || runes[j] == '\'') {
			j++
		}
		segment := string(runes[i:j])
		if segment == "'" {
			b.WriteString("''")
		} else {
			b.WriteString("'" + strings.ReplaceAll(segment, "'", "''") + "'")
		}
		i = j
	}
	return b.String()
}

// PatternPlurals is a pattern, or a family of patterns keyed by grammatical
// plural category. A bare pattern coerces via SinglePattern.
type PatternPlurals struct {
	Pattern  Pattern
	Variants map[PluralCategory]Pattern
}

// SinglePattern wraps a pattern in the non-plural PatternPlurals form.
func SinglePattern(p Pattern) PatternPlurals {
	return PatternPlurals{Pattern: p}
}

// IsPlural reports whether the value carries category variants.
func (pp PatternPlurals) IsPlural() bool {
	return len(pp.Variants) > 0
}

// Select picks the variant for the category, falling back to the "other"
// variant and then to the single pattern.
func (pp PatternPlurals) Select(category PluralCategory) Pattern {
	if len(pp.Variants) == 0 {
		return pp.Pattern
	}
	if p, ok := pp.Variants[category]; ok {
		return p
	}
	if p, ok := pp.Variants[PluralOther]; ok {
		return p
	}
	return pp.Pattern
}

// ForCount selects the variant whose plural category matches count under the
// locale's cardinal rules.
func (pp PatternPlurals) ForCount(tag language.Tag, count int) Pattern {
	if len(pp.Variants) == 0 {
		return pp.Pattern
	}
	return pp.Select(categoryForCount(tag, count))
}

func categoryForCount(tag language.Tag, count int) PluralCategory {
	switch plural.Cardinal.MatchPlural(tag, count, 0, 0, 0, 0) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// eachPattern applies fn to every pattern the value holds.
func (pp *PatternPlurals) eachPattern(fn func(*Pattern)) {
	if len(pp.Variants) == 0 {
		fn(&pp.Pattern)
		return
	}
	for category, p := range pp.Variants {
		fn(&p)
		pp.Variants[category] = p
	}
}
