package datetime

import (
	"fmt"
	"strings"
)

// ParseCombination merges an already-resolved date pattern and time pattern
// through a two-slot template. "{0}" marks the time slot and "{1}" the date
// slot, per CLDR glue-pattern convention; connective text containing letters
// must be quoted as in ParsePattern. Each sub-pattern is spliced in as an
// opaque unit with its token order intact. A template missing either slot is
// a data-integrity error.
func ParseCombination(template string, date, time Pattern) (Pattern, error) {
	var items []PatternItem
	var literal strings.Builder
	sawDate, sawTime := false, false

	flush := func() {
		if literal.Len() > 0 {
			items = append(items, PatternItem{Literal: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(template)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '{':
			if i+2 >= len(runes) || runes[i+2] != '}' {
				return Pattern{}, fmt.Errorf("%w: bad placeholder in %q", ErrBadCombination, template)
			}
			flush()
			switch runes[i+1] {
			case '0':
				items = append(items, time.Items...)
				sawTime = true
			case '1':
				items = append(items, date.Items...)
				sawDate = true
			default:
				return Pattern{}, fmt.Errorf("%w: unknown slot %q in %q", ErrBadCombination, string(runes[i+1]), template)
			}
			i += 3
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
				return Pattern{}, fmt.Errorf("%w: unterminated quote in %q", ErrBadCombination, template)
			}
			if literal.Len() == before {
				literal.WriteByte('\'')
			}
		case isASCIILetter(r):
			return Pattern{}, fmt.Errorf("%w: unquoted letter %q in %q", ErrBadCombination, string(r), template)
		default:
			literal.WriteRune(r)
			i++
		}
	}
	flush()

	if !sawDate || !sawTime {
		return Pattern{}, fmt.Errorf("%w: %q lacks a date or time slot", ErrBadCombination, template)
	}

	return Pattern{Items: items}, nil
}
