package datetime

import "errors"

// ErrMissingLocale indicates the provider has no bundle for the requested locale.
var ErrMissingLocale = errors.New("datetime: no pattern data for locale")

// ErrPatternSyntax indicates a stored pattern string could not be parsed.
var ErrPatternSyntax = errors.New("datetime: malformed pattern")

// ErrBadCombination indicates a date+time combination template is missing a slot.
var ErrBadCombination = errors.New("datetime: malformed combination template")

// ErrMissingSymbols indicates a required base symbol table is absent from locale data.
var ErrMissingSymbols = errors.New("datetime: missing base symbol table")
