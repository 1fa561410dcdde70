package datetime

import "fmt"

// SymbolVariant distinguishes the format (in-sentence) symbol tables from
// the stand-alone ones.
type SymbolVariant uint8

const (
	VariantFormat SymbolVariant = iota
	VariantStandAlone
)

// Weekday indexes the seven weekday symbol slots, Sunday first.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DayPeriodKind selects between plain AM/PM rendering and the variant that
// prefers dedicated noon/midnight strings when the clock is exactly there.
type DayPeriodKind uint8

const (
	DayPeriodAmPm DayPeriodKind = iota
	DayPeriodNoonMidnight
)

// SymbolSource resolves a display string for a field at a width in a given
// numeric context. The engine ships one table-backed implementation; the
// interface exists so renderers can swap in alternate or mocked data.
type SymbolSource interface {
	MonthSymbol(variant SymbolVariant, width FieldWidth, month int) (string, error)
	WeekdaySymbol(variant SymbolVariant, width FieldWidth, day Weekday) (string, error)
	DayPeriodSymbol(kind DayPeriodKind, width FieldWidth, hour int, topOfHour bool) (string, error)
}

// SymbolWidths holds the width tiers of one symbol table. Abbreviated is the
// base tier; the others are optional. Short is the six-column weekday tier.
type SymbolWidths struct {
	Wide        []string
	Narrow      []string
	Short       []string
	Abbreviated []string
}

// forWidth picks the slice for a width with the in-table fallbacks applied:
// the six-column tier falls to short then abbreviated, every width below
// wide/narrow falls to abbreviated. May return nil when the table itself is
// sparse; the caller decides whether another table can serve.
func (w *SymbolWidths) forWidth(width FieldWidth) []string {
	if w == nil {
		return nil
	}
	switch width {
	case WidthWide:
		return w.Wide
	case WidthNarrow:
		return w.Narrow
	case WidthSix:
		if len(w.Short) > 0 {
			return w.Short
		}
		return w.Abbreviated
	default:
		return w.Abbreviated
	}
}

// DayPeriodStrings is one width tier of day-period symbols. Noon and
// Midnight are optional; empty means fall back to PM and AM respectively.
type DayPeriodStrings struct {
	AM       string
	PM       string
	Noon     string
	Midnight string
}

// DayPeriodWidths holds the width tiers of the day-period table.
type DayPeriodWidths struct {
	Wide        DayPeriodStrings
	Narrow      DayPeriodStrings
	Abbreviated DayPeriodStrings
}

func (w *DayPeriodWidths) forWidth(width FieldWidth) DayPeriodStrings {
	switch width {
	case WidthWide:
		return w.Wide
	case WidthNarrow:
		return w.Narrow
	default:
		return w.Abbreviated
	}
}

// SymbolTables groups a format table with its optional stand-alone sibling.
type SymbolTables struct {
	Format     SymbolWidths
	StandAlone *SymbolWidths
}

// DateSymbols is the locale's display-name bundle for months, weekdays and
// day periods. Immutable once loaded.
type DateSymbols struct {
	Months     SymbolTables
	Weekdays   SymbolTables
	DayPeriods DayPeriodWidths
}

var _ SymbolSource = &DateSymbols{}

// MonthSymbol resolves a month name (0-based month index). A stand-alone
// request whose width tier is absent falls back to the format table; a
// missing format abbreviated tier is a data-integrity error.
func (s *DateSymbols) MonthSymbol(variant SymbolVariant, width FieldWidth, month int) (string, error) {
	if month < 0 || month > 11 {
		return "", fmt.Errorf("datetime: month index %d out of range", month)
	}

	if variant == VariantStandAlone {
		if symbols := s.Months.StandAlone.forWidth(width); len(symbols) > 0 {
			return symbols[month%12], nil
		}
		// stand-alone tier absent, fall through to the format table
	}

	symbols := s.Months.Format.forWidth(width)
	if len(symbols) == 0 {
		symbols = s.Months.Format.Abbreviated
	}
	if len(symbols) == 0 {
		return "", fmt.Errorf("%w: months", ErrMissingSymbols)
	}
	return symbols[month%12], nil
}

// WeekdaySymbol resolves a weekday name. The six-column width falls back to
// short then abbreviated inside each table; a stand-alone request with no
// usable tier falls back to the format table.
func (s *DateSymbols) WeekdaySymbol(variant SymbolVariant, width FieldWidth, day Weekday) (string, error) {
	if variant == VariantStandAlone {
		if symbols := s.Weekdays.StandAlone.forWidth(width); len(symbols) > 0 {
			return symbols[int(day)%7], nil
		}
	}

	symbols := s.Weekdays.Format.forWidth(width)
	if len(symbols) == 0 {
		symbols = s.Weekdays.Format.Abbreviated
	}
	if len(symbols) == 0 {
		return "", fmt.Errorf("%w: weekdays", ErrMissingSymbols)
	}
	return symbols[int(day)%7], nil
}

// DayPeriodSymbol resolves AM/PM and friends. The noon and midnight strings
// apply only at hour 12 and 0 exactly on the hour and fall back to PM/AM
// when the locale has none; other hours resolve by halves of the day.
func (s *DateSymbols) DayPeriodSymbol(kind DayPeriodKind, width FieldWidth, hour int, topOfHour bool) (string, error) {
	strings := s.DayPeriods.forWidth(width)
	if strings.AM == "" || strings.PM == "" {
		strings = s.DayPeriods.Abbreviated
	}
	if strings.AM == "" || strings.PM == "" {
		return "", fmt.Errorf("%w: day periods", ErrMissingSymbols)
	}

	switch {
	case kind == DayPeriodNoonMidnight && hour == 0 && topOfHour:
		if strings.Midnight != "" {
			return strings.Midnight, nil
		}
		return strings.AM, nil
	case kind == DayPeriodNoonMidnight && hour == 12 && topOfHour:
		if strings.Noon != "" {
			return strings.Noon, nil
		}
		return strings.PM, nil
	case hour < 12:
		return strings.AM, nil
	default:
		return strings.PM, nil
	}
}
