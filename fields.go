package datetime

// FieldKind identifies what a pattern field renders, independent of the
// concrete pattern symbol. The hour symbols K/h/H/k all map to KindHour;
// format and stand-alone month/weekday symbols share a kind as well, so
// skeleton matching compares like with like.
type FieldKind uint8

const (
	KindEra FieldKind = iota + 1
	KindYear
	KindMonth
	KindDay
	KindWeekday
	KindDayPeriod
	KindHour
	KindMinute
	KindSecond
)

// FieldWidth is the requested rendering width of a field. Values mirror the
// pattern symbol run length: "M" is numeric, "MM" two-digit, "MMM"
// abbreviated, "MMMM" wide, "MMMMM" narrow, "EEEEEE" the six-column short
// tier that only weekdays carry.
type FieldWidth uint8

const (
	WidthNone        FieldWidth = 0
	WidthNumeric     FieldWidth = 1
	WidthTwoDigit    FieldWidth = 2
	WidthAbbreviated FieldWidth = 3
	WidthWide        FieldWidth = 4
	WidthNarrow      FieldWidth = 5
	WidthSix         FieldWidth = 6
)

// Field is a single field token: a pattern symbol plus its width.
type Field struct {
	Symbol byte
	Width  FieldWidth
}

var fieldKinds = map[byte]FieldKind{
	'G': KindEra,
	'y': KindYear,
	'M': KindMonth,
	'L': KindMonth,
	'd': KindDay,
	'E': KindWeekday,
	'c': KindWeekday,
	'a': KindDayPeriod,
	'b': KindDayPeriod,
	'K': KindHour,
	'h': KindHour,
	'H': KindHour,
	'k': KindHour,
	'm': KindMinute,
	's': KindSecond,
}

// Kind reports the field kind for the token's symbol, and ok=false for
// symbols outside the supported set.
func (f Field) Kind() (FieldKind, bool) {
	kind, ok := fieldKinds[f.Symbol]
	return kind, ok
}

// IsZero reports whether the field is unset.
func (f Field) IsZero() bool {
	return f.Symbol == 0
}

// isDateKind splits the field space into the date half and the time half,
// used when a component request spans both and must be matched per half.
func isDateKind(kind FieldKind) bool {
	switch kind {
	case KindEra, KindYear, KindMonth, KindDay, KindWeekday:
		return true
	default:
		return false
	}
}

// widthDistance is the non-negative gap between two widths, zero iff equal.
func widthDistance(a, b FieldWidth) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
