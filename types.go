package datetime

// PluralCategory names a CLDR grammatical plural category.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// Length is one of the canned pattern tiers. The zero value means the tier
// was not requested.
type Length uint8

const (
	LengthNone Length = iota
	LengthFull
	LengthLong
	LengthMedium
	LengthShort
)

func (l Length) String() string {
	switch l {
	case LengthFull:
		return "full"
	case LengthLong:
		return "long"
	case LengthMedium:
		return "medium"
	case LengthShort:
		return "short"
	default:
		return "none"
	}
}

// ParseLength maps a tier name to its Length, ok=false for unknown names.
func ParseLength(name string) (Length, bool) {
	switch name {
	case "full":
		return LengthFull, true
	case "long":
		return LengthLong, true
	case "medium":
		return LengthMedium, true
	case "short":
		return LengthShort, true
	default:
		return LengthNone, false
	}
}
