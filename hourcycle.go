package datetime

// HourCycle is one of the four fine hour conventions. The zero value means
// no preference was expressed.
type HourCycle uint8

const (
	HourCycleNone HourCycle = iota
	HourCycleH11            // 0-11, symbol K
	HourCycleH12            // 1-12, symbol h
	HourCycleH23            // 0-23, symbol H
	HourCycleH24            // 1-24, symbol k
)

// CoarseHourCycle partitions the four fine cycles into the two groups locale
// data is authored in. Each group's patterns use one representative hour
// symbol; selecting the other member of the group is a post-hoc rewrite.
type CoarseHourCycle uint8

const (
	CoarseH11H12 CoarseHourCycle = iota + 1
	CoarseH23H24
)

// Coarse maps the fine cycle to its group. HourCycleNone maps to zero.
func (h HourCycle) Coarse() CoarseHourCycle {
	switch h {
	case HourCycleH11, HourCycleH12:
		return CoarseH11H12
	case HourCycleH23, HourCycleH24:
		return CoarseH23H24
	default:
		return 0
	}
}

// Symbol is the pattern symbol that renders the cycle's hour numbering.
func (h HourCycle) Symbol() byte {
	switch h {
	case HourCycleH11:
		return 'K'
	case HourCycleH12:
		return 'h'
	case HourCycleH23:
		return 'H'
	case HourCycleH24:
		return 'k'
	default:
		return 0
	}
}

func (h HourCycle) String() string {
	switch h {
	case HourCycleH11:
		return "h11"
	case HourCycleH12:
		return "h12"
	case HourCycleH23:
		return "h23"
	case HourCycleH24:
		return "h24"
	default:
		return "none"
	}
}

// ParseHourCycle maps a cycle name to its HourCycle, ok=false for unknown
// names.
func ParseHourCycle(name string) (HourCycle, bool) {
	switch name {
	case "h11":
		return HourCycleH11, true
	case "h12":
		return HourCycleH12, true
	case "h23":
		return HourCycleH23, true
	case "h24":
		return HourCycleH24, true
	default:
		return HourCycleNone, false
	}
}

// Preferences carries per-request user preferences. Zero values mean "use
// the locale default".
type Preferences struct {
	HourCycle HourCycle
}

// applyHourCyclePreference rewrites the pattern's hour tokens to the
// requested cycle's symbol. The substitution is naive: it swaps the symbol
// of each hour field and touches nothing else, without checking that the
// result stays natural for the locale. Callers rely on that exact behavior.
func applyHourCyclePreference(p *Pattern, pref HourCycle) {
	if pref == HourCycleNone {
		return
	}
	symbol := pref.Symbol()
	for i, item := range p.Items {
		if kind, ok := item.Field.Kind(); ok && kind == KindHour {
			p.Items[i].Field.Symbol = symbol
		}
	}
}
