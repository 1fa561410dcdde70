package datetime

import (
	"errors"
	"testing"
)

func testSymbols() *DateSymbols {
	return &DateSymbols{
		Months: SymbolTables{
			Format: SymbolWidths{
				Wide: []string{
					"January", "February", "March", "April", "May", "June",
					"July", "August", "September", "October", "November", "December",
				},
				Abbreviated: []string{
					"Jan", "Feb", "Mar", "Apr", "May", "Jun",
					"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
				},
			},
		},
		Weekdays: SymbolTables{
			Format: SymbolWidths{
				Wide: []string{
					"Sunday", "Monday", "Tuesday", "Wednesday",
					"Thursday", "Friday", "Saturday",
				},
				Abbreviated: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
				Short:       []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
			},
		},
		DayPeriods: DayPeriodWidths{
			Abbreviated: DayPeriodStrings{AM: "AM", PM: "PM", Noon: "noon", Midnight: "midnight"},
			Wide:        DayPeriodStrings{AM: "AM", PM: "PM"},
		},
	}
}

func TestWeekdayStandAloneSixFallsToStandAloneAbbreviated(t *testing.T) {
	symbols := testSymbols()
	symbols.Weekdays.StandAlone = &SymbolWidths{
		Abbreviated: []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"},
	}

	// six-column width with no stand-alone short tier must use the
	// stand-alone abbreviated strings, not the format table
	got, err := symbols.WeekdaySymbol(VariantStandAlone, WidthSix, Tuesday)
	if err != nil {
		t.Fatalf("WeekdaySymbol: %v", err)
	}
	if got != "tue" {
		t.Fatalf("WeekdaySymbol = %q, want %q", got, "tue")
	}
}

func TestWeekdayStandAloneFallsToFormat(t *testing.T) {
	symbols := testSymbols()

	// no stand-alone table at all
	got, err := symbols.WeekdaySymbol(VariantStandAlone, WidthWide, Friday)
	if err != nil {
		t.Fatalf("WeekdaySymbol: %v", err)
	}
	if got != "Friday" {
		t.Fatalf("WeekdaySymbol = %q, want %q", got, "Friday")
	}

	// a stand-alone table missing the wide tier also falls through
	symbols.Weekdays.StandAlone = &SymbolWidths{
		Narrow: []string{"S", "M", "T", "W", "T", "F", "S"},
	}
	got, err = symbols.WeekdaySymbol(VariantStandAlone, WidthWide, Friday)
	if err != nil {
		t.Fatalf("WeekdaySymbol: %v", err)
	}
	if got != "Friday" {
		t.Fatalf("WeekdaySymbol = %q, want %q", got, "Friday")
	}
}

func TestWeekdaySixFallsToShortThenAbbreviated(t *testing.T) {
	symbols := testSymbols()

	got, err := symbols.WeekdaySymbol(VariantFormat, WidthSix, Monday)
	if err != nil {
		t.Fatalf("WeekdaySymbol: %v", err)
	}
	if got != "Mo" {
		t.Fatalf("six width = %q, want short tier %q", got, "Mo")
	}

	symbols.Weekdays.Format.Short = nil
	got, err = symbols.WeekdaySymbol(VariantFormat, WidthSix, Monday)
	if err != nil {
		t.Fatalf("WeekdaySymbol: %v", err)
	}
	if got != "Mon" {
		t.Fatalf("six width without short = %q, want %q", got, "Mon")
	}
}

func TestMonthSymbolFallbacks(t *testing.T) {
	symbols := testSymbols()

	tests := []struct {
		variant SymbolVariant
		width   FieldWidth
		month   int
		want    string
	}{
		{VariantFormat, WidthWide, 0, "January"},
		{VariantFormat, WidthAbbreviated, 11, "Dec"},
		{VariantFormat, WidthTwoDigit, 2, "Mar"}, // numeric widths use the abbreviated tier
		{VariantStandAlone, WidthWide, 4, "May"}, // no stand-alone table, format serves
	}

	for _, tc := range tests {
		got, err := symbols.MonthSymbol(tc.variant, tc.width, tc.month)
		if err != nil {
			t.Fatalf("MonthSymbol(%v,%v,%d): %v", tc.variant, tc.width, tc.month, err)
		}
		if got != tc.want {
			t.Fatalf("MonthSymbol(%v,%v,%d) = %q, want %q", tc.variant, tc.width, tc.month, got, tc.want)
		}
	}

	if _, err := symbols.MonthSymbol(VariantFormat, WidthWide, 12); err == nil {
		t.Fatal("out-of-range month should error")
	}
}

func TestMonthSymbolMissingBaseTable(t *testing.T) {
	symbols := &DateSymbols{}

	_, err := symbols.MonthSymbol(VariantFormat, WidthTwoDigit, 0)
	if !errors.Is(err, ErrMissingSymbols) {
		t.Fatalf("err = %v, want ErrMissingSymbols", err)
	}
}

func TestDayPeriodSymbol(t *testing.T) {
	symbols := testSymbols()

	tests := []struct {
		kind      DayPeriodKind
		width     FieldWidth
		hour      int
		topOfHour bool
		want      string
	}{
		{DayPeriodNoonMidnight, WidthAbbreviated, 0, true, "midnight"},
		{DayPeriodNoonMidnight, WidthAbbreviated, 12, true, "noon"},
		{DayPeriodNoonMidnight, WidthAbbreviated, 12, false, "PM"}, // not at the top of the hour
		{DayPeriodNoonMidnight, WidthAbbreviated, 9, true, "AM"},
		{DayPeriodAmPm, WidthAbbreviated, 0, true, "AM"},
		{DayPeriodAmPm, WidthAbbreviated, 15, true, "PM"},
		{DayPeriodNoonMidnight, WidthWide, 12, true, "PM"}, // wide tier has no noon string
	}

	for _, tc := range tests {
		got, err := symbols.DayPeriodSymbol(tc.kind, tc.width, tc.hour, tc.topOfHour)
		if err != nil {
			t.Fatalf("DayPeriodSymbol(%v,%v,%d,%v): %v", tc.kind, tc.width, tc.hour, tc.topOfHour, err)
		}
		if got != tc.want {
			t.Fatalf("DayPeriodSymbol(%v,%v,%d,%v) = %q, want %q", tc.kind, tc.width, tc.hour, tc.topOfHour, got, tc.want)
		}
	}
}

func TestDayPeriodMissingBaseTable(t *testing.T) {
	symbols := &DateSymbols{}

	_, err := symbols.DayPeriodSymbol(DayPeriodAmPm, WidthAbbreviated, 9, false)
	if !errors.Is(err, ErrMissingSymbols) {
		t.Fatalf("err = %v, want ErrMissingSymbols", err)
	}
}
