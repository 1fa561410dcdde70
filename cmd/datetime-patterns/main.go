// Command datetime-patterns resolves a locale's formatting pattern for the
// given options and prints it, useful for inspecting bundle data.
//
//	datetime-patterns -locale es -date medium -time short
//	datetime-patterns -locale en -skeleton yMMMd
//	datetime-patterns -bundles data/en.yaml,data/es.yaml -locale es -date full
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	datetime "github.com/goliatone/go-datetime"
)

type pathsFlag struct {
	items []string
}

func (f *pathsFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *pathsFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			f.items = append(f.items, part)
		}
	}
	return nil
}

func main() {
	var bundles pathsFlag
	locale := flag.String("locale", "en", "locale to resolve for")
	dateLength := flag.String("date", "", "date tier: full, long, medium, short")
	timeLength := flag.String("time", "", "time tier: full, long, medium, short")
	hourCycle := flag.String("hour-cycle", "", "hour cycle preference: h11, h12, h23, h24")
	skeleton := flag.String("skeleton", "", "field request as a skeleton, e.g. yMMMd")
	flag.Var(&bundles, "bundles", "comma-separated bundle files (JSON or YAML); built-in data when omitted")
	flag.Parse()

	options, err := buildOptions(*dateLength, *timeLength, *hourCycle, *skeleton)
	if err != nil {
		fatal(err)
	}

	var resolverOpts []datetime.Option
	if len(bundles.items) > 0 {
		resolverOpts = append(resolverOpts, datetime.WithBundleFiles(bundles.items...))
	}

	resolver, err := datetime.NewResolver(resolverOpts...)
	if err != nil {
		fatal(err)
	}

	plurals, err := resolver.Resolve(options, *locale)
	if err != nil {
		fatal(err)
	}
	if plurals == nil {
		fmt.Println("(no pattern)")
		return
	}

	if !plurals.IsPlural() {
		fmt.Println(plurals.Pattern.String())
		return
	}
	for category, pattern := range plurals.Variants {
		fmt.Printf("%s: %s\n", category, pattern.String())
	}
}

func buildOptions(dateLength, timeLength, hourCycle, skeleton string) (datetime.Options, error) {
	prefs, err := parsePreferences(hourCycle)
	if err != nil {
		return nil, err
	}

	if skeleton != "" {
		if dateLength != "" || timeLength != "" {
			return nil, fmt.Errorf("-skeleton cannot be combined with -date or -time")
		}
		return componentsFromSkeleton(skeleton, prefs)
	}

	bag := datetime.LengthOptions{Preferences: prefs}
	if dateLength != "" {
		length, ok := datetime.ParseLength(dateLength)
		if !ok {
			return nil, fmt.Errorf("unknown date tier %q", dateLength)
		}
		bag.Date = length
	}
	if timeLength != "" {
		length, ok := datetime.ParseLength(timeLength)
		if !ok {
			return nil, fmt.Errorf("unknown time tier %q", timeLength)
		}
		bag.Time = length
	}
	return bag, nil
}

func parsePreferences(hourCycle string) (datetime.Preferences, error) {
	if hourCycle == "" {
		return datetime.Preferences{}, nil
	}
	cycle, ok := datetime.ParseHourCycle(hourCycle)
	if !ok {
		return datetime.Preferences{}, fmt.Errorf("unknown hour cycle %q", hourCycle)
	}
	return datetime.Preferences{HourCycle: cycle}, nil
}

func componentsFromSkeleton(skeleton string, prefs datetime.Preferences) (datetime.Options, error) {
	fields, err := datetime.ParseSkeleton(skeleton)
	if err != nil {
		return nil, err
	}

	bag := datetime.ComponentsOptions{Preferences: prefs}
	for _, field := range fields {
		kind, ok := field.Kind()
		if !ok {
			continue
		}
		switch kind {
		case datetime.KindEra:
			bag.Era = field.Width
		case datetime.KindYear:
			bag.Year = field.Width
		case datetime.KindMonth:
			bag.Month = field.Width
		case datetime.KindDay:
			bag.Day = field.Width
		case datetime.KindWeekday:
			bag.Weekday = field.Width
		case datetime.KindDayPeriod:
			bag.DayPeriod = field.Width
		case datetime.KindHour:
			bag.Hour = field.Width
		case datetime.KindMinute:
			bag.Minute = field.Width
		case datetime.KindSecond:
			bag.Second = field.Width
		}
	}
	return bag, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "datetime-patterns: %v\n", err)
	os.Exit(1)
}
