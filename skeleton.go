package datetime

import "fmt"

// ParseSkeleton parses a skeleton signature such as "yMMMd" into its field
// list. Skeletons are field runs only; literals have no place in them.
func ParseSkeleton(src string) ([]Field, error) {
	var fields []Field
	runes := []rune(src)
	for i := 0; i < len(runes); {
		r := runes[i]
		if !isASCIILetter(r) {
			return nil, fmt.Errorf("%w: unexpected %q in skeleton %q", ErrPatternSyntax, string(r), src)
		}
		symbol := byte(r)
		if _, ok := fieldKinds[symbol]; !ok {
			return nil, fmt.Errorf("%w: unsupported field symbol %q in skeleton %q", ErrPatternSyntax, string(r), src)
		}
		count := 0
		for i < len(runes) && runes[i] == r {
			count++
			i++
		}
		if count > int(WidthSix) {
			return nil, fmt.Errorf("%w: field %q repeated %d times in skeleton %q", ErrPatternSyntax, string(r), count, src)
		}
		fields = append(fields, Field{Symbol: symbol, Width: FieldWidth(count)})
	}
	return fields, nil
}

// SkeletonMatch classifies the outcome of a best-fit search over the
// skeleton catalogue.
type SkeletonMatch uint8

const (
	// NoMatch means the catalogue had no comparable entry at all; the
	// caller gets no pattern, which is a soft outcome rather than an error.
	NoMatch SkeletonMatch = iota
	// AllFieldsMatch means the winner covers exactly the requested field
	// kinds, widths aside.
	AllFieldsMatch
	// MissingOrExtraFields means the winner is the best available
	// approximation but its field coverage is imperfect; the pattern is
	// still usable.
	MissingOrExtraFields
)

// candidateScore ranks a catalogue entry against a request: fewer
// missing+extra field kinds wins, then lower summed width distance. Ties
// keep the earlier entry in catalogue order, so identical inputs always
// select the same winner.
type candidateScore struct {
	missing   int
	extra     int
	widthDist int
}

func (a candidateScore) betterThan(b candidateScore) bool {
	if a.missing+a.extra != b.missing+b.extra {
		return a.missing+a.extra < b.missing+b.extra
	}
	return a.widthDist < b.widthDist
}

func scoreEntry(entry SkeletonEntry, requested map[FieldKind]FieldWidth) candidateScore {
	var score candidateScore
	entryKinds := make(map[FieldKind]FieldWidth, len(entry.Fields))
	for _, field := range entry.Fields {
		kind, ok := field.Kind()
		if !ok {
			continue
		}
		entryKinds[kind] = field.Width
	}

	for kind, width := range requested {
		entryWidth, ok := entryKinds[kind]
		if !ok {
			score.missing++
			continue
		}
		score.widthDist += widthDistance(width, entryWidth)
	}
	for kind := range entryKinds {
		if _, ok := requested[kind]; !ok {
			score.extra++
		}
	}
	return score
}

// BestPatternForFields resolves a pattern family for an open field request.
// The whole request is matched against the catalogue first; only when no
// entry covers it exactly and the request spans both date and time fields is
// each half matched separately and the halves merged through a
// length-combination template. A glued result is always reported as
// MissingOrExtraFields, since no single catalogue entry produced it.
// preferRequested selects whether field widths in the output come from the
// request or from the winning skeleton.
func BestPatternForFields(skeletons *SkeletonPatterns, combinations LengthPatterns, requested []Field, preferRequested bool) (*PatternPlurals, SkeletonMatch, error) {
	if skeletons == nil || len(skeletons.Entries) == 0 || len(requested) == 0 {
		return nil, NoMatch, nil
	}

	plurals, match, err := matchFields(skeletons, requested, preferRequested)
	if err != nil {
		return nil, NoMatch, err
	}
	if match == AllFieldsMatch {
		return plurals, match, nil
	}

	dateHalf, timeHalf := splitFields(requested)
	if len(dateHalf) > 0 && len(timeHalf) > 0 {
		datePart, dateMatch, err := matchFields(skeletons, dateHalf, preferRequested)
		if err != nil {
			return nil, NoMatch, err
		}
		timePart, timeMatch, err := matchFields(skeletons, timeHalf, preferRequested)
		if err != nil {
			return nil, NoMatch, err
		}
		if dateMatch != NoMatch && timeMatch != NoMatch {
			template, err := combinations.ForLength(combinationLengthFor(dateHalf))
			if err != nil {
				return nil, NoMatch, err
			}
			merged, err := combineHalves(template, *datePart, *timePart)
			if err != nil {
				return nil, NoMatch, err
			}
			return &merged, MissingOrExtraFields, nil
		}
	}

	return plurals, match, nil
}

func splitFields(fields []Field) (date, time []Field) {
	for _, field := range fields {
		kind, ok := field.Kind()
		if !ok {
			continue
		}
		if isDateKind(kind) {
			date = append(date, field)
		} else {
			time = append(time, field)
		}
	}
	return date, time
}

// combinationLengthFor picks which combination template glues a split
// date+time match: wide months read as long-form dates, weekday on top makes
// them full, abbreviated months medium, anything else short.
func combinationLengthFor(dateFields []Field) Length {
	var monthWidth FieldWidth
	hasWeekday := false
	for _, field := range dateFields {
		kind, ok := field.Kind()
		if !ok {
			continue
		}
		switch kind {
		case KindMonth:
			monthWidth = field.Width
		case KindWeekday:
			hasWeekday = true
		}
	}

	switch {
	case monthWidth == WidthWide && hasWeekday:
		return LengthFull
	case monthWidth == WidthWide:
		return LengthLong
	case monthWidth == WidthAbbreviated:
		return LengthMedium
	default:
		return LengthShort
	}
}

func matchFields(skeletons *SkeletonPatterns, requested []Field, preferRequested bool) (*PatternPlurals, SkeletonMatch, error) {
	if len(skeletons.Entries) == 0 || len(requested) == 0 {
		return nil, NoMatch, nil
	}

	requestedKinds := make(map[FieldKind]FieldWidth, len(requested))
	for _, field := range requested {
		if kind, ok := field.Kind(); ok {
			requestedKinds[kind] = field.Width
		}
	}
	if len(requestedKinds) == 0 {
		return nil, NoMatch, nil
	}

	best := 0
	bestScore := scoreEntry(skeletons.Entries[0], requestedKinds)
	for i := 1; i < len(skeletons.Entries); i++ {
		if score := scoreEntry(skeletons.Entries[i], requestedKinds); score.betterThan(bestScore) {
			best, bestScore = i, score
		}
	}

	plurals, err := buildMatchedPattern(skeletons.Entries[best], requestedKinds, preferRequested)
	if err != nil {
		return nil, NoMatch, err
	}

	match := MissingOrExtraFields
	if bestScore.missing == 0 && bestScore.extra == 0 {
		match = AllFieldsMatch
	}
	return plurals, match, nil
}

func buildMatchedPattern(entry SkeletonEntry, requested map[FieldKind]FieldWidth, preferRequested bool) (*PatternPlurals, error) {
	adjust := func(p *Pattern) {
		if !preferRequested {
			return
		}
		for i, item := range p.Items {
			if !item.IsField() {
				continue
			}
			kind, ok := item.Field.Kind()
			if !ok {
				continue
			}
			if width, requested := requested[kind]; requested {
				p.Items[i].Field.Width = width
			}
		}
	}

	if len(entry.Variants) == 0 {
		pattern, err := ParsePattern(entry.Pattern)
		if err != nil {
			return nil, err
		}
		adjust(&pattern)
		plurals := SinglePattern(pattern)
		return &plurals, nil
	}

	plurals := PatternPlurals{Variants: make(map[PluralCategory]Pattern, len(entry.Variants))}
	for category, src := range entry.Variants {
		pattern, err := ParsePattern(src)
		if err != nil {
			return nil, err
		}
		adjust(&pattern)
		plurals.Variants[category] = pattern
	}
	return &plurals, nil
}

func combineHalves(template string, date, time PatternPlurals) (PatternPlurals, error) {
	if !date.IsPlural() && !time.IsPlural() {
		merged, err := ParseCombination(template, date.Pattern, time.Pattern)
		if err != nil {
			return PatternPlurals{}, err
		}
		return SinglePattern(merged), nil
	}

	categories := make(map[PluralCategory]struct{}, len(date.Variants)+len(time.Variants))
	for category := range date.Variants {
		categories[category] = struct{}{}
	}
	for category := range time.Variants {
		categories[category] = struct{}{}
	}

	merged := PatternPlurals{Variants: make(map[PluralCategory]Pattern, len(categories))}
	for category := range categories {
		pattern, err := ParseCombination(template, date.Select(category), time.Select(category))
		if err != nil {
			return PatternPlurals{}, err
		}
		merged.Variants[category] = pattern
	}
	return merged, nil
}
