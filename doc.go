// Package datetime resolves abstract date/time formatting requests into
// concrete, locale-specific patterns built from compact locale data bundles.
//
// A request is either a pair of canned length tiers (full/long/medium/short
// date and/or time) or an open list of fields ("weekday plus numeric year").
// Length requests are direct table lookups, with the hour cycle selected
// from a user preference or the locale default and applied as a naive
// symbol rewrite; field requests run a best-fit match over the locale's
// skeleton catalogue. When both a date and a time tier are requested the
// two resolved sub-patterns are merged through a locale combination
// template.
//
// Pattern data comes from a Provider; each Resolve call owns a short-lived
// session that fetches each bundle at most once. Display names for months,
// weekdays and day periods resolve separately through a SymbolSource with
// multi-level width fallback.
package datetime
