// Package query translates UI filter state into the flat parameter
// objects the backend list endpoints accept.
package query

import "time"

// Named date tabs on the appointments page.
type Tab string

const (
	TabAll      Tab = "all"
	TabToday    Tab = "today"
	TabTomorrow Tab = "tomorrow"
	TabUpcoming Tab = "upcoming"
	TabPast     Tab = "past"
)

const dateLayout = "2006-01-02"

// DateBounds are inclusive start/end dates; an empty side is unbounded
// (the backend treats a missing end as "any future date" and a missing
// start as "any past date").
type DateBounds struct {
	Start string
	End   string
}

// ComputeDateBounds merges tab-derived bounds with explicit date-range
// inputs. Precedence: an explicit from/to always overrides the bound
// the tab derives for the same side.
//
//	today:    start = end = today
//	tomorrow: start = end = tomorrow
//	upcoming: start = today, end unbounded
//	past:     end = end of yesterday, start unbounded
//	all:      both unbounded
func ComputeDateBounds(tab Tab, explicitFrom, explicitTo string, now time.Time) DateBounds {
	var b DateBounds
	switch tab {
	case TabToday:
		day := now.Format(dateLayout)
		b = DateBounds{Start: day, End: day}
	case TabTomorrow:
		day := now.AddDate(0, 0, 1).Format(dateLayout)
		b = DateBounds{Start: day, End: day}
	case TabUpcoming:
		b.Start = now.Format(dateLayout)
	case TabPast:
		b.End = now.AddDate(0, 0, -1).Format(dateLayout)
	}
	if explicitFrom != "" {
		b.Start = explicitFrom
	}
	if explicitTo != "" {
		b.End = explicitTo
	}
	return b
}
