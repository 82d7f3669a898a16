package query

import (
	"net/url"
	"time"
)

// LeadDebounce is how long the leads page waits after the last filter
// change before issuing the fetch. The appointments page refetches
// immediately (AppointmentDebounce = 0). Both are deliberate
// configuration constants, not divergent code paths.
const (
	LeadDebounce        = 400 * time.Millisecond
	AppointmentDebounce = 0
)

// LeadFilter is the filter state of the leads list page.
type LeadFilter struct {
	Name        string
	Stage       string
	Source      string
	CreatedFrom string
	CreatedTo   string
}

// Params flattens the filter; empty fields are omitted.
func (f LeadFilter) Params() url.Values {
	p := url.Values{}
	if f.Name != "" {
		p.Set("name", f.Name)
	}
	if f.Stage != "" {
		p.Set("stage", f.Stage)
	}
	if f.Source != "" {
		p.Set("source", f.Source)
	}
	if f.CreatedFrom != "" {
		p.Set("createdFrom", f.CreatedFrom)
	}
	if f.CreatedTo != "" {
		p.Set("createdTo", f.CreatedTo)
	}
	return p
}

// AppointmentFilter is the filter state of the appointments page.
type AppointmentFilter struct {
	Tab       Tab
	Status    string
	Search    string
	DateFrom  string
	DateTo    string
	SortOrder string
}

// Params flattens the filter, resolving the tab and explicit dates
// through ComputeDateBounds. Results are always sorted by date.
func (f AppointmentFilter) Params(now time.Time) url.Values {
	p := url.Values{}
	if f.Status != "" {
		p.Set("status", f.Status)
	}
	if f.Search != "" {
		p.Set("search", f.Search)
	}
	b := ComputeDateBounds(f.Tab, f.DateFrom, f.DateTo, now)
	if b.Start != "" {
		p.Set("start", b.Start)
	}
	if b.End != "" {
		p.Set("end", b.End)
	}
	p.Set("sort", "date")
	order := f.SortOrder
	if order == "" {
		order = "asc"
	}
	p.Set("order", order)
	return p
}
