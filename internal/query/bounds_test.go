package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var june15 = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestComputeDateBoundsToday(t *testing.T) {
	b := ComputeDateBounds(TabToday, "", "", june15)
	assert.Equal(t, "2025-06-15", b.Start)
	assert.Equal(t, "2025-06-15", b.End)
}

func TestComputeDateBoundsTomorrow(t *testing.T) {
	b := ComputeDateBounds(TabTomorrow, "", "", june15)
	assert.Equal(t, "2025-06-16", b.Start)
	assert.Equal(t, "2025-06-16", b.End)
}

func TestComputeDateBoundsUpcoming(t *testing.T) {
	b := ComputeDateBounds(TabUpcoming, "", "", june15)
	assert.Equal(t, "2025-06-15", b.Start)
	assert.Empty(t, b.End, "upcoming leaves the end unbounded")
}

func TestComputeDateBoundsPast(t *testing.T) {
	b := ComputeDateBounds(TabPast, "", "", june15)
	assert.Empty(t, b.Start, "past leaves the start unbounded")
	assert.Equal(t, "2025-06-14", b.End)
}

func TestComputeDateBoundsAll(t *testing.T) {
	b := ComputeDateBounds(TabAll, "", "", june15)
	assert.Empty(t, b.Start)
	assert.Empty(t, b.End)
}

func TestExplicitDatesOverrideTab(t *testing.T) {
	b := ComputeDateBounds(TabToday, "2025-01-01", "", june15)
	assert.Equal(t, "2025-01-01", b.Start, "explicit from wins over the tab bound")
	assert.Equal(t, "2025-06-15", b.End, "tab bound survives on the untouched side")

	b = ComputeDateBounds(TabPast, "", "2025-03-31", june15)
	assert.Empty(t, b.Start)
	assert.Equal(t, "2025-03-31", b.End)
}

func TestLeadFilterParams(t *testing.T) {
	f := LeadFilter{
		Name:        "ana",
		Stage:       "Qualified",
		CreatedFrom: "2025-06-01",
	}
	p := f.Params()
	assert.Equal(t, "ana", p.Get("name"))
	assert.Equal(t, "Qualified", p.Get("stage"))
	assert.Equal(t, "2025-06-01", p.Get("createdFrom"))
	assert.False(t, p.Has("source"), "empty fields are omitted")
	assert.False(t, p.Has("createdTo"))
}

func TestLeadFilterParamsEmpty(t *testing.T) {
	assert.Empty(t, LeadFilter{}.Params())
}

func TestAppointmentFilterParams(t *testing.T) {
	f := AppointmentFilter{
		Tab:    TabToday,
		Status: "Upcoming",
		Search: "maria",
	}
	p := f.Params(june15)
	assert.Equal(t, "Upcoming", p.Get("status"))
	assert.Equal(t, "maria", p.Get("search"))
	assert.Equal(t, "2025-06-15", p.Get("start"))
	assert.Equal(t, "2025-06-15", p.Get("end"))
	assert.Equal(t, "date", p.Get("sort"))
	assert.Equal(t, "asc", p.Get("order"), "sort order defaults to ascending")
}

func TestAppointmentFilterParamsPastTab(t *testing.T) {
	f := AppointmentFilter{Tab: TabPast, SortOrder: "desc"}
	p := f.Params(june15)
	assert.False(t, p.Has("start"))
	assert.Equal(t, "2025-06-14", p.Get("end"))
	assert.Equal(t, "desc", p.Get("order"))
}
