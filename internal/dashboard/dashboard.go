// Package dashboard fetches the read-only report endpoints and
// assembles them for display. Each section is fetched independently so
// one failing report never blanks the others.
package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/entity"
)

type Preset string

const (
	PresetToday  Preset = "today"
	PresetWeek   Preset = "this-week"
	PresetMonth  Preset = "this-month"
	PresetYear   Preset = "this-year"
	PresetCustom Preset = "custom"
)

const dateLayout = "2006-01-02"

type Bounds struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PresetBounds resolves a range preset against "now". Week starts on
// Monday; month and year start on their first day. Custom passes the
// explicit inputs through untouched.
func PresetBounds(p Preset, customStart, customEnd string, now time.Time) Bounds {
	end := now.Format(dateLayout)
	switch p {
	case PresetToday:
		return Bounds{Start: end, End: end}
	case PresetWeek:
		offset := (int(now.Weekday()) + 6) % 7
		return Bounds{Start: now.AddDate(0, 0, -offset).Format(dateLayout), End: end}
	case PresetMonth:
		return Bounds{Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout), End: end}
	case PresetYear:
		return Bounds{Start: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()).Format(dateLayout), End: end}
	case PresetCustom:
		return Bounds{Start: customStart, End: customEnd}
	}
	return Bounds{}
}

// ReportAPI is the slice of the backend client the dashboard reads.
type ReportAPI interface {
	ConversionRate(ctx context.Context) (*entity.ConversionRate, error)
	TodayFollowups(ctx context.Context) ([]entity.Appointment, error)
	UpcomingFollowups(ctx context.Context, days int) ([]entity.Appointment, error)
	LeadsWeekly(ctx context.Context, start, end string) ([]entity.WeeklyLeadCount, error)
	LeadsByStage(ctx context.Context) ([]entity.StageCount, error)
	ConversionTrend(ctx context.Context) ([]entity.ConversionPoint, error)
	SourcePerformance(ctx context.Context) ([]entity.SourcePerformance, error)
}

// KPI are the headline cards.
type KPI struct {
	ConversionRate    float64 `json:"conversionRate"`
	TodayFollowups    int     `json:"todayFollowups"`
	UpcomingFollowups int     `json:"upcomingFollowups"`
}

// Data carries every dashboard section together with its own error, if
// any. A section with a non-empty error renders as unavailable while
// the rest keep their server data.
type Data struct {
	Range Bounds `json:"range"`

	KPI    *KPI   `json:"kpi,omitempty"`
	KPIErr string `json:"kpiError,omitempty"`

	Weekly    []entity.WeeklyLeadCount `json:"weekly,omitempty"`
	WeeklyErr string                   `json:"weeklyError,omitempty"`

	Stages    []entity.StageCount `json:"stages,omitempty"`
	StagesErr string              `json:"stagesError,omitempty"`

	Trend    []entity.ConversionPoint `json:"trend,omitempty"`
	TrendErr string                   `json:"trendError,omitempty"`

	Sources    []entity.SourcePerformance `json:"sources,omitempty"`
	SourcesErr string                     `json:"sourcesError,omitempty"`
}

// Load fetches the five sections concurrently. Every goroutine returns
// nil: failures are recorded per section, never propagated, so a failed
// KPI fetch cannot stop the weekly chart from rendering.
func Load(ctx context.Context, reports ReportAPI, b Bounds) *Data {
	d := &Data{Range: b}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		kpi, err := loadKPI(ctx, reports)
		if err != nil {
			d.KPIErr = api.Message(err)
			return nil
		}
		d.KPI = kpi
		return nil
	})

	g.Go(func() error {
		weekly, err := reports.LeadsWeekly(ctx, b.Start, b.End)
		if err != nil {
			d.WeeklyErr = api.Message(err)
			return nil
		}
		d.Weekly = weekly
		return nil
	})

	g.Go(func() error {
		stages, err := reports.LeadsByStage(ctx)
		if err != nil {
			d.StagesErr = api.Message(err)
			return nil
		}
		d.Stages = stages
		return nil
	})

	g.Go(func() error {
		trend, err := reports.ConversionTrend(ctx)
		if err != nil {
			d.TrendErr = api.Message(err)
			return nil
		}
		d.Trend = trend
		return nil
	})

	g.Go(func() error {
		sources, err := reports.SourcePerformance(ctx)
		if err != nil {
			d.SourcesErr = api.Message(err)
			return nil
		}
		d.Sources = sources
		return nil
	})

	g.Wait()
	return d
}

func loadKPI(ctx context.Context, reports ReportAPI) (*KPI, error) {
	rate, err := reports.ConversionRate(ctx)
	if err != nil {
		return nil, err
	}
	today, err := reports.TodayFollowups(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := reports.UpcomingFollowups(ctx, 7)
	if err != nil {
		return nil, err
	}
	return &KPI{
		ConversionRate:    rate.Rate,
		TodayFollowups:    len(today),
		UpcomingFollowups: len(upcoming),
	}, nil
}
