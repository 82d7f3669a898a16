package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/xavierca1/crm-console/internal/entity"
)

func (c *Client) LeadsWeekly(ctx context.Context, start, end string) ([]entity.WeeklyLeadCount, error) {
	params := url.Values{}
	if start != "" {
		params.Set("start", start)
	}
	if end != "" {
		params.Set("end", end)
	}
	var counts []entity.WeeklyLeadCount
	if err := c.get(ctx, "/report/leads-weekly", params, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *Client) LeadsByStage(ctx context.Context) ([]entity.StageCount, error) {
	var counts []entity.StageCount
	if err := c.get(ctx, "/report/leads-by-stage", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *Client) ConversionTrend(ctx context.Context) ([]entity.ConversionPoint, error) {
	var trend []entity.ConversionPoint
	if err := c.get(ctx, "/report/conversion-trend", nil, &trend); err != nil {
		return nil, err
	}
	return trend, nil
}

func (c *Client) SourcePerformance(ctx context.Context) ([]entity.SourcePerformance, error) {
	var perf []entity.SourcePerformance
	if err := c.get(ctx, "/report/source-performance", nil, &perf); err != nil {
		return nil, err
	}
	return perf, nil
}

func (c *Client) UpcomingFollowups(ctx context.Context, days int) ([]entity.Appointment, error) {
	params := url.Values{"days": []string{strconv.Itoa(days)}}
	var appts []entity.Appointment
	if err := c.get(ctx, "/report/upcoming-followups", params, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (c *Client) ConversionRate(ctx context.Context) (*entity.ConversionRate, error) {
	var rate entity.ConversionRate
	if err := c.get(ctx, "/report/conversion-rate", nil, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// DateRangeReport is opaque display data; the console passes it through.
func (c *Client) DateRangeReport(ctx context.Context, start, end string) (json.RawMessage, error) {
	params := url.Values{}
	if start != "" {
		params.Set("start", start)
	}
	if end != "" {
		params.Set("end", end)
	}
	var report json.RawMessage
	if err := c.get(ctx, "/report/date-range", params, &report); err != nil {
		return nil, err
	}
	return report, nil
}
