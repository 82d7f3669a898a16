package api

import (
	"context"
	"net/url"

	"github.com/xavierca1/crm-console/internal/entity"
)

// LeadInput is the create/update payload for a lead.
type LeadInput struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Source       string `json:"source,omitempty"`
	Stage        string `json:"stage,omitempty"`
	Score        string `json:"score,omitempty"`
	Note         string `json:"note,omitempty"`
	FollowUpDate string `json:"followUpDate,omitempty"`
}

func (c *Client) CreateLead(ctx context.Context, input LeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	if err := c.post(ctx, "/leads", input, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *Client) ListLeads(ctx context.Context, params url.Values) ([]entity.Lead, error) {
	var leads []entity.Lead
	if err := c.get(ctx, "/leads", params, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// SearchLeads hits the dedicated search endpoint (name, stage, source, ...).
func (c *Client) SearchLeads(ctx context.Context, params url.Values) ([]entity.Lead, error) {
	var leads []entity.Lead
	if err := c.get(ctx, "/leads/search", params, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (c *Client) GetLead(ctx context.Context, id string) (*entity.Lead, error) {
	var lead entity.Lead
	if err := c.get(ctx, "/leads/"+id, nil, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *Client) UpdateLead(ctx context.Context, id string, input LeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	if err := c.put(ctx, "/leads/"+id, input, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// UpdateLeadStage changes only the pipeline stage.
func (c *Client) UpdateLeadStage(ctx context.Context, id, stage string) (*entity.Lead, error) {
	var lead entity.Lead
	payload := map[string]string{"stage": stage}
	if err := c.put(ctx, "/leads/"+id+"/stage", payload, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.delete(ctx, "/leads/"+id, nil)
}

// LeadAppointments lists the appointments booked for one lead.
func (c *Client) LeadAppointments(ctx context.Context, id string) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	if err := c.get(ctx, "/leads/"+id+"/appointments", nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// TodayFollowups lists leads with a follow-up due today.
func (c *Client) TodayFollowups(ctx context.Context) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	if err := c.get(ctx, "/leads/today-followups", nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
