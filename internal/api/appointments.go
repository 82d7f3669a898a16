package api

import (
	"context"
	"net/url"

	"github.com/xavierca1/crm-console/internal/entity"
)

// AppointmentInput is the create/update payload for an appointment.
type AppointmentInput struct {
	LeadID string `json:"leadId,omitempty"`
	Date   string `json:"date,omitempty"`
	Reason string `json:"reason,omitempty"`
	Note   string `json:"note,omitempty"`
	Status string `json:"status,omitempty"`
}

func (c *Client) CreateAppointment(ctx context.Context, input AppointmentInput) (*entity.Appointment, error) {
	var appt entity.Appointment
	if err := c.post(ctx, "/appointments", input, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (c *Client) ListAppointments(ctx context.Context, params url.Values) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	if err := c.get(ctx, "/appointments", params, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, input AppointmentInput) (*entity.Appointment, error) {
	var appt entity.Appointment
	if err := c.put(ctx, "/appointments/"+id, input, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.delete(ctx, "/appointments/"+id, nil)
}

// MarkAppointmentDone flips an appointment to Completed server-side.
func (c *Client) MarkAppointmentDone(ctx context.Context, id string) (*entity.Appointment, error) {
	var appt entity.Appointment
	if err := c.put(ctx, "/appointments/"+id+"/mark-done", nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (c *Client) TodayAppointments(ctx context.Context) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	if err := c.get(ctx, "/appointments/today", nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// CalendarAppointments returns appointments keyed by day for the
// calendar view.
func (c *Client) CalendarAppointments(ctx context.Context) (map[string][]entity.Appointment, error) {
	var cal map[string][]entity.Appointment
	if err := c.get(ctx, "/appointments/calendar", nil, &cal); err != nil {
		return nil, err
	}
	return cal, nil
}
